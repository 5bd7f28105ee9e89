package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/cartuli/internal/pdf"
	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/utils"
)

const dpi = 72

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: debug_pdf sheet1.pdf sheet2.pdf")
		os.Exit(1)
	}

	pdf1Path := os.Args[1]
	pdf2Path := os.Args[2]

	tempDir, err := os.MkdirTemp("", "cartuli-debug-*")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		os.Exit(1)
	}

	inspector := pdf.NewInspector(logger.Discard())
	ctx := context.Background()

	pages1, err := inspector.Pages(ctx, pdf1Path)
	if err != nil {
		fmt.Printf("Error reading first PDF: %v\n", err)
		os.Exit(1)
	}
	pages2, err := inspector.Pages(ctx, pdf2Path)
	if err != nil {
		fmt.Printf("Error reading second PDF: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nBasic Properties:\n")
	fmt.Printf("PDF 1 pages: %d\n", len(pages1))
	fmt.Printf("PDF 2 pages: %d\n", len(pages2))

	maxPages := min(len(pages1), len(pages2))
	differences := 0

	for i := 0; i < maxPages; i++ {
		page := i + 1
		fmt.Printf("\nAnalyzing Page %d:\n", page)
		fmt.Printf("PDF 1 dimensions: %s\n", pages1[i].Size())
		fmt.Printf("PDF 2 dimensions: %s\n", pages2[i].Size())

		img1, err := inspector.PageImage(pdf1Path, page, dpi)
		if err != nil {
			fmt.Printf("Error rendering page from PDF 1: %v\n", err)
			continue
		}
		img2, err := inspector.PageImage(pdf2Path, page, dpi)
		if err != nil {
			fmt.Printf("Error rendering page from PDF 2: %v\n", err)
			continue
		}

		img1Path := filepath.Join(tempDir, fmt.Sprintf("page%d_pdf1.png", page))
		img2Path := filepath.Join(tempDir, fmt.Sprintf("page%d_pdf2.png", page))

		f1, _ := os.Create(img1Path)
		png.Encode(f1, img1)
		f1.Close()

		f2, _ := os.Create(img2Path)
		png.Encode(f2, img2)
		f2.Close()

		hash1, _ := utils.GenerateImageHash(img1)
		hash2, _ := utils.GenerateImageHash(img2)

		fmt.Printf("\nImage comparison:\n")
		fmt.Printf("PDF 1 hash: %s\n", hash1)
		fmt.Printf("PDF 2 hash: %s\n", hash2)
		fmt.Printf("Hashes match: %v\n", hash1 == hash2)
		if hash1 != hash2 {
			differences++
		}
	}

	fmt.Printf("\nSaved page images to: %s\n", tempDir)
	if differences > 0 || len(pages1) != len(pages2) {
		os.Exit(1)
	}
}
