package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/cartuli/internal/pdf"
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	expected := flag.String("size", "", "Expected page size, a name such as A4 or an expression such as (210mm, 297mm)")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	var size measure.Size
	if *expected != "" {
		var err error
		if size, err = measure.ParseSize(*expected); err != nil {
			fmt.Printf("Invalid expected size: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	pages, err := pdf.PageDims(*pdfPath)
	if err != nil {
		fmt.Printf("Error getting page dimensions: %v\n", err)
		os.Exit(1)
	}

	mismatches := 0
	for _, page := range pages {
		fmt.Printf("\nPage %d:\n", page.Number)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", page.Width, page.Height)
		fmt.Printf("Dimensions (Width x Height): %s\n", page.Size())

		if *expected != "" {
			matches := pdf.MatchesDimensions(page.Width, page.Height, size)
			fmt.Printf("Matches %s: %v\n", size, matches)
			if !matches {
				mismatches++
			}
		}
	}

	if mismatches > 0 {
		fmt.Printf("\n%d of %d pages do not match %s\n", mismatches, len(pages), size)
		os.Exit(1)
	}
}
