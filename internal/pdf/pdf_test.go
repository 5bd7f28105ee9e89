package pdf_test

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cartuli/internal/pdf"
	"github.com/kpauljoseph/cartuli/pkg/logger"
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

func pdfTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[pdf-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	log.SetLevel(logger.LevelTrace)
	return log
}

func writePageImage(path string, width, height int, c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	Expect(png.Encode(f, img)).To(Succeed())
}

var _ = Describe("PDF", func() {
	var (
		tempDir    string
		testLogger *logger.Logger
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "cartuli-pdf-test-*")
		Expect(err).NotTo(HaveOccurred())
		testLogger = pdfTestLogger()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	DescribeTable("MatchesDimensions",
		func(width, height float64, shouldMatch bool) {
			testLogger.Trace("Testing dimensions: %.2f x %.2f", width, height)
			Expect(pdf.MatchesDimensions(width, height, measure.A4)).To(Equal(shouldMatch))
		},
		Entry("exact match", 595.28, 841.89, true),
		Entry("within tolerance", 595.9, 841.2, true),
		Entry("rotated", 841.89, 595.28, true),
		Entry("letter", 612.0, 792.0, false),
	)

	It("should convert page sizes to millimetres", func() {
		page := pdf.PageInfo{Number: 1, Width: 595.2756, Height: 841.8898}
		Expect(page.Size().Equal(measure.A4)).To(BeTrue())
	})

	Context("writing pages", func() {
		var (
			images  []string
			outFile string
			writer  *pdf.Writer
		)

		BeforeEach(func() {
			images = nil
			colors := []color.Color{color.White, color.Black, color.RGBA{255, 0, 0, 255}}
			for i, c := range colors {
				path := filepath.Join(tempDir, fmt.Sprintf("page%d.png", i+1))
				writePageImage(path, 105, 148, c)
				images = append(images, path)
			}
			outFile = filepath.Join(tempDir, "sheet.pdf")
			writer = pdf.NewWriter(testLogger)
		})

		It("should write one page per image with the page size", func() {
			Expect(writer.WriteImages(images, outFile, measure.A5)).To(Succeed())
			Expect(outFile).To(BeAnExistingFile())

			pages, err := pdf.PageDims(outFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(pages).To(HaveLen(3))
			for _, page := range pages {
				Expect(pdf.MatchesDimensions(page.Width, page.Height, measure.A5)).To(BeTrue())
			}
		})

		It("should replace an existing document", func() {
			Expect(writer.WriteImages(images, outFile, measure.A5)).To(Succeed())
			Expect(writer.WriteImages(images[:1], outFile, measure.A5)).To(Succeed())

			pages, err := pdf.PageDims(outFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(pages).To(HaveLen(1))
		})

		It("should refuse to write an empty document", func() {
			Expect(writer.WriteImages(nil, outFile, measure.A5)).NotTo(Succeed())
			Expect(outFile).NotTo(BeAnExistingFile())
		})

		It("should read pages back", func() {
			Expect(writer.WriteImages(images, outFile, measure.A5)).To(Succeed())

			inspector := pdf.NewInspector(testLogger)
			pages, err := inspector.Pages(context.Background(), outFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(pages).To(HaveLen(3))
			Expect(pages[2].Number).To(Equal(3))
			Expect(pdf.MatchesDimensions(pages[0].Width, pages[0].Height, measure.A5)).To(BeTrue())

			img, err := inspector.PageImage(outFile, 2, 72)
			Expect(err).NotTo(HaveOccurred())
			r, g, b, _ := img.At(img.Bounds().Dx()/2, img.Bounds().Dy()/2).RGBA()
			Expect(r + g + b).To(BeNumerically("<", 3*0x1000))

			_, err = inspector.PageImage(outFile, 4, 72)
			Expect(err).To(HaveOccurred())
		})

		It("should stop reading when cancelled", func() {
			Expect(writer.WriteImages(images, outFile, measure.A5)).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := pdf.NewInspector(testLogger).Pages(ctx, outFile)
			Expect(err).To(Equal(context.Canceled))
		})
	})
})
