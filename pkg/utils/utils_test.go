package utils_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cartuli/pkg/utils"
)

var _ = Describe("Utils", func() {
	Describe("ExpandPath", func() {
		It("should expand the home directory", func() {
			home, err := os.UserHomeDir()
			Expect(err).NotTo(HaveOccurred())

			path, err := utils.ExpandPath("~/sheets/out.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(home, "sheets", "out.pdf")))
		})

		It("should make relative paths absolute", func() {
			path, err := utils.ExpandPath("out.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.IsAbs(path)).To(BeTrue())
			Expect(filepath.Base(path)).To(Equal("out.pdf"))
		})

		It("should leave other tildes alone", func() {
			path, err := utils.ExpandPath("/tmp/~cards")
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal("/tmp/~cards"))
		})
	})

	Describe("GenerateImageHash", func() {
		newImage := func(c color.Color) image.Image {
			img := image.NewRGBA(image.Rect(0, 0, 4, 4))
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					img.Set(x, y, c)
				}
			}
			return img
		}

		It("should hash equal images equally", func() {
			a, err := utils.GenerateImageHash(newImage(color.Black))
			Expect(err).NotTo(HaveOccurred())
			b, err := utils.GenerateImageHash(newImage(color.Black))
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("should tell different images apart", func() {
			a, _ := utils.GenerateImageHash(newImage(color.Black))
			b, _ := utils.GenerateImageHash(newImage(color.White))
			Expect(a).NotTo(Equal(b))
		})
	})
})
