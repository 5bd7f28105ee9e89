package sheet_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cartuli/internal/sheet"
	"github.com/kpauljoseph/cartuli/pkg/measure"
)

func standardLayout() *sheet.Layout {
	layout, err := sheet.NewLayout(sheet.Config{
		PageSize:         measure.A4,
		CardSize:         measure.Standard,
		Margin:           5 * measure.MM,
		Padding:          4 * measure.MM,
		CropMarksPadding: 1 * measure.MM,
	})
	Expect(err).NotTo(HaveOccurred())
	return layout
}

var _ = Describe("Layout", func() {
	Context("Cards per page", func() {
		DescribeTable("fixed margin",
			func(card measure.Size, margin, padding float64, expected sheet.Grid) {
				grid, m, err := sheet.CardsPerPage(sheet.Config{
					PageSize: measure.A4,
					CardSize: card,
					Margin:   margin,
					Padding:  padding,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(grid).To(Equal(expected))
				Expect(m.Equal(measure.Size{Width: margin, Height: margin})).To(BeTrue())
			},
			Entry("standard", measure.Standard, 5*measure.MM, 4*measure.MM, sheet.Grid{Columns: 3, Rows: 3}),
			Entry("mini chimera", measure.MiniChimera, 5*measure.MM, 4*measure.MM, sheet.Grid{Columns: 4, Rows: 4}),
			Entry("mini usa without padding", measure.MiniUSA, 2*measure.MM, 0.0, sheet.Grid{Columns: 5, Rows: 4}),
			Entry("tarot", measure.Tarot, 5*measure.MM, 4*measure.MM, sheet.Grid{Columns: 2, Rows: 2}),
			Entry("exact fit", measure.Size{Width: 100, Height: 143.5}, 5*measure.MM, 0.0, sheet.Grid{Columns: 2, Rows: 2}),
		)

		It("should centre the grid with a print margin", func() {
			grid, margin, err := sheet.CardsPerPage(sheet.Config{
				PageSize:    measure.A4,
				CardSize:    measure.Standard,
				PrintMargin: 3 * measure.MM,
				Padding:     4 * measure.MM,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(grid).To(Equal(sheet.Grid{Columns: 3, Rows: 3}))
			Expect(margin.Width).To(BeNumerically("~", 5.75, measure.Tolerance))
			Expect(margin.Height).To(BeNumerically("~", 12.5, measure.Tolerance))
		})

		It("should fail when no card fits", func() {
			_, err := sheet.NewLayout(sheet.Config{
				PageSize: measure.A4,
				CardSize: measure.Size{Width: 300, Height: 300},
				Margin:   5 * measure.MM,
			})
			Expect(err).To(MatchError(sheet.ErrLayout))
			Expect(err).To(MatchError(sheet.ErrConfiguration))

			_, err = sheet.NewLayout(sheet.Config{
				PageSize:    measure.A4,
				CardSize:    measure.Size{Width: 100, Height: 290},
				PrintMargin: 5 * measure.MM,
			})
			Expect(err).To(MatchError(sheet.ErrLayout))
		})

		It("should reject negative and empty geometry", func() {
			configs := []sheet.Config{
				{PageSize: measure.A4},
				{PageSize: measure.A4, CardSize: measure.Standard, Padding: -1},
				{PageSize: measure.A4, CardSize: measure.Standard, Margin: -1},
				{PageSize: measure.A4, CardSize: measure.Standard, CropMarksPadding: -1},
				{CardSize: measure.Standard},
			}
			for _, c := range configs {
				_, err := sheet.NewLayout(c)
				Expect(err).To(MatchError(sheet.ErrConfiguration))
			}
		})

		It("should always fit the grid inside the margins", func() {
			pages := []measure.Size{measure.A4, measure.A3, measure.Letter, measure.Legal}
			cards := []measure.Size{measure.MiniUSA, measure.Euro, measure.Standard, measure.Square, measure.Tarot}
			for _, page := range pages {
				for _, card := range cards {
					for _, padding := range []float64{0, 1.5, 4, 7} {
						for _, margin := range []float64{0, 3, 5, 12.7} {
							grid, _, err := sheet.CardsPerPage(sheet.Config{
								PageSize: page, CardSize: card, Padding: padding, Margin: margin,
							})
							Expect(err).NotTo(HaveOccurred())
							cols, rows := float64(grid.Columns), float64(grid.Rows)
							Expect(cols*card.Width + (cols-1)*padding).To(BeNumerically("<=", page.Width-2*margin+measure.Tolerance))
							Expect(rows*card.Height + (rows-1)*padding).To(BeNumerically("<=", page.Height-2*margin+measure.Tolerance))
							Expect((cols+1)*card.Width + cols*padding).To(BeNumerically(">", page.Width-2*margin))

							_, centred, err := sheet.CardsPerPage(sheet.Config{
								PageSize: page, CardSize: card, Padding: padding, PrintMargin: margin + 0.5,
							})
							Expect(err).NotTo(HaveOccurred())
							Expect(centred.Width).To(BeNumerically(">=", margin+0.5-measure.Tolerance))
							Expect(centred.Height).To(BeNumerically(">=", margin+0.5-measure.Tolerance))
						}
					}
				}
			}
		})
	})

	Context("Card placement", func() {
		var layout *sheet.Layout

		BeforeEach(func() {
			layout = standardLayout()
		})

		It("should map card numbers to grid cells row by row", func() {
			expected := []measure.Coordinates{
				{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0},
				{Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 2, Row: 1},
				{Column: 0, Row: 2}, {Column: 1, Row: 2}, {Column: 2, Row: 2},
			}
			for i, c := range expected {
				Expect(layout.CardCoordinates(i+1, false)).To(Equal(c))
			}
			Expect(layout.CardCoordinates(10, false)).To(Equal(measure.Coordinates{Column: 0, Row: 0}))
			Expect(layout.CardCoordinates(18, false)).To(Equal(measure.Coordinates{Column: 2, Row: 2}))
		})

		It("should repeat coordinates every page", func() {
			perPage := layout.NumCardsPerPage()
			for n := 1; n <= perPage; n++ {
				first, err := layout.CardCoordinates(n, false)
				Expect(err).NotTo(HaveOccurred())
				for k := 1; k < 4; k++ {
					Expect(layout.CardCoordinates(n+k*perPage, false)).To(Equal(first))
				}
			}
		})

		It("should mirror columns for backs", func() {
			Expect(layout.CardCoordinates(1, true)).To(Equal(measure.Coordinates{Column: 2, Row: 0}))
			Expect(layout.CardCoordinates(2, true)).To(Equal(measure.Coordinates{Column: 1, Row: 0}))
			Expect(layout.CardCoordinates(6, true)).To(Equal(measure.Coordinates{Column: 0, Row: 1}))

			for n := 1; n <= layout.NumCardsPerPage(); n++ {
				front, _ := layout.CardCoordinates(n, false)
				back, _ := layout.CardCoordinates(n, true)
				Expect(back.Row).To(Equal(front.Row))
				Expect(layout.Mirror(back)).To(Equal(front))
			}
		})

		It("should reject card numbers below one", func() {
			_, err := layout.CardCoordinates(0, false)
			Expect(err).To(MatchError(sheet.ErrOutOfBounds))
			_, err = layout.CardPage(-1)
			Expect(err).To(MatchError(sheet.ErrOutOfBounds))
		})

		It("should place cards from the bottom left corner", func() {
			Expect(layout.CardPosition(measure.Coordinates{Column: 0, Row: 0})).To(
				Equal(measure.Point{X: 5, Y: 297 - 88 - 5}))

			p, err := layout.CardPosition(measure.Coordinates{Column: 2, Row: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Equal(measure.Point{X: 140, Y: 204})).To(BeTrue())

			p, err = layout.CardPosition(measure.Coordinates{Column: 1, Row: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Equal(measure.Point{X: 72.5, Y: 20})).To(BeTrue())
		})

		It("should fail outside the grid", func() {
			for _, c := range []measure.Coordinates{{Column: 3, Row: 1}, {Column: 0, Row: 3}, {Column: -1, Row: 0}} {
				_, err := layout.CardPosition(c)
				Expect(err).To(MatchError(sheet.ErrOutOfBounds))
			}
		})

		It("should give every cell its own position", func() {
			grid := layout.CardsPerPage()
			var seen []measure.Point
			for col := 0; col < grid.Columns; col++ {
				for row := 0; row < grid.Rows; row++ {
					p, err := layout.CardPosition(measure.Coordinates{Column: col, Row: row})
					Expect(err).NotTo(HaveOccurred())
					for _, other := range seen {
						Expect(p.Equal(other)).To(BeFalse())
					}
					seen = append(seen, p)
				}
			}
			Expect(seen).To(HaveLen(9))
		})

		It("should compute card pages", func() {
			Expect(layout.CardPage(4)).To(Equal(1))
			Expect(layout.CardPage(9)).To(Equal(1))
			Expect(layout.CardPage(10)).To(Equal(2))
			Expect(layout.CardPage(30)).To(Equal(4))
		})

		It("should recover the card number from page and position", func() {
			grid := layout.CardsPerPage()
			margin := layout.Margin()
			card := measure.Standard
			step := card.Add(measure.Size{Width: 4, Height: 4})

			for n := 1; n <= 40; n++ {
				page, err := layout.CardPage(n)
				Expect(err).NotTo(HaveOccurred())
				c, err := layout.CardCoordinates(n, false)
				Expect(err).NotTo(HaveOccurred())
				p, err := layout.CardPosition(c)
				Expect(err).NotTo(HaveOccurred())

				col := int(math.Round((p.X - margin.Width) / step.Width))
				row := int(math.Round((measure.A4.Height - margin.Height - card.Height - p.Y) / step.Height))
				Expect((page-1)*grid.Cells() + row*grid.Columns + col + 1).To(Equal(n))
			}
		})
	})

	Context("Registration marks", func() {
		It("should sit inside the print margin", func() {
			layout, err := sheet.NewLayout(sheet.Config{
				PageSize:    measure.A4,
				CardSize:    measure.Standard,
				PrintMargin: 3 * measure.MM,
				Padding:     4 * measure.MM,
			})
			Expect(err).NotTo(HaveOccurred())

			marks := layout.RegistrationMarks(sheet.DefaultRegistrationMarkSize)
			expected := []measure.Point{{X: 204.5, Y: 5.5}, {X: 204.5, Y: 291.5}, {X: 5.5, Y: 5.5}, {X: 5.5, Y: 291.5}}
			for i, p := range expected {
				Expect(marks[i].Equal(p)).To(BeTrue(), "mark %d at %s", i, marks[i])
			}
		})

		It("should use the average margin without print margin", func() {
			marks := standardLayout().RegistrationMarks(5 * measure.MM)
			Expect(marks[2].Equal(measure.Point{X: 2.5, Y: 2.5})).To(BeTrue())
			Expect(marks[1].Equal(measure.Point{X: 207.5, Y: 294.5})).To(BeTrue())
		})
	})
})
