package deck_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cartuli/internal/deck"
	"github.com/kpauljoseph/cartuli/pkg/measure"
	"github.com/kpauljoseph/cartuli/pkg/models"
)

var _ = Describe("Deck", func() {
	It("should take the size from the first card", func() {
		d, err := deck.New("goblins", measure.Size{}, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(d.AddCards(models.NewCard(measure.MiniUSA, "g1.png", ""))).To(Succeed())
		Expect(d.Size()).To(Equal(measure.MiniUSA))
		Expect(d.Name()).To(Equal("goblins"))
	})

	It("should reject cards of another size without adding any", func() {
		d, err := deck.New("goblins", measure.Size{}, nil)
		Expect(err).NotTo(HaveOccurred())

		err = d.AddCards(
			models.NewCard(measure.MiniUSA, "g1.png", ""),
			models.NewCard(measure.Standard, "g2.png", ""),
		)
		Expect(err).To(MatchError(deck.ErrCardSize))
		Expect(d.Len()).To(Equal(0))
		Expect(d.Size().IsZero()).To(BeTrue())
	})

	Context("with a default back", func() {
		It("should need a size from somewhere", func() {
			_, err := deck.New("d", measure.Size{}, &models.CardImage{Path: "back.png"})
			Expect(err).To(MatchError(deck.ErrCardSize))
		})

		It("should take the size from the back", func() {
			d, err := deck.New("d", measure.Size{}, &models.CardImage{Path: "back.png", Size: measure.Tarot})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Size()).To(Equal(measure.Tarot))
		})

		It("should refuse a back of another size", func() {
			_, err := deck.New("d", measure.Standard, &models.CardImage{Path: "back.png", Size: measure.Tarot})
			Expect(err).To(MatchError(deck.ErrCardSize))
		})

		It("should give its back to every card", func() {
			d, err := deck.New("d", measure.Standard, &models.CardImage{Path: "back.png"})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Back().Size).To(Equal(measure.Standard))

			Expect(d.AddCards(
				models.NewCard(measure.Standard, "f1.png", ""),
				models.NewCard(measure.Standard, "f2.png", "back.png"),
			)).To(Succeed())

			for _, card := range d.Cards() {
				Expect(card.TwoSided()).To(BeTrue())
				Expect(card.Back.Path).To(Equal("back.png"))
			}
			Expect(d.TwoSided()).To(BeTrue())
		})

		It("should refuse cards with a different back", func() {
			d, err := deck.New("d", measure.Standard, &models.CardImage{Path: "back.png"})
			Expect(err).NotTo(HaveOccurred())

			err = d.AddCards(models.NewCard(measure.Standard, "f1.png", "other.png"))
			Expect(err).To(MatchError(deck.ErrDefaultBack))
		})
	})

	It("should not know its sides while empty", func() {
		d, err := deck.New("d", measure.Standard, nil)
		Expect(err).NotTo(HaveOccurred())
		_, err = d.TwoSided()
		Expect(err).To(MatchError(deck.ErrEmptyDeck))

		Expect(d.AddCards(models.NewCard(measure.Standard, "f1.png", ""))).To(Succeed())
		Expect(d.TwoSided()).To(BeFalse())
	})
})
