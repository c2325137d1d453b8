package deck

import (
	"github.com/ratel-online/pieces/card"
	"github.com/ratel-online/pieces/card/suit"
	"github.com/ratel-online/pieces/consts"
)

// standard holds one card for every rank/suit pair, rank-major and
// suit-minor. It is built once and never mutated.
var standard = createStandardCards()

func createStandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.StandardDeckSize)
	for _, rank := range card.Ranks {
		for _, s := range suit.All {
			cards = append(cards, card.Of(rank, s))
		}
	}
	return cards
}

// Standard returns a copy of the canonical 52 card sequence.
func Standard() []card.Card {
	cards := make([]card.Card, len(standard))
	copy(cards, standard)
	return cards
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, deck.decks*consts.StandardDeckSize)
	for i := 0; i < deck.decks; i++ {
		cards = append(cards, standard...)
	}
	deck.cards = cards
}
