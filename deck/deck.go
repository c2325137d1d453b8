package deck

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/ratel-online/pieces/card"
	"github.com/ratel-online/pieces/consts"
)

// ValueFunc computes the aggregate value of a card sequence.
type ValueFunc func([]card.Card) float64

// KeyFunc maps a single card to its sort key.
type KeyFunc func(card.Card) float64

// SumValues is the default ValueFunc: the sum of every card value.
func SumValues(cards []card.Card) float64 {
	total := 0.0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

// Deck is an ordered multiset of cards drawn from the front. It is not
// safe for concurrent use.
type Deck struct {
	cards []card.Card
	decks int
	value ValueFunc
	rng   *rand.Rand
}

// New builds a deck made of decks concatenated standard decks. A nil
// value falls back to SumValues.
func New(decks int, value ValueFunc) *Deck {
	if decks < 0 {
		decks = 0
	}
	if value == nil {
		value = SumValues
	}
	deck := &Deck{decks: decks, value: value}
	fillDeck(deck)
	return deck
}

// WithRand makes shuffles use r instead of the global source.
func (d *Deck) WithRand(r *rand.Rand) *Deck {
	d.rng = r
	return d
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Decks is the number of standard decks the deck is seeded with.
func (d *Deck) Decks() int {
	return d.decks
}

// Cards returns a snapshot of the current sequence.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Value() float64 {
	return d.value(d.Cards())
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DrawN takes amount cards from the front, or nothing if the deck is short.
func (d *Deck) DrawN(amount int) ([]card.Card, error) {
	if amount < 0 {
		return nil, consts.ErrorsInvalidArgument.Errorf("cannot draw %d cards", amount)
	}
	if len(d.cards) < amount {
		return nil, consts.ErrorsEmptyDeck.Errorf("%d cards left, %d requested", len(d.cards), amount)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// DrawAt removes and returns the card at position index.
func (d *Deck) DrawAt(index int) (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsEmptyDeck
	}
	if index < 0 || index >= len(d.cards) {
		return card.Card{}, consts.ErrorsNotFound.Errorf("no card at position %d", index)
	}
	c := d.cards[index]
	d.removeAt(index)
	return c, nil
}

// Add appends a card.Card, every card of a *Deck or a []card.Card.
func (d *Deck) Add(item interface{}) error {
	switch item := item.(type) {
	case card.Card:
		return d.AddCard(item)
	case *card.Card:
		if item != nil {
			return d.AddCard(*item)
		}
	case *Deck:
		if item != nil {
			d.AddDeck(item)
			return nil
		}
	case []card.Card:
		return d.AddCards(item)
	}
	return consts.ErrorsTypeMismatch.Errorf("can only add cards or decks, got %T", item)
}

func (d *Deck) AddCard(c card.Card) error {
	if !c.IsValid() {
		return consts.ErrorsInvalidArgument.Errorf("cannot add an invalid card")
	}
	d.cards = append(d.cards, c)
	return nil
}

func (d *Deck) AddCards(cards []card.Card) error {
	for _, c := range cards {
		if !c.IsValid() {
			return consts.ErrorsInvalidArgument.Errorf("cannot add an invalid card")
		}
	}
	d.cards = append(d.cards, cards...)
	return nil
}

// AddDeck appends the cards of other, leaving other untouched.
func (d *Deck) AddDeck(other *Deck) {
	d.cards = append(d.cards, other.Cards()...)
}

// Remove drops the first occurrence of c.
func (d *Deck) Remove(c card.Card) error {
	index := d.Index(c)
	if index < 0 {
		return consts.ErrorsNotFound.Errorf("card %s not in deck", c)
	}
	d.removeAt(index)
	return nil
}

func (d *Deck) removeAt(index int) {
	cards := make([]card.Card, 0, len(d.cards)-1)
	cards = append(cards, d.cards[:index]...)
	d.cards = append(cards, d.cards[index+1:]...)
}

// Index is the position of the first occurrence of c, or -1.
func (d *Deck) Index(c card.Card) int {
	for i, candidate := range d.cards {
		if candidate.Equal(c) {
			return i
		}
	}
	return -1
}

func (d *Deck) Contains(c card.Card) bool {
	return d.Index(c) >= 0
}

// Shuffle restores the full composition of Decks() standard decks and then
// permutes it. Draws, removals and additions made before are discarded;
// use ShuffleInPlace to randomize a partial deck.
func (d *Deck) Shuffle() {
	d.Reset()
	d.ShuffleInPlace()
}

// ShuffleInPlace permutes the current sequence without changing its content.
func (d *Deck) ShuffleInPlace() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Sort orders the cards ascending by key. A nil key ranks every card by
// the deck's ValueFunc applied to that card alone.
func (d *Deck) Sort(key KeyFunc) {
	if key == nil {
		key = func(c card.Card) float64 { return d.value([]card.Card{c}) }
	}
	keys := make(map[card.Card]float64)
	for _, c := range d.cards {
		if _, ok := keys[c]; !ok {
			keys[c] = key(c)
		}
	}
	sort.SliceStable(d.cards, func(i, j int) bool {
		return keys[d.cards[i]] < keys[d.cards[j]]
	})
}

// Reset restores Decks() canonical standard decks.
func (d *Deck) Reset() {
	fillDeck(d)
}

func (d *Deck) Clear() {
	d.cards = make([]card.Card, 0)
}

// Count is the number of occurrences of c.
func (d *Deck) Count(c card.Card) int {
	count := 0
	for _, candidate := range d.cards {
		if candidate.Equal(c) {
			count++
		}
	}
	return count
}

// Counts maps every standard card to its number of occurrences; missing
// cards map to 0.
func (d *Deck) Counts() map[card.Card]int {
	counts := make(map[card.Card]int, len(standard))
	for _, c := range standard {
		counts[c] = 0
	}
	for _, c := range d.cards {
		counts[c]++
	}
	return counts
}

func (d *Deck) String() string {
	names := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
