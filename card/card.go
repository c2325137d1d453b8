package card

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ratel-online/pieces/card/suit"
	"github.com/ratel-online/pieces/consts"
)

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit suit.Suit
}

// New builds a card from a rank (see ParseRank) and a suit key, which is
// matched case-insensitively.
func New(rank interface{}, suitKey string) (Card, error) {
	s, err := suit.ByKey(suitKey)
	if err != nil {
		return Card{}, consts.ErrorsInvalidArgument.Errorf("unrecognized suit '%s'", suitKey)
	}
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	return Card{rank: r, suit: s}, nil
}

func MustNew(rank interface{}, suitKey string) Card {
	c, err := New(rank, suitKey)
	if err != nil {
		panic(err)
	}
	return c
}

// Of builds a card from already validated parts.
func Of(rank Rank, s suit.Suit) Card {
	return Card{rank: rank, suit: s}
}

// Parse reads the String form ("10.♡") or the compact key form ("10H", "qs").
func Parse(text string) (Card, error) {
	text = strings.TrimSpace(text)
	if i := strings.LastIndex(text, "."); i > 0 {
		return New(text[:i], text[i+1:])
	}
	last, size := utf8.DecodeLastRuneInString(text)
	if last == utf8.RuneError || size >= len(text) {
		return Card{}, consts.ErrorsInvalidArgument.Errorf("invalid card string '%s'", text)
	}
	return New(text[:len(text)-size], text[len(text)-size:])
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() suit.Suit {
	return c.suit
}

func (c Card) IsValid() bool {
	return c.rank.Valid() && c.suit != nil
}

// Value is the numeric rank plus the suit weight, so every card of a
// standard deck has a distinct value.
func (c Card) Value() float64 {
	if !c.IsValid() {
		return 0
	}
	return float64(c.rank) + c.suit.Weight()
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// Compare returns -1, 0 or +1 ordering by rank first, then by suit weight.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank < other.rank:
		return -1
	case c.rank > other.rank:
		return 1
	}
	cw, ow := weight(c.suit), weight(other.suit)
	switch {
	case cw < ow:
		return -1
	case cw > ow:
		return 1
	}
	return 0
}

func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// Cmp compares against an arbitrary value. Only cards are comparable;
// anything else is a type mismatch.
func (c Card) Cmp(v interface{}) (int, error) {
	switch other := v.(type) {
	case Card:
		return c.Compare(other), nil
	case *Card:
		if other != nil {
			return c.Compare(*other), nil
		}
	}
	return 0, consts.ErrorsTypeMismatch.Errorf("can only compare cards, got %T", v)
}

func (c Card) String() string {
	if !c.IsValid() {
		return "Invalid"
	}
	return fmt.Sprintf("%s.%s", c.rank, c.suit.Symbol())
}

// Paint renders the card in its suit colour.
func (c Card) Paint() string {
	if !c.IsValid() {
		return c.String()
	}
	return c.suit.Paint(c.String())
}

func weight(s suit.Suit) float64 {
	if s == nil {
		return 0
	}
	return s.Weight()
}
