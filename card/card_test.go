package card_test

import (
	"testing"

	"github.com/ratel-online/pieces/card"
	"github.com/ratel-online/pieces/card/suit"
	"github.com/ratel-online/pieces/consts"
	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestNew() {
	testCases := []struct {
		name     string
		rank     interface{}
		suit     string
		expected card.Card
	}{
		{name: "ace_of_diamonds", rank: "A", suit: "D", expected: card.Of(card.Ace, suit.Diamond)},
		{name: "lower_case_suit", rank: "K", suit: "s", expected: card.Of(card.King, suit.Spade)},
		{name: "lower_case_rank", rank: "q", suit: "H", expected: card.Of(card.Queen, suit.Heart)},
		{name: "two_digit_rank", rank: "10", suit: "C", expected: card.Of(card.Ten, suit.Club)},
		{name: "numeric_rank", rank: 7, suit: "C", expected: card.Of(card.Seven, suit.Club)},
		{name: "rank_constant", rank: card.Jack, suit: "D", expected: card.Of(card.Jack, suit.Diamond)},
		{name: "sized_integer_rank", rank: int64(12), suit: "H", expected: card.Of(card.Queen, suit.Heart)},
		{name: "unsigned_rank", rank: uint8(1), suit: "S", expected: card.Of(card.Ace, suit.Spade)},
		{name: "whole_float_rank", rank: 5.0, suit: "D", expected: card.Of(card.Five, suit.Diamond)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := card.New(tc.rank, tc.suit)
			s.Require().NoError(err)
			s.Equal(tc.expected, c)
			s.True(c.IsValid())
		})
	}
}

func (s *CardTestSuite) TestNewRejectsUnknownValues() {
	testCases := []struct {
		name string
		rank interface{}
		suit string
	}{
		{name: "unknown_suit", rank: "A", suit: "X"},
		{name: "unknown_rank_name", rank: "Z", suit: "D"},
		{name: "rank_zero", rank: 0, suit: "D"},
		{name: "rank_too_high", rank: 14, suit: "D"},
		{name: "one_as_name", rank: "1", suit: "D"},
		{name: "not_a_rank", rank: []int{1}, suit: "D"},
		{name: "fractional_rank", rank: 1.7, suit: "D"},
		{name: "fractional_king", rank: 13.9, suit: "S"},
		{name: "float32_fraction", rank: float32(2.5), suit: "C"},
		{name: "float_too_high", rank: 14.0, suit: "D"},
		{name: "bool_true", rank: true, suit: "D"},
		{name: "bool_false", rank: false, suit: "D"},
		{name: "nil_rank", rank: nil, suit: "D"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := card.New(tc.rank, tc.suit)
			s.ErrorIs(err, consts.ErrorsInvalidArgument)
		})
	}
}

func (s *CardTestSuite) TestMustNewPanics() {
	s.Panics(func() { card.MustNew("A", "Z") })
}

func (s *CardTestSuite) TestString() {
	s.Equal("A.♢", card.MustNew("A", "D").String())
	s.Equal("10.♡", card.MustNew("10", "H").String())
	s.Equal("K.♣", card.MustNew("K", "c").String())
	s.Equal("Invalid", card.Card{}.String())
}

func (s *CardTestSuite) TestParseRoundTrip() {
	for _, rank := range card.Ranks {
		for _, st := range suit.All {
			c := card.Of(rank, st)
			parsed, err := card.Parse(c.String())
			s.Require().NoError(err)
			s.Equal(c, parsed)

			compact, err := card.Parse(rank.String() + st.Key())
			s.Require().NoError(err)
			s.Equal(c, compact)
		}
	}
}

func (s *CardTestSuite) TestParseRejectsGarbage() {
	for _, text := range []string{"", "♢", "A", "11.D", "A.X"} {
		_, err := card.Parse(text)
		s.ErrorIs(err, consts.ErrorsInvalidArgument, text)
	}
}

func (s *CardTestSuite) TestValue() {
	s.InDelta(1.4, card.MustNew("A", "D").Value(), 1e-9)
	s.InDelta(13.1, card.MustNew("K", "C").Value(), 1e-9)
	s.Zero(card.Card{}.Value())

	s.Greater(card.MustNew("A", "D").Value(), card.MustNew("A", "S").Value())
	s.Greater(card.MustNew("A", "S").Value(), card.MustNew("A", "H").Value())
	s.Greater(card.MustNew("A", "H").Value(), card.MustNew("A", "C").Value())
}

func (s *CardTestSuite) TestValuesAreUnique() {
	seen := make(map[float64]card.Card)
	for _, rank := range card.Ranks {
		for _, st := range suit.All {
			c := card.Of(rank, st)
			previous, ok := seen[c.Value()]
			s.False(ok, "%s shares its value with %s", c, previous)
			seen[c.Value()] = c
		}
	}
	s.Len(seen, 52)
}

func (s *CardTestSuite) TestCompare() {
	aceOfDiamonds := card.MustNew("A", "D")
	aceOfClubs := card.MustNew("A", "C")
	twoOfClubs := card.MustNew("2", "C")

	s.Equal(1, aceOfDiamonds.Compare(aceOfClubs))
	s.Equal(-1, aceOfClubs.Compare(aceOfDiamonds))
	s.Equal(-1, aceOfDiamonds.Compare(twoOfClubs))
	s.Equal(0, aceOfDiamonds.Compare(card.MustNew("a", "d")))
	s.True(aceOfClubs.Less(aceOfDiamonds))
	s.True(aceOfDiamonds.Equal(card.MustNew("A", "d")))
	s.False(aceOfDiamonds.Equal(aceOfClubs))
}

func (s *CardTestSuite) TestCmp() {
	aceOfDiamonds := card.MustNew("A", "D")
	kingOfSpades := card.MustNew("K", "S")

	result, err := aceOfDiamonds.Cmp(kingOfSpades)
	s.Require().NoError(err)
	s.Equal(-1, result)

	result, err = aceOfDiamonds.Cmp(&kingOfSpades)
	s.Require().NoError(err)
	s.Equal(-1, result)

	_, err = aceOfDiamonds.Cmp("K.♠")
	s.ErrorIs(err, consts.ErrorsTypeMismatch)

	_, err = aceOfDiamonds.Cmp(1.4)
	s.ErrorIs(err, consts.ErrorsTypeMismatch)

	var missing *card.Card
	_, err = aceOfDiamonds.Cmp(missing)
	s.ErrorIs(err, consts.ErrorsTypeMismatch)
}

func (s *CardTestSuite) TestPaint() {
	s.Contains(card.MustNew("Q", "H").Paint(), "Q.♡")
}
