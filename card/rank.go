package card

import (
	"math"
	"strconv"
	"strings"

	"github.com/ratel-online/pieces/consts"
	"github.com/spf13/cast"
)

// Rank is the face value of a card, A=1 through K=13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[string]Rank{
	"A": Ace, "2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen, "K": King,
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// ParseRank accepts a Rank, a rank name ("A", "10", "q") or a whole number
// 1..13. Booleans and fractional numbers are rejected.
func ParseRank(v interface{}) (Rank, error) {
	switch rank := v.(type) {
	case Rank:
		if rank.Valid() {
			return rank, nil
		}
	case string:
		if r, ok := rankNames[strings.ToUpper(strings.TrimSpace(rank))]; ok {
			return r, nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if n, err := cast.ToIntE(rank); err == nil && Rank(n).Valid() {
			return Rank(n), nil
		}
	case float32, float64:
		// only whole numbers name a rank; 1.7 is not an ace
		f := cast.ToFloat64(rank)
		if f == math.Trunc(f) && f >= float64(Ace) && f <= float64(King) {
			return Rank(int(f)), nil
		}
	}
	return 0, consts.ErrorsInvalidArgument.Errorf("unrecognized card rank %v", v)
}
