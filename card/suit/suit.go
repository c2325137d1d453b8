package suit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit interface {
	// Key is the single letter used to name the suit: D, S, H or C.
	Key() string
	Symbol() string
	// Weight breaks ties between cards of the same rank.
	Weight() float64
	Paint(string) string
	String() string
}

type suitStruct struct {
	key           string
	symbol        string
	weight        float64
	colorFunction func(string, ...interface{}) string
}

func (s *suitStruct) Key() string {
	return s.key
}

func (s *suitStruct) Symbol() string {
	return s.symbol
}

func (s *suitStruct) Weight() float64 {
	return s.weight
}

func (s *suitStruct) Paint(text string) string {
	return s.colorFunction("%s", text)
}

func (s *suitStruct) String() string {
	return s.symbol
}

var Diamond = &suitStruct{
	key:           "D",
	symbol:        "♢",
	weight:        0.4,
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Spade = &suitStruct{
	key:           "S",
	symbol:        "♠",
	weight:        0.3,
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Heart = &suitStruct{
	key:           "H",
	symbol:        "♡",
	weight:        0.2,
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Club = &suitStruct{
	key:           "C",
	symbol:        "♣",
	weight:        0.1,
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

// All lists the suits in key order.
var All = []Suit{Diamond, Spade, Heart, Club}

var suits = map[string]Suit{
	Diamond.key:    Diamond,
	Spade.key:      Spade,
	Heart.key:      Heart,
	Club.key:       Club,
	Diamond.symbol: Diamond,
	Spade.symbol:   Spade,
	Heart.symbol:   Heart,
	Club.symbol:    Club,
}

// ByKey resolves a suit from its key (any case) or its symbol.
func ByKey(key string) (Suit, error) {
	s := suits[strings.ToUpper(strings.TrimSpace(key))]
	if s == nil {
		return nil, fmt.Errorf("invalid suit '%s'", key)
	}
	return s, nil
}
