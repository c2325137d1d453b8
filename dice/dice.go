package dice

import (
	"math/rand"

	"github.com/ratel-online/pieces/consts"
)

// Dice is a single die numbered 1 through Sides.
type Dice struct {
	sides int
}

func New(sides int) (Dice, error) {
	if sides <= 0 {
		return Dice{}, consts.ErrorsInvalidArgument.Errorf("a die needs at least one side, got %d", sides)
	}
	return Dice{sides: sides}, nil
}

// Default is the six sided die.
func Default() Dice {
	return Dice{sides: consts.DefaultDiceSides}
}

func (d Dice) Sides() int {
	return d.sides
}

func (d Dice) Roll() int {
	return rand.Intn(d.sides) + 1
}

// RollWith rolls using rng, which makes results reproducible for a seed.
func (d Dice) RollWith(rng *rand.Rand) int {
	return rng.Intn(d.sides) + 1
}

func (d Dice) RollN(n int) []int {
	if n < 0 {
		n = 0
	}
	results := make([]int, n)
	for i := range results {
		results[i] = d.Roll()
	}
	return results
}

// Group is a fixed set of dice rolled together.
type Group struct {
	dice []Dice
}

// NewGroup accepts Dice values or side counts.
func NewGroup(items ...interface{}) (Group, error) {
	dice := make([]Dice, 0, len(items))
	for _, item := range items {
		switch item := item.(type) {
		case Dice:
			if item.sides <= 0 {
				return Group{}, consts.ErrorsInvalidArgument.Errorf("a die needs at least one side")
			}
			dice = append(dice, item)
		case int:
			d, err := New(item)
			if err != nil {
				return Group{}, err
			}
			dice = append(dice, d)
		default:
			return Group{}, consts.ErrorsTypeMismatch.Errorf("all dice must be Dice or side counts, got %T", item)
		}
	}
	return Group{dice: dice}, nil
}

func (g Group) Size() int {
	return len(g.dice)
}

func (g Group) Dice() []Dice {
	dice := make([]Dice, len(g.dice))
	copy(dice, g.dice)
	return dice
}

// Roll rolls every die once, in group order.
func (g Group) Roll() []int {
	results := make([]int, len(g.dice))
	for i, d := range g.dice {
		results[i] = d.Roll()
	}
	return results
}

func (g Group) RollWith(rng *rand.Rand) []int {
	results := make([]int, len(g.dice))
	for i, d := range g.dice {
		results[i] = d.RollWith(rng)
	}
	return results
}

// Sum rolls every die once and adds the results.
func (g Group) Sum() int {
	return Sum(g.Roll())
}

func Sum(results []int) int {
	total := 0
	for _, r := range results {
		total += r
	}
	return total
}
