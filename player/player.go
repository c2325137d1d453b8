package player

import (
	"math/rand"

	"github.com/ratel-online/pieces/card"
	"github.com/ratel-online/pieces/consts"
	"github.com/ratel-online/pieces/deck"
	"github.com/ratel-online/pieces/dice"
	"github.com/ratel-online/pieces/event"
)

// Player owns a hand, which is a deck seeded with no standard cards.
type Player struct {
	name string
	npc  bool
	hand *deck.Deck
}

func New(name string, npc bool, value deck.ValueFunc) *Player {
	return &Player{
		name: name,
		npc:  npc,
		hand: deck.New(0, value),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsNPC() bool {
	return p.npc
}

func (p *Player) Hand() *deck.Deck {
	return p.hand
}

func (p *Player) String() string {
	return p.name
}

// GetCard puts a card in the hand, or draws the front card of a deck.
func (p *Player) GetCard(item interface{}) error {
	switch item := item.(type) {
	case card.Card:
		return p.take([]card.Card{item})
	case *card.Card:
		if item != nil {
			return p.take([]card.Card{*item})
		}
	case *deck.Deck:
		if item != nil {
			return p.GetCards(item, 1)
		}
	}
	return consts.ErrorsTypeMismatch.Errorf("can only get a card or a card from a deck, got %T", item)
}

// GetCards draws amount cards from the front of from. Nothing is drawn
// when from holds fewer cards.
func (p *Player) GetCards(from *deck.Deck, amount int) error {
	cards, err := from.DrawN(amount)
	if err != nil {
		return err
	}
	return p.take(cards)
}

func (p *Player) take(cards []card.Card) error {
	if err := p.hand.AddCards(cards); err != nil {
		return err
	}
	event.CardsTaken.Emit(event.CardsTakenPayload{
		PlayerName: p.name,
		Cards:      cards,
	})
	return nil
}

// DropCard removes c from the hand, or a uniformly random card when c is
// nil, and adds it to to when given.
func (p *Player) DropCard(c *card.Card, to *deck.Deck) (card.Card, error) {
	var dropped card.Card
	if c == nil {
		if p.hand.Empty() {
			return card.Card{}, consts.ErrorsEmptyDeck.Errorf("%s has no cards", p.name)
		}
		dropped = p.hand.Cards()[rand.Intn(p.hand.Size())]
	} else {
		if !p.hand.Contains(*c) {
			return card.Card{}, consts.ErrorsNotFound.Errorf("card %s not in %s's hand", *c, p.name)
		}
		dropped = *c
	}
	if err := p.hand.Remove(dropped); err != nil {
		return card.Card{}, err
	}
	if to != nil {
		if err := to.AddCard(dropped); err != nil {
			return card.Card{}, err
		}
	}
	event.CardDropped.Emit(event.CardDroppedPayload{
		PlayerName: p.name,
		Card:       dropped,
		Discarded:  to == nil,
	})
	return dropped, nil
}

func (p *Player) ClearHand() {
	p.hand.Clear()
}

// RollDice rolls one die per entry of sides.
func (p *Player) RollDice(sides ...int) ([]int, error) {
	items := make([]interface{}, 0, len(sides))
	for _, s := range sides {
		items = append(items, s)
	}
	group, err := dice.NewGroup(items...)
	if err != nil {
		return nil, err
	}
	return group.Roll(), nil
}

func (p *Player) RollDiceSum(sides ...int) (int, error) {
	results, err := p.RollDice(sides...)
	if err != nil {
		return 0, err
	}
	return dice.Sum(results), nil
}
