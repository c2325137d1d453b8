package ui

import (
	"github.com/ratel-online/pieces/deck"
	"github.com/ratel-online/pieces/event"
	"github.com/ratel-online/pieces/player"
)

var Message = MessageWriter{}

type MessageWriter struct{}

// Listen subscribes the writer to player events.
func (m MessageWriter) Listen() {
	event.CardsTaken.AddListener(m)
	event.CardDropped.AddListener(m)
}

func (m MessageWriter) OnCardsTaken(payload event.CardsTakenPayload) {
	if len(payload.Cards) == 1 {
		Printfln("%s took %s!", payload.PlayerName, payload.Cards[0].Paint())
	} else {
		Printfln("%s took %d cards!", payload.PlayerName, len(payload.Cards))
	}
}

func (m MessageWriter) OnCardDropped(payload event.CardDroppedPayload) {
	if payload.Discarded {
		Printfln("%s discarded %s!", payload.PlayerName, payload.Card.Paint())
	} else {
		Printfln("%s passed %s!", payload.PlayerName, payload.Card.Paint())
	}
}

func (m MessageWriter) Hand(p *player.Player) {
	Printfln("%s's hand is %s (value %.1f)", p.Name(), Cards(p.Hand().Cards()), p.Hand().Value())
}

func (m MessageWriter) DiceRolled(playerName string, results []int, total int) {
	Printfln("%s rolled %v for a total of %d!", playerName, results, total)
}

func (m MessageWriter) DeckSummary(d *deck.Deck) {
	Printfln("%d card(s) left in the deck", d.Size())
}
