package event

import "github.com/ratel-online/pieces/card"

var CardDropped = &cardDroppedEmitter{}

// CardDroppedPayload describes a card leaving a hand. Discarded is false
// when the card was moved onto another deck.
type CardDroppedPayload struct {
	PlayerName string
	Card       card.Card
	Discarded  bool
}

type CardDroppedListener interface {
	OnCardDropped(CardDroppedPayload)
}

type cardDroppedEmitter struct {
	listeners []CardDroppedListener
}

func (e *cardDroppedEmitter) AddListener(listener CardDroppedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDroppedEmitter) Emit(payload CardDroppedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDropped(payload)
	}
}
