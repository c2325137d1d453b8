// Package event fans out notifications about cards moving in and out of
// player hands. Emitters are process-wide; listeners are called in the
// order they were added, on the emitting goroutine.
package event

import "github.com/ratel-online/pieces/card"

var CardsTaken = &cardsTakenEmitter{}

type CardsTakenPayload struct {
	PlayerName string
	Cards      []card.Card
}

type CardsTakenListener interface {
	OnCardsTaken(CardsTakenPayload)
}

type cardsTakenEmitter struct {
	listeners []CardsTakenListener
}

func (e *cardsTakenEmitter) AddListener(listener CardsTakenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsTakenEmitter) Emit(payload CardsTakenPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsTaken(payload)
	}
}
