package event_test

import (
	"testing"

	"github.com/ratel-online/pieces/card"
	"github.com/ratel-online/pieces/event"
	"github.com/stretchr/testify/require"
)

func TestCardsTaken(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.CardsTaken.AddListener(listenerOne)
	event.CardsTaken.AddListener(listenerTwo)

	payloads := []event.CardsTakenPayload{
		{
			PlayerName: "Someone",
			Cards:      []card.Card{card.MustNew("A", "D")},
		},
		{
			PlayerName: "Somebody",
			Cards:      []card.Card{card.MustNew("2", "C"), card.MustNew("K", "H")},
		},
	}

	for _, payload := range payloads {
		event.CardsTaken.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
