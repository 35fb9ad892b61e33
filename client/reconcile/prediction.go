package reconcile

import (
	"fmt"

	"github.com/cbodonnell/lanes/pkg/renderstate"
)

// MoveSender sends movement intents to the server.
type MoveSender interface {
	SendMove(dx float32, dy float32) error
}

// Predictor applies local movement to the store ahead of the server and
// forwards the same intent to the server.
type Predictor struct {
	store  *renderstate.Store
	sender MoveSender
	// lastDX and lastDY are the last intent sent, so that releasing the keys
	// sends a single stop
	lastDX float32
	lastDY float32
}

func NewPredictor(store *renderstate.Store, sender MoveSender) *Predictor {
	return &Predictor{
		store:  store,
		sender: sender,
	}
}

// Move predicts movement for the player and reports it to the server.
// A zero intent is only sent once, when movement stops.
func (p *Predictor) Move(playerID int, dx float32, dy float32) error {
	moving := dx != 0 || dy != 0
	if !moving && p.lastDX == 0 && p.lastDY == 0 {
		return nil
	}

	if moving {
		if err := p.store.PredictLocalMovement(playerID, dx, dy); err != nil {
			return fmt.Errorf("failed to predict local movement: %w", err)
		}
	}

	p.lastDX, p.lastDY = dx, dy
	if err := p.sender.SendMove(dx, dy); err != nil {
		return fmt.Errorf("failed to send move: %v", err)
	}
	return nil
}
