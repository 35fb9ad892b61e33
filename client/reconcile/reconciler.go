package reconcile

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/messages"
	"github.com/cbodonnell/lanes/pkg/queue"
	"github.com/cbodonnell/lanes/pkg/renderstate"
)

// Reconciler overwrites the render state with server authoritative game states.
type Reconciler struct {
	store *renderstate.Store
	// lastTimestamp is the timestamp of the last game state applied
	lastTimestamp int64
	// applied counts the game states applied since the last reset
	applied int
}

func NewReconciler(store *renderstate.Store) *Reconciler {
	return &Reconciler{
		store: store,
	}
}

// LastTimestamp returns the server timestamp of the last applied game state.
func (r *Reconciler) LastTimestamp() int64 {
	return r.lastTimestamp
}

// Applied returns the number of game states applied.
func (r *Reconciler) Applied() int {
	return r.applied
}

// Reset forgets the last applied timestamp, e.g. after reconnecting to a new match.
func (r *Reconciler) Reset() {
	r.lastTimestamp = 0
	r.applied = 0
}

// ProcessServerMessages drains the queue and applies every game state in it.
func (r *Reconciler) ProcessServerMessages(q queue.Queue) error {
	serverMessages, err := q.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read server messages: %v", err)
	}

	for _, item := range serverMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		switch message.Type {
		case messages.MessageTypeServerGameState:
			if err := r.handleServerGameState(message); err != nil {
				log.Error("Failed to handle server game state: %v", err)
			}
		default:
			log.Warn("Received unexpected message type from server: %s", message.Type)
		}
	}

	return nil
}

func (r *Reconciler) handleServerGameState(message *messages.Message) error {
	gameState, err := messages.DeserializeGameState(message.Payload)
	if err != nil {
		return fmt.Errorf("failed to deserialize game state: %v", err)
	}
	return r.ApplyGameState(gameState)
}

// ApplyGameState mirrors a server game state into the store. Game states
// older than the last applied one are dropped, and nothing is applied
// before the store is initialized. A field that cannot be
// applied does not stop the rest of the update.
func (r *Reconciler) ApplyGameState(gameState *messages.ServerGameState) error {
	// a game state that could not be applied must not make later ones stale
	if r.store.State() != renderstate.LifecycleReady {
		return fmt.Errorf("failed to apply game state %d: %w", gameState.Timestamp, renderstate.ErrNotReady)
	}
	if gameState.Timestamp < r.lastTimestamp {
		log.Warn("Received outdated game state: %d < %d", gameState.Timestamp, r.lastTimestamp)
		return nil
	}

	var errs []error
	for i, p := range gameState.Players {
		if err := r.store.ReconcilePlayerPosition(i, p.Position.X, p.Position.Y); err != nil {
			errs = append(errs, fmt.Errorf("failed to reconcile player %d position: %w", i, err))
			continue
		}
		if err := r.store.SetPlayerHealth(i, p.Health); err != nil {
			errs = append(errs, fmt.Errorf("failed to set player %d health: %w", i, err))
		}
		if err := r.store.SetAbilityCooldown(i, p.AbilityCooldown); err != nil {
			errs = append(errs, fmt.Errorf("failed to set player %d ability cooldown: %w", i, err))
		}
	}

	if err := r.store.SetMinionCount(len(gameState.Minions)); err != nil {
		errs = append(errs, fmt.Errorf("failed to set minion count: %w", err))
	}
	for i, m := range gameState.Minions {
		if err := r.store.UpsertMinion(i, m.Position.X, m.Position.Y, m.Health, m.Team); err != nil {
			errs = append(errs, fmt.Errorf("failed to upsert minion %d: %w", i, err))
		}
	}

	for i, t := range gameState.Towers {
		if err := r.store.SetTowerHealth(i, t.Health); err != nil {
			errs = append(errs, fmt.Errorf("failed to set tower %d health: %w", i, err))
		}
	}
	for i, b := range gameState.Bases {
		if err := r.store.SetBaseHealth(i, b.Health); err != nil {
			errs = append(errs, fmt.Errorf("failed to set base %d health: %w", i, err))
		}
	}

	r.lastTimestamp = gameState.Timestamp
	r.applied++

	return errors.Join(errs...)
}
