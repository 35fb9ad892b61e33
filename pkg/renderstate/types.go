package renderstate

import "github.com/cbodonnell/lanes/pkg/kinematic"

// Player is the mirrored state of a champion.
type Player struct {
	Position kinematic.Vector `json:"position"`
	Health   int32            `json:"health"`
	Team     int32            `json:"team"`
	// AbilityCooldown is the number of server ticks until the ability is ready
	AbilityCooldown int32 `json:"abilityCooldown"`
}

// Minion is the mirrored state of a lane minion.
type Minion struct {
	Position kinematic.Vector `json:"position"`
	Health   int32            `json:"health"`
	Team     int32            `json:"team"`
}

// Structure is the mirrored state of a tower or base.
// Its position never changes after the store is initialized.
type Structure struct {
	Position kinematic.Vector `json:"position"`
	Health   int32            `json:"health"`
	Team     int32            `json:"team"`
}

// Lifecycle is the initialization state of a Store.
type Lifecycle uint8

const (
	LifecycleUninitialized Lifecycle = iota
	LifecycleReady
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleUninitialized:
		return "Uninitialized"
	case LifecycleReady:
		return "Ready"
	}
	return "Unknown"
}

// Snapshot is a deep copy of the store contents, safe to hand to other goroutines.
type Snapshot struct {
	Lifecycle Lifecycle   `json:"lifecycle"`
	Players   []Player    `json:"players"`
	Minions   []Minion    `json:"minions"`
	Towers    []Structure `json:"towers"`
	Bases     []Structure `json:"bases"`
	Signature int32       `json:"signature"`
	Plausible bool        `json:"plausible"`
}
