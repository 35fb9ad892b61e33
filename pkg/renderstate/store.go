package renderstate

import (
	"github.com/cbodonnell/lanes/pkg/game/constants"
	"github.com/cbodonnell/lanes/pkg/kinematic"
)

// ArenaBounds are the bounds that locally predicted player positions are clamped to.
var ArenaBounds = kinematic.Bounds{
	MinX: 0,
	MinY: 0,
	MaxX: constants.ArenaWidth,
	MaxY: constants.ArenaHeight,
}

// Store mirrors the server's match state for rendering and short-term prediction.
//
// A Store is not safe for concurrent use. It is expected to be owned by the
// game loop, which is the only goroutine that mutates or reads it. Use
// Snapshot to hand its contents to other goroutines.
type Store struct {
	lifecycle Lifecycle
	players   []Player
	minions   []Minion
	towers    []Structure
	bases     []Structure
}

// NewStore returns an uninitialized store.
func NewStore() *Store {
	return &Store{
		lifecycle: LifecycleUninitialized,
	}
}

// Initialize places the players, towers and bases at their starting positions.
// Calls after the first have no effect.
func (s *Store) Initialize() {
	if s.lifecycle == LifecycleReady {
		return
	}

	startingX := [constants.PlayerCount]float32{constants.PlayerZeroStartingX, constants.PlayerOneStartingX}
	s.players = make([]Player, 0, constants.PlayerCount)
	for team, x := range startingX {
		s.players = append(s.players, Player{
			Position: kinematic.Vector{X: x, Y: constants.PlayerStartingY},
			Health:   constants.PlayerMaxHealth,
			Team:     int32(team),
		})
	}

	// team 0 defends the left edge of the lane, team 1 the right edge
	s.towers = make([]Structure, 0, constants.TowerCount)
	for team := 0; team < constants.TowerCount; team++ {
		s.towers = append(s.towers, Structure{
			Position: kinematic.Vector{X: float32(team) * constants.ArenaWidth, Y: constants.LaneY},
			Health:   constants.TowerHealth,
			Team:     int32(team),
		})
	}
	s.bases = make([]Structure, 0, constants.BaseCount)
	for team := 0; team < constants.BaseCount; team++ {
		s.bases = append(s.bases, Structure{
			Position: kinematic.Vector{X: float32(team) * constants.ArenaWidth, Y: constants.LaneY},
			Health:   constants.BaseHealth,
			Team:     int32(team),
		})
	}
	s.minions = make([]Minion, 0)
	s.lifecycle = LifecycleReady
}

// State returns the lifecycle state of the store.
func (s *Store) State() Lifecycle {
	return s.lifecycle
}

func (s *Store) player(playerID int) (*Player, error) {
	if s.lifecycle != LifecycleReady {
		return nil, ErrNotReady
	}
	if playerID < 0 || playerID >= len(s.players) {
		return nil, indexError("player", playerID, len(s.players))
	}
	return &s.players[playerID], nil
}

func (s *Store) minion(index int) (*Minion, error) {
	if s.lifecycle != LifecycleReady {
		return nil, ErrNotReady
	}
	if index < 0 || index >= len(s.minions) {
		return nil, indexError("minion", index, len(s.minions))
	}
	return &s.minions[index], nil
}

func (s *Store) tower(index int) (*Structure, error) {
	if s.lifecycle != LifecycleReady {
		return nil, ErrNotReady
	}
	if index < 0 || index >= len(s.towers) {
		return nil, indexError("tower", index, len(s.towers))
	}
	return &s.towers[index], nil
}

func (s *Store) base(index int) (*Structure, error) {
	if s.lifecycle != LifecycleReady {
		return nil, ErrNotReady
	}
	if index < 0 || index >= len(s.bases) {
		return nil, indexError("base", index, len(s.bases))
	}
	return &s.bases[index], nil
}

// PredictLocalMovement moves the player by (dx, dy) scaled by the player speed
// ahead of server confirmation, then clamps the result to the arena.
func (s *Store) PredictLocalMovement(playerID int, dx float32, dy float32) error {
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	next := p.Position.Add(kinematic.Displacement(dx, dy, constants.PlayerSpeed))
	p.Position = ArenaBounds.Clamp(next)
	return nil
}

// ReconcilePlayerPosition overwrites the player position with the server's value.
// The position is not clamped.
func (s *Store) ReconcilePlayerPosition(playerID int, x float32, y float32) error {
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	p.Position = kinematic.Vector{X: x, Y: y}
	return nil
}

func (s *Store) SetPlayerHealth(playerID int, health int32) error {
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	p.Health = health
	return nil
}

func (s *Store) SetAbilityCooldown(playerID int, cooldown int32) error {
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	p.AbilityCooldown = cooldown
	return nil
}

// UpsertMinion writes the minion at index, growing the minion list with
// zeroed minions if it is too short.
func (s *Store) UpsertMinion(index int, x float32, y float32, health int32, team int32) error {
	if s.lifecycle != LifecycleReady {
		return ErrNotReady
	}
	if index < 0 {
		return indexError("minion", index, len(s.minions))
	}
	for len(s.minions) <= index {
		s.minions = append(s.minions, Minion{})
	}
	s.minions[index] = Minion{
		Position: kinematic.Vector{X: x, Y: y},
		Health:   health,
		Team:     team,
	}
	return nil
}

// SetMinionCount truncates or zero pads the minion list to exactly count minions.
func (s *Store) SetMinionCount(count int) error {
	if s.lifecycle != LifecycleReady {
		return ErrNotReady
	}
	if count < 0 {
		return indexError("minion count", count, len(s.minions))
	}
	if count <= len(s.minions) {
		s.minions = s.minions[:count]
		return nil
	}
	s.minions = append(s.minions, make([]Minion, count-len(s.minions))...)
	return nil
}

func (s *Store) SetTowerHealth(index int, health int32) error {
	t, err := s.tower(index)
	if err != nil {
		return err
	}
	t.Health = health
	return nil
}

func (s *Store) SetBaseHealth(index int, health int32) error {
	b, err := s.base(index)
	if err != nil {
		return err
	}
	b.Health = health
	return nil
}

func (s *Store) PlayerX(playerID int) (float32, error) {
	p, err := s.player(playerID)
	if err != nil {
		return 0, err
	}
	return p.Position.X, nil
}

func (s *Store) PlayerY(playerID int) (float32, error) {
	p, err := s.player(playerID)
	if err != nil {
		return 0, err
	}
	return p.Position.Y, nil
}

func (s *Store) PlayerHealth(playerID int) (int32, error) {
	p, err := s.player(playerID)
	if err != nil {
		return 0, err
	}
	return p.Health, nil
}

func (s *Store) PlayerTeam(playerID int) (int32, error) {
	p, err := s.player(playerID)
	if err != nil {
		return 0, err
	}
	return p.Team, nil
}

func (s *Store) AbilityCooldown(playerID int) (int32, error) {
	p, err := s.player(playerID)
	if err != nil {
		return 0, err
	}
	return p.AbilityCooldown, nil
}

// MinionCount returns the number of minions the server last declared.
func (s *Store) MinionCount() int {
	return len(s.minions)
}

func (s *Store) MinionX(index int) (float32, error) {
	m, err := s.minion(index)
	if err != nil {
		return 0, err
	}
	return m.Position.X, nil
}

func (s *Store) MinionY(index int) (float32, error) {
	m, err := s.minion(index)
	if err != nil {
		return 0, err
	}
	return m.Position.Y, nil
}

func (s *Store) MinionHealth(index int) (int32, error) {
	m, err := s.minion(index)
	if err != nil {
		return 0, err
	}
	return m.Health, nil
}

func (s *Store) MinionTeam(index int) (int32, error) {
	m, err := s.minion(index)
	if err != nil {
		return 0, err
	}
	return m.Team, nil
}

func (s *Store) TowerHealth(index int) (int32, error) {
	t, err := s.tower(index)
	if err != nil {
		return 0, err
	}
	return t.Health, nil
}

func (s *Store) TowerX(index int) (float32, error) {
	t, err := s.tower(index)
	if err != nil {
		return 0, err
	}
	return t.Position.X, nil
}

func (s *Store) TowerY(index int) (float32, error) {
	t, err := s.tower(index)
	if err != nil {
		return 0, err
	}
	return t.Position.Y, nil
}

func (s *Store) TowerTeam(index int) (int32, error) {
	t, err := s.tower(index)
	if err != nil {
		return 0, err
	}
	return t.Team, nil
}

func (s *Store) BaseHealth(index int) (int32, error) {
	b, err := s.base(index)
	if err != nil {
		return 0, err
	}
	return b.Health, nil
}

func (s *Store) BaseX(index int) (float32, error) {
	b, err := s.base(index)
	if err != nil {
		return 0, err
	}
	return b.Position.X, nil
}

func (s *Store) BaseY(index int) (float32, error) {
	b, err := s.base(index)
	if err != nil {
		return 0, err
	}
	return b.Position.Y, nil
}

func (s *Store) BaseTeam(index int) (int32, error) {
	b, err := s.base(index)
	if err != nil {
		return 0, err
	}
	return b.Team, nil
}

// Winner returns the team that won the match, if any base has been destroyed.
// The team owning the first destroyed base loses.
func (s *Store) Winner() (team int32, ok bool) {
	for _, b := range s.bases {
		if b.Health <= 0 {
			return 1 - b.Team, true
		}
	}
	return 0, false
}

// Snapshot returns a deep copy of the store.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Lifecycle: s.lifecycle,
		Players:   append([]Player(nil), s.players...),
		Minions:   append([]Minion(nil), s.minions...),
		Towers:    append([]Structure(nil), s.towers...),
		Bases:     append([]Structure(nil), s.bases...),
		Signature: s.IntegritySignature(),
		Plausible: s.Plausible(),
	}
}
