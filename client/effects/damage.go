package effects

import (
	"fmt"

	"github.com/cbodonnell/lanes/pkg/renderstate"
)

const (
	DefaultDamageTextTTL  = 800
	DefaultDamageTextRise = 60
)

// DamageText is a number floating up from a champion or structure that lost health.
type DamageText struct {
	Text string
	X    float32
	Y    float32
	// TTL is the remaining time on screen in milliseconds
	TTL int
}

// DamageTracker compares consecutive snapshots and spawns damage text for
// every champion, tower and base whose health dropped.
type DamageTracker struct {
	ttl  int
	rise float32
	// offsets lift the text above the entity it belongs to
	playerOffset float32
	towerOffset  float32
	baseOffset   float32

	players []int32
	towers  []int32
	bases   []int32
	texts   []DamageText
}

type NewDamageTrackerOptions struct {
	// TTL is how long damage text stays on screen in milliseconds
	TTL int
	// Rise is how far damage text moves up per second
	Rise         float32
	PlayerOffset float32
	TowerOffset  float32
	BaseOffset   float32
}

func NewDamageTracker(opts NewDamageTrackerOptions) *DamageTracker {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultDamageTextTTL
	}
	rise := opts.Rise
	if rise == 0 {
		rise = DefaultDamageTextRise
	}
	return &DamageTracker{
		ttl:          ttl,
		rise:         rise,
		playerOffset: opts.PlayerOffset,
		towerOffset:  opts.TowerOffset,
		baseOffset:   opts.BaseOffset,
	}
}

// Update ages the current texts by elapsed milliseconds and spawns new
// ones for health lost since the previous snapshot.
func (t *DamageTracker) Update(snapshot renderstate.Snapshot, elapsed int) {
	kept := t.texts[:0]
	for _, text := range t.texts {
		text.TTL -= elapsed
		if text.TTL <= 0 {
			continue
		}
		text.Y -= t.rise * float32(elapsed) / 1000
		kept = append(kept, text)
	}
	t.texts = kept

	if snapshot.Lifecycle != renderstate.LifecycleReady {
		t.players, t.towers, t.bases = nil, nil, nil
		return
	}

	for i, p := range snapshot.Players {
		t.compare(t.players, i, p.Health, p.Position.X, p.Position.Y-t.playerOffset)
	}
	for i, s := range snapshot.Towers {
		t.compare(t.towers, i, s.Health, s.Position.X, s.Position.Y-t.towerOffset)
	}
	for i, s := range snapshot.Bases {
		t.compare(t.bases, i, s.Health, s.Position.X, s.Position.Y-t.baseOffset)
	}

	t.players = t.players[:0]
	for _, p := range snapshot.Players {
		t.players = append(t.players, p.Health)
	}
	t.towers = structureHealth(t.towers[:0], snapshot.Towers)
	t.bases = structureHealth(t.bases[:0], snapshot.Bases)
}

func structureHealth(dst []int32, structures []renderstate.Structure) []int32 {
	for _, s := range structures {
		dst = append(dst, s.Health)
	}
	return dst
}

func (t *DamageTracker) compare(previous []int32, index int, health int32, x float32, y float32) {
	if index >= len(previous) || health >= previous[index] {
		return
	}
	t.texts = append(t.texts, DamageText{
		Text: fmt.Sprintf("-%d", previous[index]-health),
		X:    x,
		Y:    y,
		TTL:  t.ttl,
	})
}

// Texts returns the damage text currently on screen.
func (t *DamageTracker) Texts() []DamageText {
	return append([]DamageText(nil), t.texts...)
}
