package renderstate

import "github.com/cbodonnell/lanes/pkg/game/constants"

// IntegritySignature returns a coarse checksum of the mirrored players and
// minions for the server to spot check against its own state. Each entity
// contributes its fields summed in float32 and truncated toward zero.
// It is not collision resistant and not tamper proof.
func (s *Store) IntegritySignature() int32 {
	var signature int32
	for _, p := range s.players {
		signature += int32(p.Position.X + p.Position.Y + float32(p.Health) + float32(p.AbilityCooldown))
	}
	for _, m := range s.minions {
		signature += int32(m.Position.X + m.Position.Y + float32(m.Health))
	}
	return signature
}

// Plausible returns false if any player's health is outside [0, max] or any
// ability cooldown is negative. This is a sanity check on the local mirror,
// not a security boundary.
func (s *Store) Plausible() bool {
	for _, p := range s.players {
		if p.Health < 0 || p.Health > constants.PlayerMaxHealth || p.AbilityCooldown < 0 {
			return false
		}
	}
	return true
}
