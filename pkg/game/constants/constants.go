package constants

const (
	// ArenaWidth is the width of the arena in world units
	ArenaWidth float32 = 800.0
	// ArenaHeight is the height of the arena in world units
	ArenaHeight float32 = 600.0

	// PlayerCount is the number of players in a match
	PlayerCount = 2
	// TowerCount is the number of towers in a match
	TowerCount = 2
	// BaseCount is the number of bases in a match
	BaseCount = 2

	// PlayerSpeed is the distance a player moves per prediction step
	PlayerSpeed float32 = 5.0
	// PlayerMaxHealth is the highest health a player can legitimately have
	PlayerMaxHealth int32 = 100

	// Player starting positions
	PlayerZeroStartingX float32 = 50.0
	PlayerOneStartingX  float32 = 750.0
	PlayerStartingY     float32 = 300.0

	// LaneY is the y coordinate of the lane that towers and bases sit on
	LaneY float32 = 300.0

	// TowerHealth is the starting health of a tower
	TowerHealth int32 = 200
	// BaseHealth is the starting health of a base
	BaseHealth int32 = 500

	// AbilityCooldownTicks is the cooldown the server applies after an ability (5 seconds at 60 ticks per second)
	AbilityCooldownTicks int32 = 300
	// TicksPerSecond is the server tick rate that cooldowns are counted in
	TicksPerSecond int32 = 60
)
