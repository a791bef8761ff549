package parameter

import "time"

// Waves
const (
	// WaveInterval is the time between helper spawns while running
	WaveInterval = 5 * time.Second

	// SpawnFarCells is the preferred minimum helper spawn distance from the player (cells)
	SpawnFarCells = 6.6

	// SpawnForceAfter is the sample count after which any cell is accepted
	SpawnForceAfter = 50

	// SpawnMaxAttempts bounds the total samples per spawn
	SpawnMaxAttempts = 100

	// SpawnSafeCells is the minimum player start distance from every pursuer (cells)
	SpawnSafeCells = 5.0
)

// Events
const (
	// EventCapacity bounds pending events between drains; the oldest are dropped past it
	EventCapacity = 256
)
