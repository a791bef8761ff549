// Package engine drives the maze-chase simulation one frame at a time.
//
// A Simulation owns the maze grid, the pursuers, the projectile list and the player point.
// Each Tick runs the systems in a fixed order against one player position and one flow field,
// so a fixed seed reproduces a run exactly.
//
// Events are cosmetic notifications for the frontend (particles, flashes, sounds in a richer
// client). They accumulate until ConsumeEvents is called; the core never reads them back.
package engine

import (
	"github.com/lixenwraith/maze-chase/component"
	"github.com/lixenwraith/maze-chase/parameter"
)

// EventType identifies a frontend-facing notification
type EventType uint8

const (
	// EventRunStarted fires when Start moves the simulation to running
	EventRunStarted EventType = iota

	// EventHelperSpawned fires for every helper added by the wave timer or reset
	// Payload: ID, X, Y of the new helper
	EventHelperSpawned

	// EventFired fires when any pursuer launches a projectile
	// Payload: ID of the shooter, Projectile kind, X, Y launch point
	EventFired

	// EventOrbCaught fires when a staff caster recovers its orb
	// Payload: ID of the caster, X, Y
	EventOrbCaught

	// EventGameOver fires once per run
	// Payload: Reason, X, Y of the player
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventRunStarted:
		return "RunStarted"
	case EventHelperSpawned:
		return "HelperSpawned"
	case EventFired:
		return "Fired"
	case EventOrbCaught:
		return "OrbCaught"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single notification; unused fields are zero
type Event struct {
	Type       EventType
	Tick       uint64
	ID         int
	Projectile component.ProjectileKind
	Reason     Reason
	X, Y       float64
}

// eventBuffer collects events between consumer drains
// Holds at most parameter.EventCapacity events; when full the oldest is dropped
type eventBuffer struct {
	events []Event
}

func newEventBuffer() eventBuffer {
	return eventBuffer{events: make([]Event, 0, parameter.EventCapacity)}
}

func (b *eventBuffer) push(e Event) {
	if len(b.events) >= parameter.EventCapacity {
		copy(b.events, b.events[1:])
		b.events = b.events[:len(b.events)-1]
	}
	b.events = append(b.events, e)
}

// peek returns a copy of pending events
func (b *eventBuffer) peek() []Event {
	if len(b.events) == 0 {
		return nil
	}
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// consume returns pending events and empties the buffer
func (b *eventBuffer) consume() []Event {
	out := b.peek()
	b.events = b.events[:0]
	return out
}

func (b *eventBuffer) clear() {
	b.events = b.events[:0]
}
