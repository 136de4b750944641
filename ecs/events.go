package ecs

// Event is a notification drained once per tick by the notify system and
// fanned out to external collaborators. Events never feed back into the
// simulation.
type Event struct {
	Type string
	Data any
}

const (
	EventStateChanged = "state_changed"
	EventAudioCue     = "audio_cue"
	EventHit          = "hit"
	EventDeath        = "death"
)

// StateChangedEvent reports an actor's state machine transition.
type StateChangedEvent struct {
	Actor Entity
	Kind  string
	State string
}

// AudioCueEvent is a fire-and-forget sound request.
type AudioCueEvent struct {
	Actor Entity
	Name  string
}

// HitEvent reports a confirmed hit against a target.
type HitEvent struct {
	Attacker Entity
	Target   Entity
	Damage   float64
}

// DeathEvent reports an actor whose health crossed zero.
type DeathEvent struct {
	Actor Entity
	Kind  string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
