package component

import "github.com/milk9111/riptide/ecs"

// Timers is a bank of named countdown timers. Values may run negative
// internally; reads clamp to zero so an expired timer never re-triggers.
type Timers struct {
	values map[string]float64
}

var TimersKind = ecs.NewComponentKind[Timers]()

// Tick decrements every timer by dt.
func (t *Timers) Tick(dt float64) {
	if t == nil {
		return
	}
	for name := range t.values {
		t.values[name] -= dt
	}
}

// Set starts or restarts a named timer.
func (t *Timers) Set(name string, duration float64) {
	if t == nil {
		return
	}
	if t.values == nil {
		t.values = make(map[string]float64)
	}
	t.values[name] = duration
}

// Remaining returns the clamped remaining duration.
func (t *Timers) Remaining(name string) float64 {
	if t == nil || t.values == nil {
		return 0
	}
	if v := t.values[name]; v > 0 {
		return v
	}
	return 0
}

// Active reports whether the timer has time left.
func (t *Timers) Active(name string) bool {
	return t.Remaining(name) > 0
}

// Consume forces a timer to zero so it cannot fire again this cycle.
func (t *Timers) Consume(name string) {
	if t == nil || t.values == nil {
		return
	}
	if _, ok := t.values[name]; ok {
		t.values[name] = 0
	}
}
