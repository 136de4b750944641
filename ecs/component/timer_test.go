package component

import "testing"

func TestTimersTickAndClamp(t *testing.T) {
	var timers Timers
	timers.Set("coyote", 0.1)

	timers.Tick(0.04)
	if got := timers.Remaining("coyote"); got < 0.059 || got > 0.061 {
		t.Fatalf("expected ~0.06 remaining, got %f", got)
	}
	if !timers.Active("coyote") {
		t.Fatalf("expected timer active")
	}

	// underflow past zero is kept internally but clamped on read
	timers.Tick(0.2)
	if got := timers.Remaining("coyote"); got != 0 {
		t.Fatalf("expected clamped zero, got %f", got)
	}
	if timers.Active("coyote") {
		t.Fatalf("expected timer inactive after expiry")
	}
}

func TestTimersConsume(t *testing.T) {
	var timers Timers
	timers.Set("jump_buffer", 0.5)
	timers.Consume("jump_buffer")
	if timers.Active("jump_buffer") {
		t.Fatalf("expected consumed timer inactive")
	}

	timers.Set("jump_buffer", 0.5)
	if !timers.Active("jump_buffer") {
		t.Fatalf("expected reset timer active again")
	}
}

func TestTimersUnknownName(t *testing.T) {
	var timers Timers
	if timers.Active("missing") {
		t.Fatalf("unknown timer must read inactive")
	}
	if got := timers.Remaining("missing"); got != 0 {
		t.Fatalf("unknown timer must read zero, got %f", got)
	}
	timers.Consume("missing")
	timers.Tick(1)
}

func TestTimersIndependent(t *testing.T) {
	var timers Timers
	timers.Set("a", 1.0)
	timers.Set("b", 0.1)
	timers.Tick(0.5)

	if !timers.Active("a") {
		t.Fatalf("expected a still active")
	}
	if timers.Active("b") {
		t.Fatalf("expected b expired")
	}
}
