package ecs

import "testing"

type testPos struct {
	X, Y float64
}

type testTag struct{}

var (
	testPosKind = NewComponentKind[testPos]()
	testTagKind = NewComponentKind[testTag]()
)

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld(1.0 / 60.0)

	e := CreateEntity(w)
	if !IsAlive(w, e) {
		t.Fatalf("expected new entity to be alive")
	}

	if !DestroyEntity(w, e) {
		t.Fatalf("expected destroy to succeed")
	}
	if IsAlive(w, e) {
		t.Fatalf("expected destroyed entity to be dead")
	}
	if DestroyEntity(w, e) {
		t.Fatalf("expected second destroy to fail")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld(1.0 / 60.0)

	first := CreateEntity(w)
	DestroyEntity(w, first)

	second := CreateEntity(w)
	if first == second {
		t.Fatalf("expected recycled id to carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle must stay dead after id reuse")
	}
	if !IsAlive(w, second) {
		t.Fatalf("expected recycled entity to be alive")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)

	if err := Add(w, e, testPosKind, &testPos{X: 3, Y: 4}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, ok := Get(w, e, testPosKind)
	if !ok || got.X != 3 || got.Y != 4 {
		t.Fatalf("expected stored component, got %+v ok=%v", got, ok)
	}
	if !Has(w, e, testPosKind) {
		t.Fatalf("expected Has to report the component")
	}
	if !Remove(w, e, testPosKind) {
		t.Fatalf("expected remove to succeed")
	}
	if Has(w, e, testPosKind) {
		t.Fatalf("expected component gone after remove")
	}
	if Remove(w, e, testPosKind) {
		t.Fatalf("expected second remove to fail")
	}
}

func TestAddRejectsDeadEntity(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)
	DestroyEntity(w, e)

	if err := Add(w, e, testPosKind, &testPos{}); err == nil {
		t.Fatalf("expected add on dead entity to fail")
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)
	Add(w, e, testPosKind, &testPos{X: 1})
	DestroyEntity(w, e)

	reused := CreateEntity(w)
	if Has(w, reused, testPosKind) {
		t.Fatalf("recycled entity must not inherit components")
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		Add(w, e, testPosKind, &testPos{X: float64(i)})
	}

	visited := 0
	ForEach(w, testPosKind, func(e Entity, _ *testPos) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("expected empty world, got %d entities", n)
	}
}

func TestForEach2RequiresBothComponents(t *testing.T) {
	w := NewWorld(1.0 / 60.0)

	both := CreateEntity(w)
	Add(w, both, testPosKind, &testPos{})
	Add(w, both, testTagKind, &testTag{})

	posOnly := CreateEntity(w)
	Add(w, posOnly, testPosKind, &testPos{})

	var seen []Entity
	ForEach2(w, testPosKind, testTagKind, func(e Entity, _ *testPos, _ *testTag) {
		seen = append(seen, e)
	})
	if len(seen) != 1 || seen[0] != both {
		t.Fatalf("expected only the entity with both components, got %v", seen)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	w.Events().Push(Event{Type: EventAudioCue})
	w.Events().Push(Event{Type: EventDeath})

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events := w.Events().Drain(); events != nil {
		t.Fatalf("expected empty queue after drain, got %v", events)
	}
}
