package ecs

// World owns entities, component stores, and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[ComponentID]*sparseSet
	events   EventQueue

	physicsWorld *PhysicsWorld
	fixedDT      float64
}

// NewWorld creates an empty world with the given fixed simulation step.
func NewWorld(fixedDT float64) *World {
	return &World{
		stores:  make(map[ComponentID]*sparseSet),
		fixedDT: fixedDT,
	}
}

// DT returns the fixed simulation step in seconds.
func (w *World) DT() float64 {
	if w == nil {
		return 0
	}
	return w.fixedDT
}

// SetPhysicsWorld attaches a physics world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// Physics returns the attached physics world, if any.
func (w *World) Physics() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) storeFor(id ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfExists(id ComponentID) *sparseSet {
	if w == nil {
		return nil
	}
	return w.stores[id]
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity invalidates an entity handle and drops its components.
// Returns false for handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	w.entities.destroy(e)
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// entityStore tracks generations and recycles freed ids.
type entityStore struct {
	gens []generation
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens))
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) || s.gens[id-1] != e.generation() {
		return
	}
	s.gens[id-1]++
	s.free = append(s.free, id)
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	if s.gens[id-1] != e.generation() {
		return false
	}
	// ids on the free list are dead even though the generation matches
	for _, f := range s.free {
		if f == id {
			return false
		}
	}
	return true
}

func (s *entityStore) aliveID(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.gens) {
		return 0, false
	}
	e := makeEntity(id, s.gens[id-1])
	if !s.isAlive(e) {
		return 0, false
	}
	return e, true
}

func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, len(s.gens))
	for i := range s.gens {
		if e, ok := s.aliveID(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}
