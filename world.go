package archecs

// Config holds the knobs a World is built from, grounded on the teacher's
// WorldOptions and warehouse's package-level Config pattern.
type Config struct {
	// InitialCapacity is the number of entity slots pre-reserved. Slot 0 is
	// never issued, so a World holds InitialCapacity live ids starting at 1.
	InitialCapacity int
	// GrowStep is how many additional slots are appended once the current
	// high-water mark reaches the table's capacity.
	GrowStep int
}

// DefaultConfig returns the spec's default knobs: 1000 pre-reserved slots,
// growing by 1000 when exhausted.
func DefaultConfig() Config {
	return Config{InitialCapacity: 1000, GrowStep: 1000}
}

func (c Config) normalized() Config {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultConfig().InitialCapacity
	}
	if c.GrowStep <= 0 {
		c.GrowStep = DefaultConfig().GrowStep
	}
	return c
}

// transitionKey identifies a cached add/remove-component migration from one
// archetype under one component id.
type transitionKey struct {
	from *archetype
	id   int
}

// World aggregates the type registry, the archetype index, the entity
// table, the prefab registry, and the event subsystem, and exposes every
// public operation of the storage engine.
type World struct {
	cfg Config

	registry *registry
	archs    *archetypeIndex

	records  []entityRecord // index 0 unused
	free     []uint32       // stack of freed ids
	highWater uint32        // next never-used id

	addCache    map[transitionKey]*archetype
	removeCache map[transitionKey]*archetype

	prefabs *prefabRegistry
	events  *eventQueue

	Resources Resources
}

// NewWorld builds a World with the given configuration.
func NewWorld(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{
		cfg:         cfg,
		registry:    newRegistry(),
		archs:       newArchetypeIndex(),
		records:     make([]entityRecord, cfg.InitialCapacity+1),
		free:        nil,
		highWater:   1,
		addCache:    make(map[transitionKey]*archetype),
		removeCache: make(map[transitionKey]*archetype),
		prefabs:     newPrefabRegistry(),
		events:      newEventQueue(),
	}
	for i := range w.records {
		w.records[i] = entityRecord{archetype: -1, row: -1}
	}
	return w
}

// Close drops the World's archetypes and drains any undispatched events.
// Go's GC reclaims the memory either way; Close exists so host code has an
// explicit, testable point to release a World, per the spec's destructor.
func (w *World) Close() {
	w.events.clear()
	w.archs = newArchetypeIndex()
	clear(w.addCache)
	clear(w.removeCache)
	w.records = nil
	w.free = nil
}

func (w *World) growTable() {
	newCap := len(w.records) - 1 + w.cfg.GrowStep
	grown := make([]entityRecord, newCap+1)
	copy(grown, w.records)
	for i := len(w.records); i < len(grown); i++ {
		grown[i] = entityRecord{archetype: -1, row: -1}
	}
	w.records = grown
}

// AddEntity creates a new entity in the empty archetype and returns its
// handle.
func (w *World) AddEntity() Entity {
	var id uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		if int(w.highWater) >= len(w.records) {
			w.growTable()
		}
		id = w.highWater
		w.highWater++
	}

	rec := &w.records[id]
	rec.version++
	rec.archetype = 0
	rec.tags = 0

	handle := NewEntity(id, rec.version)
	rec.row = int32(w.archs.empty().append(handle))
	return handle
}

// FreeEntity releases handle's row and tags, detaches it from its
// archetype, and returns its id to the free stack. The version is not
// bumped here; the next AddEntity reuse of this id bumps it, so a stale
// handle queried between free and the next allocation still matches by
// version but is reported as not live via IsLive.
func (w *World) FreeEntity(h Entity) {
	id := h.ID()
	if int(id) >= len(w.records) {
		return
	}
	rec := &w.records[id]
	if rec.version != h.Version() || !rec.live() {
		return
	}

	arch := w.archs.list[rec.archetype]
	moved, ok := arch.removeRow(int(rec.row))
	if ok {
		w.records[moved.ID()].row = rec.row
	}

	rec.archetype = -1
	rec.row = -1
	rec.tags = 0
	w.free = append(w.free, id)
}

// IsLive reports whether h still refers to a live entity: its slot's
// version matches and the slot is currently placed in an archetype.
func (w *World) IsLive(h Entity) bool {
	id := h.ID()
	if id == 0 || int(id) >= len(w.records) {
		return false
	}
	rec := &w.records[id]
	return rec.version == h.Version() && rec.live()
}

func (w *World) record(h Entity) (*entityRecord, bool) {
	id := h.ID()
	if id == 0 || int(id) >= len(w.records) {
		return nil, false
	}
	rec := &w.records[id]
	if rec.version != h.Version() || !rec.live() {
		return nil, false
	}
	return rec, true
}
