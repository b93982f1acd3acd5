package archecs

import "unsafe"

// AddComponent attaches value as entity e's component of type T, migrating
// e into the archetype for its new mask if e does not already carry T, or
// overwriting the existing value in place if it does (per spec: "add a
// component the entity already has" is assignment, not a migration into the
// same-mask archetype the way the teacher's SetComponent does it).
//
// It panics with PostconditionViolatedError if e has already been freed.
// The spec defines that case as caller error, not something to silently
// reattach.
//
// The returned pointer is a lend, not an owned value: it stays valid only
// until the next operation that may migrate e or grow the column it points
// into (another AddComponent/RemoveComponent on e, or a FreeEntity that
// swap-removes a neighbouring row out from under this archetype). Callers
// that hold a pointer across such a call must re-fetch it.
func AddComponent[T any](w *World, e Entity, value T) *T {
	rec, ok := w.record(e)
	if !ok {
		panic(PostconditionViolatedError{Detail: "AddComponent on a freed or unknown entity"})
	}
	id := mustComponentID[T](w.registry)
	old := w.archs.list[rec.archetype]

	if old.mask.has(id) {
		ptr := (*T)(unsafe.Pointer(&old.columnFor(id).pointerTo(int(rec.row))[0]))
		*ptr = value
		return ptr
	}

	newArch := w.addTransition(old, id)
	newRow := migrate(w, rec, old, newArch)

	ptr := (*T)(unsafe.Pointer(&newArch.columnFor(id).pointerTo(newRow)[0]))
	*ptr = value
	return ptr
}

// AddComponentDefault attaches the zero value of T to e, per the same rules
// as AddComponent.
func AddComponentDefault[T any](w *World, e Entity) *T {
	var zero T
	return AddComponent(w, e, zero)
}

// GetComponent returns a pointer to e's component of type T, or nil if e is
// not live or does not carry T.
//
// Like AddComponent's, the returned pointer is a lend into the owning
// archetype's column: it is only valid until the next operation that may
// migrate e or grow that column (AddComponent, RemoveComponent, or
// FreeEntity on e or on another entity sharing the archetype). Re-fetch
// after any such call instead of holding the pointer across it.
func GetComponent[T any](w *World, e Entity) *T {
	rec, ok := w.record(e)
	if !ok {
		return nil
	}
	id, ok := tryComponentID[T](w.registry)
	if !ok {
		return nil
	}
	arch := w.archs.list[rec.archetype]
	col := arch.columnFor(id)
	if col == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&col.pointerTo(int(rec.row))[0]))
}

// HasComponent reports whether e is live and carries a component of type T.
func HasComponent[T any](w *World, e Entity) bool {
	rec, ok := w.record(e)
	if !ok {
		return false
	}
	id, ok := tryComponentID[T](w.registry)
	if !ok {
		return false
	}
	return w.archs.list[rec.archetype].mask.has(id)
}

// RemoveComponent removes e's component of type T, migrating e into the
// archetype for the reduced mask. It is a silent no-op if e does not carry
// T, or if e is not live.
func RemoveComponent[T any](w *World, e Entity) {
	rec, ok := w.record(e)
	if !ok {
		return
	}
	id, ok := tryComponentID[T](w.registry)
	if !ok {
		return
	}
	old := w.archs.list[rec.archetype]
	if !old.mask.has(id) {
		return
	}
	newArch := w.removeTransition(old, id)
	migrate(w, rec, old, newArch)
}

// addTransition returns the archetype reached by adding componentID to
// from's mask, consulting (and populating) the per-World cache of
// precomputed transitions the way the teacher's Transition/CopyOp cache
// does for its add/remove paths.
func (w *World) addTransition(from *archetype, componentID int) *archetype {
	key := transitionKey{from: from, id: componentID}
	if a, ok := w.addCache[key]; ok {
		return a
	}
	newMask := from.mask.set(componentID)
	a := w.archs.getOrCreate(newMask, w.registry.compSizes)
	w.addCache[key] = a
	return a
}

// removeTransition mirrors addTransition for component removal.
func (w *World) removeTransition(from *archetype, componentID int) *archetype {
	key := transitionKey{from: from, id: componentID}
	if a, ok := w.removeCache[key]; ok {
		return a
	}
	newMask := from.mask.clear(componentID)
	a := w.archs.getOrCreate(newMask, w.registry.compSizes)
	w.removeCache[key] = a
	return a
}

// migrate moves the entity described by rec from old into newArch: it
// appends a fresh row, copies every overlapping component column, then
// swap-removes the old row and fixes up whichever entity was displaced by
// that swap-remove. It updates rec in place and returns the new row index.
func migrate(w *World, rec *entityRecord, old, newArch *archetype) int {
	oldRow := int(rec.row)
	handle := old.entities[oldRow]

	newRow := newArch.append(handle)
	for _, id := range old.componentIDs {
		dst := newArch.columnFor(id)
		if dst == nil {
			continue
		}
		src := old.columnFor(id)
		dst.copyFrom(src, oldRow, newRow)
	}

	moved, ok := old.removeRow(oldRow)
	if ok {
		w.records[moved.ID()].row = int32(oldRow)
	}

	rec.archetype = int32(newArch.index)
	rec.row = int32(newRow)
	return newRow
}
