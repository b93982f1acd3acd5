package archecs

// archetype owns the entities sharing one exact component mask, plus one
// column per component in that mask. All columns of an archetype share the
// same count; the entity id list's length equals that count.
type archetype struct {
	index        int
	mask         Mask
	componentIDs []int // strictly ascending
	columns      []column
	slots        [MaxTypes]int8 // componentIDs index for id, -1 if absent
	entities     []Entity       // insertion order
}

const noSlot = -1

func newArchetype(index int, mask Mask, componentIDs []int, sizes [MaxTypes]uintptr) *archetype {
	a := &archetype{
		index:        index,
		mask:         mask,
		componentIDs: componentIDs,
		columns:      make([]column, len(componentIDs)),
	}
	for i := range a.slots {
		a.slots[i] = noSlot
	}
	for i, id := range componentIDs {
		a.columns[i] = newColumn(int(sizes[id]))
		a.slots[id] = int8(i)
	}
	return a
}

// count returns the number of live rows in the archetype.
func (a *archetype) count() int {
	return len(a.entities)
}

// columnFor returns the column storing componentID, or nil if the
// archetype's mask does not include it.
func (a *archetype) columnFor(componentID int) *column {
	slot := a.slots[componentID]
	if slot == noSlot {
		return nil
	}
	return &a.columns[slot]
}

// append pushes entity onto the archetype and a default row onto every
// column, returning the new row index.
func (a *archetype) append(e Entity) int {
	row := len(a.entities)
	a.entities = append(a.entities, e)
	for i := range a.columns {
		r := a.columns[i].pushDefault()
		if r != row {
			panic(PostconditionViolatedError{Detail: "column row drifted from entity row"})
		}
	}
	return row
}

// removeRow swap-removes row from every column and from the entity list.
// It reports the entity that was moved from the last row into row so the
// caller can fix up that entity's record; ok is false (and moved is the zero
// Entity) when row was already the last row, so nothing moved into it.
func (a *archetype) removeRow(row int) (moved Entity, ok bool) {
	last := len(a.entities) - 1
	movedIn := row != last
	if movedIn {
		moved = a.entities[last]
	}
	for i := range a.columns {
		a.columns[i].swapRemove(row)
	}
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	return moved, movedIn
}
