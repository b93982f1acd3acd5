package archecs

import "github.com/kamstrup/intmap"

// archetypeIndex maps a component mask to the archetype that owns it and
// keeps the canonical, insertion-ordered list of every archetype a World
// has ever created. Archetypes are created lazily on first mask
// observation and live for the World's lifetime.
//
// The mask-to-index lookup uses intmap.Map instead of a built-in Go map:
// masks are plain uint64s, which is exactly the integer-keyed workload
// intmap is built for (the same way plus3-ooftn keys its entity-ref cache
// by an integer EntityId).
type archetypeIndex struct {
	byMask *intmap.Map[uint64, int]
	list   []*archetype
}

func newArchetypeIndex() *archetypeIndex {
	idx := &archetypeIndex{
		byMask: intmap.New[uint64, int](64),
	}
	// The empty archetype (mask 0) always exists at index 0.
	idx.list = append(idx.list, newArchetype(0, 0, nil, [MaxTypes]uintptr{}))
	idx.byMask.Put(0, 0)
	return idx
}

// getOrCreate returns the archetype for mask, creating it (with columns in
// ascending component-id order, using sizes from the registry) if this is
// the first observation of that mask.
func (idx *archetypeIndex) getOrCreate(mask Mask, sizes [MaxTypes]uintptr) *archetype {
	if i, ok := idx.byMask.Get(uint64(mask)); ok {
		return idx.list[i]
	}
	i := len(idx.list)
	a := newArchetype(i, mask, mask.ids(), sizes)
	idx.list = append(idx.list, a)
	idx.byMask.Put(uint64(mask), i)
	return a
}

// empty returns the always-present mask-0 archetype.
func (idx *archetypeIndex) empty() *archetype {
	return idx.list[0]
}
