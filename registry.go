package archecs

import (
	"reflect"
)

// registry assigns dense ids in [0, MaxTypes) to component types and,
// independently, to tag types, the first time each is observed. It is owned
// by a single World: unlike the teacher's package-level registry, two
// worlds in the same process never contend over the same 64 ids.
type registry struct {
	compTypeToID map[reflect.Type]int
	compSizes    [MaxTypes]uintptr
	nextCompID   int

	tagTypeToID map[reflect.Type]int
	nextTagID   int
}

func newRegistry() *registry {
	return &registry{
		compTypeToID: make(map[reflect.Type]int, MaxTypes),
		tagTypeToID:  make(map[reflect.Type]int, MaxTypes),
	}
}

// componentID returns T's id, assigning the next free id on first
// observation. It returns CapacityExceededError once 64 component ids are
// already in use.
func componentID[T any](r *registry) (int, error) {
	return r.idForType(reflect.TypeFor[T]())
}

// idForType is componentID's reflect.Type-driven counterpart, used where a
// concrete generic type parameter is not available (e.g. prefab overrides
// supplied as []any).
func (r *registry) idForType(t reflect.Type) (int, error) {
	if id, ok := r.compTypeToID[t]; ok {
		return id, nil
	}
	if r.nextCompID >= MaxTypes {
		return 0, CapacityExceededError{Kind: "component", Limit: MaxTypes}
	}
	id := r.nextCompID
	r.nextCompID++
	r.compTypeToID[t] = id
	r.compSizes[id] = t.Size()
	return id, nil
}

// mustComponentID is componentID's panicking form. The public entry points
// that may register a type on first use (AddComponent, the With* query
// constructors, prefab initializers) go through it, so a 65th component
// type panics with CapacityExceededError there.
func mustComponentID[T any](r *registry) int {
	id, err := componentID[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

// tryComponentID returns T's id without registering it, reporting false if
// T has never been observed by this registry.
func tryComponentID[T any](r *registry) (int, bool) {
	t := reflect.TypeFor[T]()
	id, ok := r.compTypeToID[t]
	return id, ok
}

// componentSize returns the byte size recorded for a component id.
func (r *registry) componentSize(id int) uintptr {
	return r.compSizes[id]
}

// tagID returns T's id in the independent tag id space, assigning the next
// free id on first observation.
func tagID[T any](r *registry) (int, error) {
	t := reflect.TypeFor[T]()
	if id, ok := r.tagTypeToID[t]; ok {
		return id, nil
	}
	if r.nextTagID >= MaxTypes {
		return 0, CapacityExceededError{Kind: "tag", Limit: MaxTypes}
	}
	id := r.nextTagID
	r.nextTagID++
	r.tagTypeToID[t] = id
	return id, nil
}

func mustTagID[T any](r *registry) int {
	id, err := tagID[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

func tryTagID[T any](r *registry) (int, bool) {
	t := reflect.TypeFor[T]()
	id, ok := r.tagTypeToID[t]
	return id, ok
}
