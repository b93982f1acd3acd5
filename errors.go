package archecs

import "fmt"

// CapacityExceededError is returned when a 65th component or tag type would
// need to be registered. It is fatal: the caller cannot recover within the
// same World, since the id space for that kind is exhausted for the
// World's lifetime.
type CapacityExceededError struct {
	Kind  string // "component" or "tag"
	Limit int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("archecs: %s type capacity exceeded (limit %d)", e.Kind, e.Limit)
}

// UnknownPrefabError is returned by Spawn when the requested prefab name was
// never registered. It is recoverable: it only fails the one Spawn call.
type UnknownPrefabError struct {
	Name string
}

func (e UnknownPrefabError) Error() string {
	return fmt.Sprintf("archecs: unknown prefab %q", e.Name)
}

// PostconditionViolatedError indicates an internal invariant failed, e.g. a
// component is absent immediately after AddComponent returned. It is also
// the panic value of AddComponent when it is handed a freed or unknown
// entity.
type PostconditionViolatedError struct {
	Detail string
}

func (e PostconditionViolatedError) Error() string {
	return fmt.Sprintf("archecs: postcondition violated: %s", e.Detail)
}
