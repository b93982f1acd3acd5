// Package archecs implements a single-threaded, archetype-based
// Entity-Component-System storage engine.
//
// Entities sharing the exact same set of component types are grouped into
// an archetype; each archetype owns one densely packed column per
// component, so a query over N entities touching the same components walks
// N contiguous values per column instead of chasing pointers. Adding or
// removing a component moves the owning row into a different archetype,
// copying the overlapping component columns and swap-removing the old row.
//
// The engine is not safe for concurrent mutation from multiple goroutines;
// a caller that wants parallelism should shard worlds.
//
// Pointers returned by AddComponent, GetComponent, and the query Get
// methods are lends into a column's backing array, not owned values: they
// stay valid only until the next operation that may migrate the entity or
// grow that column (AddComponent, RemoveComponent, or FreeEntity, on that
// entity or on another one sharing the archetype). Re-fetch the pointer
// after any such call instead of holding it across one.
package archecs
