// Profiling:
// go build ./cmd/profile-entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./profile-entities mem.pprof

package main

import (
	"github.com/pkg/profile"
	"github.com/tetragrid/archecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := archecs.NewWorld(archecs.Config{InitialCapacity: numEntities, GrowStep: numEntities})

		ids := make([]archecs.Entity, 0, numEntities)
		for range numEntities {
			e := w.AddEntity()
			archecs.AddComponentDefault[comp1](w, e)
			archecs.AddComponentDefault[comp2](w, e)
			ids = append(ids, e)
		}

		for range iters {
			q := archecs.WithComponents2[comp1, comp2](w)
			for q.Next() {
				c1, c2 := q.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}

		for _, e := range ids {
			w.FreeEntity(e)
		}
	}
}
