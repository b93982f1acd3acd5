// Profiling:
// go build ./cmd/profile-query
// go tool pprof -http=":8000" cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := archecs.NewWorld(archecs.Config{InitialCapacity: numEntities, GrowStep: numEntities})
		for range numEntities {
			e := w.AddEntity()
			archecs.AddComponentDefault[comp1](w, e)
			archecs.AddComponentDefault[comp2](w, e)
			archecs.AddComponentDefault[comp3](w, e)
			archecs.AddComponentDefault[comp4](w, e)
		}

		for range iters {
			q := archecs.WithComponents4[comp1, comp2, comp3, comp4](w)
			for q.Next() {
				c1, c2, _, _ := q.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
