package archecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tetragrid/archecs"
)

type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }
type Health struct{ HP int }

func TestAddComponentThenGet(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	archecs.AddComponent(w, e, Position{X: 1, Y: 2})

	p := archecs.GetComponent[Position](w, e)
	assert.NotNil(t, p)
	assert.Equal(t, Position{X: 1, Y: 2}, *p)
}

func TestAddComponentAgainOverwritesInPlace(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	archecs.AddComponent(w, e, Position{X: 1, Y: 1})
	archecs.AddComponent(w, e, Velocity{DX: 5, DY: 5})
	archecs.AddComponent(w, e, Position{X: 9, Y: 9})

	p := archecs.GetComponent[Position](w, e)
	v := archecs.GetComponent[Velocity](w, e)
	assert.Equal(t, Position{X: 9, Y: 9}, *p)
	assert.Equal(t, Velocity{DX: 5, DY: 5}, *v)
}

func TestAddComponentMigratesAndPreservesExistingData(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	archecs.AddComponent(w, e, Position{X: 3, Y: 4})
	archecs.AddComponent(w, e, Velocity{DX: 1, DY: 1})

	p := archecs.GetComponent[Position](w, e)
	assert.Equal(t, Position{X: 3, Y: 4}, *p)
	assert.True(t, archecs.HasComponent[Velocity](w, e))
}

func TestRemoveComponentMigratesAndDropsIt(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	archecs.AddComponent(w, e, Position{X: 1, Y: 1})
	archecs.AddComponent(w, e, Velocity{DX: 2, DY: 2})

	archecs.RemoveComponent[Velocity](w, e)

	assert.False(t, archecs.HasComponent[Velocity](w, e))
	p := archecs.GetComponent[Position](w, e)
	assert.Equal(t, Position{X: 1, Y: 1}, *p)
}

func TestRemoveComponentAbsentIsNoop(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	assert.NotPanics(t, func() { archecs.RemoveComponent[Velocity](w, e) })
}

func TestGetComponentOnEntityWithoutItIsNil(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	assert.Nil(t, archecs.GetComponent[Position](w, e))
}

func TestAddComponentOnFreedEntityPanics(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	w.FreeEntity(e)
	assert.Panics(t, func() { archecs.AddComponent(w, e, Position{}) })
}

func TestMigrationDoesNotDisturbOtherEntityInOldArchetype(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e1 := w.AddEntity()
	e2 := w.AddEntity()
	archecs.AddComponent(w, e1, Position{X: 1, Y: 1})
	archecs.AddComponent(w, e2, Position{X: 2, Y: 2})

	archecs.AddComponent(w, e1, Velocity{DX: 9, DY: 9})

	p2 := archecs.GetComponent[Position](w, e2)
	assert.Equal(t, Position{X: 2, Y: 2}, *p2)
	assert.False(t, archecs.HasComponent[Velocity](w, e2))
}

func TestRoundTripAddRemoveAddRestoresSeparateArchetype(t *testing.T) {
	w := archecs.NewWorld(archecs.DefaultConfig())
	e := w.AddEntity()
	archecs.AddComponent(w, e, Position{X: 5, Y: 5})
	archecs.AddComponent(w, e, Health{HP: 10})
	archecs.RemoveComponent[Health](w, e)
	archecs.AddComponent(w, e, Health{HP: 20})

	h := archecs.GetComponent[Health](w, e)
	assert.Equal(t, 20, h.HP)
	p := archecs.GetComponent[Position](w, e)
	assert.Equal(t, Position{X: 5, Y: 5}, *p)
}
