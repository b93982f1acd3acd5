package archecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchetypeAppendAndColumnFor(t *testing.T) {
	sizes := [MaxTypes]uintptr{0: 8, 1: 4}
	a := newArchetype(1, Mask(0).set(0).set(1), []int{0, 1}, sizes)

	e := NewEntity(5, 1)
	row := a.append(e)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, a.count())
	assert.NotNil(t, a.columnFor(0))
	assert.NotNil(t, a.columnFor(1))
	assert.Nil(t, a.columnFor(2))
}

func TestArchetypeRemoveRowSwapsLastIn(t *testing.T) {
	sizes := [MaxTypes]uintptr{0: 8}
	a := newArchetype(1, Mask(0).set(0), []int{0}, sizes)

	e1 := NewEntity(1, 1)
	e2 := NewEntity(2, 1)
	e3 := NewEntity(3, 1)
	a.append(e1)
	a.append(e2)
	a.append(e3)

	moved, ok := a.removeRow(0)
	assert.True(t, ok)
	assert.Equal(t, e3, moved)
	assert.Equal(t, 2, a.count())
	assert.Equal(t, e3, a.entities[0])
	assert.Equal(t, e2, a.entities[1])
}

func TestArchetypeRemoveLastRowReportsNoMove(t *testing.T) {
	sizes := [MaxTypes]uintptr{0: 8}
	a := newArchetype(1, Mask(0).set(0), []int{0}, sizes)
	e1 := NewEntity(1, 1)
	a.append(e1)

	_, ok := a.removeRow(0)
	assert.False(t, ok)
	assert.Equal(t, 0, a.count())
}
