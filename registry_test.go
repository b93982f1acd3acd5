package archecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type regTestA struct{ V int64 }
type regTestB struct{ V int32 }

func TestComponentIDStableAndDistinct(t *testing.T) {
	r := newRegistry()
	id1, err := componentID[regTestA](r)
	assert.NoError(t, err)
	id2, err := componentID[regTestB](r)
	assert.NoError(t, err)
	id3, err := componentID[regTestA](r)
	assert.NoError(t, err)

	assert.Equal(t, id1, id3)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, uintptr(8), r.componentSize(id1))
}

func TestComponentIDCapacityExceeded(t *testing.T) {
	r := newRegistry()
	r.nextCompID = MaxTypes
	_, err := componentID[regTestA](r)
	assert.Error(t, err)
	var capErr CapacityExceededError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, "component", capErr.Kind)
}

func TestTagIDIndependentFromComponentID(t *testing.T) {
	r := newRegistry()
	cid, err := componentID[regTestA](r)
	assert.NoError(t, err)
	tid, err := tagID[regTestA](r)
	assert.NoError(t, err)
	assert.Equal(t, 0, cid)
	assert.Equal(t, 0, tid)
}

func TestTryComponentIDReportsAbsence(t *testing.T) {
	r := newRegistry()
	_, ok := tryComponentID[regTestA](r)
	assert.False(t, ok)
	_, err := componentID[regTestA](r)
	assert.NoError(t, err)
	_, ok = tryComponentID[regTestA](r)
	assert.True(t, ok)
}
