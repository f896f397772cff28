package ulid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID_Unique(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestNewULIDAt_EncodesTime(t *testing.T) {
	at := time.Date(2024, 2, 14, 10, 15, 32, 123_000_000, time.UTC)

	id := NewULIDAt(at)
	got, err := Time(id)
	require.NoError(t, err)
	assert.Equal(t, at, got)
}

func TestNewULIDAt_SortsByTime(t *testing.T) {
	earlier := NewULIDAt(time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC))
	later := NewULIDAt(time.Date(2024, 2, 14, 10, 0, 1, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestTime_InvalidID(t *testing.T) {
	_, err := Time("not-a-ulid")
	assert.Error(t, err)
}
