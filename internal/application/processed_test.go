package application

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessedSetMarksOnce(t *testing.T) {
	set := NewProcessedSet(3)

	fresh, err := set.Mark("jdoe")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = set.Mark("jdoe")
	require.NoError(t, err)
	assert.False(t, fresh)

	assert.Equal(t, 1, set.Len())
}

func TestProcessedSetEnforcesCapacity(t *testing.T) {
	set := NewProcessedSet(2)

	for _, login := range []string{"a", "b"} {
		fresh, err := set.Mark(login)
		require.NoError(t, err)
		require.True(t, fresh)
	}

	_, err := set.Mark("c")
	require.ErrorIs(t, err, ErrProcessedSetFull)

	fresh, err := set.Mark("a")
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, 2, set.Len())
}

func TestProcessedSetDefaultsCapacity(t *testing.T) {
	set := NewProcessedSet(0)
	assert.Equal(t, DefaultMaxUsers, set.capacity)
}

func TestProcessedSetConcurrentMarkReportsOnce(t *testing.T) {
	set := NewProcessedSet(10)

	var fresh atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := set.Mark("jdoe"); err == nil && ok {
				fresh.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fresh.Load())
	assert.Equal(t, 1, set.Len())
}
