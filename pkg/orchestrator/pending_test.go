package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingSet(t *testing.T) {
	t.Run("Acquire Is Exclusive Per Campaign", func(t *testing.T) {
		p := newPendingSet()

		release, ok := p.acquire(1)
		require.True(t, ok)

		_, ok = p.acquire(1)
		assert.False(t, ok)

		release()
		_, ok = p.acquire(1)
		assert.True(t, ok)
	})

	t.Run("Independent Campaigns Coexist", func(t *testing.T) {
		p := newPendingSet()

		_, ok := p.acquire(1)
		require.True(t, ok)
		_, ok = p.acquire(2)
		require.True(t, ok)

		assert.ElementsMatch(t, []uint64{1, 2}, p.snapshot())
	})

	t.Run("Release Is Idempotent", func(t *testing.T) {
		p := newPendingSet()

		releaseA, ok := p.acquire(1)
		require.True(t, ok)
		releaseA()

		releaseB, ok := p.acquire(1)
		require.True(t, ok)

		// A second release of the first acquisition must not free the slot
		// held by the second.
		releaseA()
		_, ok = p.acquire(1)
		assert.False(t, ok)

		releaseB()
	})
}
