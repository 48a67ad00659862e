package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	// S8: from an unregistered thread, Register returns Ok; a second call
	// on the same thread id returns Ok without creating a second node.
	r := New(nil)

	require.Nil(t, r.Register(1))
	require.Nil(t, r.Register(1))

	stats := r.Stats()
	assert.Equal(t, int64(1), stats.ActiveThreads)
	assert.Equal(t, int64(1), stats.TotalRegisteredEver)
}

func TestUnregisterRemovesNode(t *testing.T) {
	r := New(nil)
	require.Nil(t, r.Register(1))
	r.Unregister(1)

	stats := r.Stats()
	assert.Equal(t, int64(0), stats.ActiveThreads)
	assert.Equal(t, int64(1), stats.TotalRegisteredEver, "lifetime count is never decremented")
}

func TestUnregisterUnknownThreadIsNoOp(t *testing.T) {
	r := New(nil)
	assert.NotPanics(t, func() { r.Unregister(999) })
}

func TestRegisterRootRequiresRegisteredThread(t *testing.T) {
	r := New(nil)
	require.NotNil(t, r.RegisterRoot(1, 0xdead))

	require.Nil(t, r.Register(1))
	require.Nil(t, r.RegisterRoot(1, 0xdead))

	assert.Equal(t, int64(1), r.Stats().TotalGCRoots)
}

func TestUnregisterRootRemovesRoot(t *testing.T) {
	r := New(nil)
	require.Nil(t, r.Register(1))
	require.Nil(t, r.RegisterRoot(1, 0xdead))
	r.UnregisterRoot(1, 0xdead)
	assert.Equal(t, int64(0), r.Stats().TotalGCRoots)
}

func TestShutdownRejectsNewRegistrations(t *testing.T) {
	r := New(nil)
	r.Shutdown()
	assert.NotNil(t, r.Register(1))
	assert.True(t, r.Stats().IsShutdown)
}

func TestShutdownDoesNotEvictExistingThreads(t *testing.T) {
	r := New(nil)
	require.Nil(t, r.Register(1))
	r.Shutdown()
	assert.Equal(t, int64(1), r.Stats().ActiveThreads)
}

func TestScavengePrunesDeadThreads(t *testing.T) {
	r := New(nil)
	require.Nil(t, r.Register(1))
	require.Nil(t, r.Register(2))

	r.Scavenge(func(threadID uint64) bool { return threadID != 1 }, 10)

	assert.Equal(t, int64(1), r.Stats().ActiveThreads)
}

func TestScavengeRespectsBatchSize(t *testing.T) {
	r := New(nil)
	for i := uint64(1); i <= 5; i++ {
		require.Nil(t, r.Register(i))
	}

	r.Scavenge(func(uint64) bool { return false }, 2)

	// only the first 2 (in list-head order, i.e. most-recently-registered)
	// should have been visited and pruned.
	assert.Equal(t, int64(3), r.Stats().ActiveThreads)
}

func TestGlobalReturnsSingleton(t *testing.T) {
	assert.Same(t, Global(), Global())
}
