package providers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-ort/engine"
)

func TestSessionOptionsLifecycle(t *testing.T) {
	eng := newFakeEngine()

	o, err := NewSessionOptions(eng)
	require.NoError(t, err)
	assert.Equal(t, 1, eng.created)
	assert.NotEqual(t, engine.SessionHandle(0), o.Handle())

	require.NoError(t, o.Close())
	assert.Equal(t, engine.SessionHandle(0), o.Handle())
	assert.Equal(t, 1, eng.released)
}

func TestSessionOptionsCloseIdempotent(t *testing.T) {
	eng := newFakeEngine()

	o, err := NewSessionOptions(eng)
	require.NoError(t, err)

	require.NoError(t, o.Close())
	require.NoError(t, o.Close())
	assert.Equal(t, 1, eng.released, "a second Close must not release the handle again")
}

func TestNewSessionOptionsUsesInstalledEngine(t *testing.T) {
	eng := newFakeEngine()
	previous, _ := activeEngineForTest()
	SetEngine(eng)
	t.Cleanup(func() { SetEngine(previous) })

	o, err := NewSessionOptions(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	assert.Equal(t, 1, eng.created)
}

func TestActiveEngineConcurrentAccess(t *testing.T) {
	eng := newFakeEngine()
	previous, _ := activeEngineForTest()
	SetEngine(eng)
	t.Cleanup(func() { SetEngine(previous) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := activeEngine()
			assert.NoError(t, err)
			assert.Same(t, eng, got)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetEngine(eng)
		}()
	}
	wg.Wait()
}

// activeEngineForTest snapshots the installed engine without loading the
// runtime library when none is set.
func activeEngineForTest() (Engine, bool) {
	engineMu.Lock()
	defer engineMu.Unlock()
	return defaultEngine, defaultEngine != nil
}
