package fsm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/pkg/metrics"
)

func TestManager_Lifecycle(t *testing.T) {
	mgr := NewManager(nil, nil, &fakeChat{}, testConfig())

	assert.Nil(t, mgr.Get(1))
	assert.Equal(t, 0, mgr.Len())

	before := testutil.ToFloat64(metrics.ActiveGames)

	f := mgr.Set(1)
	require.NotNil(t, f)
	assert.Same(t, f, mgr.Get(1))
	assert.Equal(t, int64(1), f.ChatID())
	assert.Equal(t, 1, mgr.Len())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveGames))

	// Re-registering a chat replaces the machine without double counting.
	f2 := mgr.Set(1)
	require.NotNil(t, f2)
	assert.NotSame(t, f, f2)
	assert.Equal(t, 1, mgr.Len())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveGames))

	mgr.Set(2)
	assert.Equal(t, 2, mgr.Len())
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.ActiveGames))

	mgr.Remove(1)
	assert.Nil(t, mgr.Get(1))
	assert.Equal(t, 1, mgr.Len())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveGames))

	// Removing an absent chat is a no-op and must not skew the gauge.
	mgr.Remove(1)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveGames))

	mgr.Remove(2)
	assert.Equal(t, 0, mgr.Len())
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveGames))
}
