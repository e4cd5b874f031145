package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerLifecycle(t *testing.T) {
	reg := NewRegistry()
	timer := reg.NewTimer(100)

	t.Run("starts_expired", func(t *testing.T) {
		assert.False(t, timer.Active())
		assert.True(t, timer.Expired())
	})

	t.Run("reset_activates", func(t *testing.T) {
		timer.Reset()
		assert.True(t, timer.Active())
		assert.EqualValues(t, 0, timer.CurrentTime())
	})

	t.Run("tick_advances", func(t *testing.T) {
		reg.Tick(40)
		assert.True(t, timer.Active())
		assert.EqualValues(t, 40, timer.CurrentTime())
	})

	t.Run("expires_at_duration", func(t *testing.T) {
		reg.Tick(60)
		assert.False(t, timer.Active())
	})

	t.Run("reset_reactivates", func(t *testing.T) {
		timer.Reset()
		assert.True(t, timer.Active())
	})
}

func TestRegistryTicksEveryTimerOnce(t *testing.T) {
	reg := NewRegistry()
	a := reg.NewTimer(1000)
	b := reg.NewTimer(500)
	a.Reset()
	b.Reset()

	reg.Tick(200)

	require.EqualValues(t, 200, a.CurrentTime())
	require.EqualValues(t, 200, b.CurrentTime())

	// an expired timer stops accumulating
	reg.Tick(400)
	assert.False(t, b.Active())
	assert.EqualValues(t, 600, b.CurrentTime())
	reg.Tick(100)
	assert.EqualValues(t, 600, b.CurrentTime())
	assert.EqualValues(t, 700, a.CurrentTime())
}
