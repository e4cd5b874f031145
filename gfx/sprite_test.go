package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/cavern/units"
)

func TestAnimatedSpriteFrameStepping(t *testing.T) {
	// nil graphics keeps the test headless; frame math doesn't touch the sheet
	s, ok := NewAnimatedSprite(nil, "missing.png", 0, 0, 32, 32, 10, 3).(*animatedSprite)
	require.True(t, ok)
	require.EqualValues(t, 100, s.frameDuration)

	cases := []struct {
		name      string
		elapsed   int64
		wantFrame int
	}{
		{"under_one_frame", 50, 0},
		{"crosses_first_frame", 100, 1}, // 150ms accumulated, one advance
		{"wraps_around", 250, 0},        // two more advances, 3 % 3
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s.Update(units.MS(c.elapsed))
			assert.EqualValues(t, c.wantFrame, s.currentFrame)
		})
	}
}

func TestStaticSpriteIgnoresTime(t *testing.T) {
	s := NewSprite(nil, "missing.png", 0, 0, 32, 32)
	s.Update(10000)
	static, ok := s.(*staticSprite)
	require.True(t, ok)
	assert.Nil(t, static.sheet)
}
