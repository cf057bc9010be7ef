package interpolator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDelta(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, FrameDelta(FPSGame), 1e-12)
	assert.InDelta(t, 1.0/24.0, FrameDelta(FPSFilm), 1e-12)
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name       string
		build      func(float64) (*Interpolator, error)
		direction  Direction
		curvature  Curvature
		repeatMode RepeatMode
	}{
		{"fade_in", NewFadeIn, Incremental, Convex, NoRepeat},
		{"fade_out", NewFadeOut, Decremental, Convex, NoRepeat},
		{"pulse", NewPulse, Incremental, Concave, PingPong},
		{"cycle", NewCycle, Incremental, Concave, Repeat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, err := tt.build(0.5)
			require.NoError(t, err)

			assert.Equal(t, tt.direction, ip.Direction())
			assert.Equal(t, tt.curvature, ip.Curvature())
			assert.Equal(t, tt.repeatMode, ip.RepeatMode())
			assert.InDelta(t, 0.5, ip.Interval(), 1e-12)
			assert.InDelta(t, DefaultStrength, ip.Strength(), 1e-12)
		})
	}
}

func TestConvenienceConstructors_PropagateErrors(t *testing.T) {
	for _, build := range []func(float64) (*Interpolator, error){
		NewFadeIn, NewFadeOut, NewPulse, NewCycle,
	} {
		_, err := build(0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestNewSimple(t *testing.T) {
	ip, err := NewSimple(Decremental, Concave, 2)
	require.NoError(t, err)

	assert.Equal(t, Decremental, ip.Direction())
	assert.Equal(t, Concave, ip.Curvature())
	assert.Equal(t, NoRepeat, ip.RepeatMode())
	assert.InDelta(t, 1.0, ip.RawValue(), 1e-12, "decremental starts at 1")
}
