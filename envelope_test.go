package interpolator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soramane/go-interpolator/internal/testutil"
)

const (
	// Envelope test parameters
	testEnvelopeRate       = 1000.0 // 1kHz keeps sample counts small
	testFadeInterval       = 0.1    // seconds
	testFadeSamples        = 100    // testFadeInterval * testEnvelopeRate
	testApplyBlock         = 50
	envelopeExactTolerance = 1e-12
	envelopeRampSettle     = 1e-9
	float32GainTolerance   = 1e-6
)

func newTestFadeIn(t *testing.T) *Envelope {
	t.Helper()
	ip, err := NewFadeIn(testFadeInterval)
	require.NoError(t, err)
	env, err := NewEnvelope(ip, testEnvelopeRate)
	require.NoError(t, err)
	return env
}

func TestNewEnvelope_Validation(t *testing.T) {
	ip, err := NewFadeIn(1)
	require.NoError(t, err)

	tests := []struct {
		name string
		ip   *Interpolator
		rate float64
	}{
		{"nil_interpolator", nil, 44100},
		{"zero_rate", ip, 0},
		{"negative_rate", ip, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := NewEnvelope(tt.ip, tt.rate)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, env)
		})
	}
}

func TestEnvelope_RenderFadeIn(t *testing.T) {
	env := newTestFadeIn(t)

	gains := env.Render(testFadeSamples)
	require.Len(t, gains, testFadeSamples)

	assert.Zero(t, gains[0], "fade-in starts silent")
	testutil.AssertStrictlyIncreasing(t, gains)
	testutil.AssertAllInRange(t, gains, 0, 1)
	testutil.AssertNoNaNOrInf(t, gains)

	// Past the interval the gain parks at unity.
	tail := env.Render(10)
	for _, g := range tail {
		assert.InDelta(t, 1.0, g, envelopeRampSettle)
	}
}

func TestEnvelope_RenderEmpty(t *testing.T) {
	env := newTestFadeIn(t)

	assert.Empty(t, env.Render(0))
	assert.Empty(t, env.Render(-3))
	assert.Zero(t, env.Interpolator().RawValue(), "empty render does not advance")
}

func TestEnvelope_RenderFloat32(t *testing.T) {
	env32 := newTestFadeIn(t)
	env64 := newTestFadeIn(t)

	g32 := env32.RenderFloat32(testFadeSamples)
	g64 := env64.Render(testFadeSamples)
	require.Len(t, g32, testFadeSamples)

	for i := range g32 {
		assert.InDelta(t, g64[i], float64(g32[i]), float32GainTolerance)
	}
}

func TestEnvelope_ApplyFadeIn(t *testing.T) {
	env := newTestFadeIn(t)

	samples := make([]float64, 2*testFadeSamples)
	for i := range samples {
		samples[i] = 1
	}

	env.Apply(samples, testApplyBlock)

	// First block keeps the initial zero gain.
	for i := range testApplyBlock {
		assert.InDelta(t, 0.0, samples[i], envelopeExactTolerance)
	}

	// Blocks past the fade interval pass through at unity gain.
	for i := testFadeSamples + testApplyBlock; i < len(samples); i++ {
		assert.InDelta(t, 1.0, samples[i], envelopeRampSettle)
	}

	testutil.AssertAllInRange(t, samples, 0, 1)
}

func TestEnvelope_ApplyContinuesAcrossCalls(t *testing.T) {
	chunked := newTestFadeIn(t)
	whole := newTestFadeIn(t)

	a := make([]float64, testFadeSamples)
	b := make([]float64, testFadeSamples)
	for i := range a {
		a[i] = 1
		b[i] = 1
	}

	whole.Apply(b, testApplyBlock)
	chunked.Apply(a[:testFadeSamples/2], testApplyBlock)
	chunked.Apply(a[testFadeSamples/2:], testApplyBlock)

	assert.InDeltaSlice(t, b, a, envelopeExactTolerance, "chunked apply matches one-shot apply")
}

func TestEnvelope_ApplyFloat32(t *testing.T) {
	env := newTestFadeIn(t)

	samples := make([]float32, 2*testFadeSamples)
	for i := range samples {
		samples[i] = 1
	}

	env.ApplyFloat32(samples, testApplyBlock)

	for i := range testApplyBlock {
		assert.InDelta(t, 0.0, float64(samples[i]), float32GainTolerance)
	}
	for i := testFadeSamples + testApplyBlock; i < len(samples); i++ {
		assert.InDelta(t, 1.0, float64(samples[i]), float32GainTolerance)
	}
}

func TestEnvelope_ApplyDefaultBlockSize(t *testing.T) {
	env := newTestFadeIn(t)

	samples := make([]float64, 3*defaultEnvelopeBlock/2)
	for i := range samples {
		samples[i] = 0.5
	}

	env.Apply(samples, 0)

	// One gain per default block: the first block shares a single gain.
	for i := 1; i < defaultEnvelopeBlock; i++ {
		assert.InDelta(t, samples[0], samples[i], envelopeExactTolerance)
	}
	assert.NotEqual(t, samples[0], samples[defaultEnvelopeBlock], "second block uses a later gain")
}

func TestEnvelope_Reset(t *testing.T) {
	env := newTestFadeIn(t)

	env.Render(testFadeSamples)
	require.InDelta(t, 1.0, env.Interpolator().RawValue(), envelopeRampSettle)

	env.Reset()
	assert.Zero(t, env.Interpolator().RawValue())
}

func TestMeanGain_CurveOrdering(t *testing.T) {
	concave, err := New(&Config{Direction: Incremental, Curvature: Concave, Interval: testFadeInterval})
	require.NoError(t, err)
	convex, err := New(&Config{Direction: Incremental, Curvature: Convex, Interval: testFadeInterval})
	require.NoError(t, err)

	envConcave, err := NewEnvelope(concave, testEnvelopeRate)
	require.NoError(t, err)
	envConvex, err := NewEnvelope(convex, testEnvelopeRate)
	require.NoError(t, err)

	meanConcave := MeanGain(envConcave.Render(testFadeSamples))
	meanConvex := MeanGain(envConvex.Render(testFadeSamples))

	// Concave rides above the diagonal, convex below it.
	testutil.AssertInRange(t, meanConcave, 0, 1)
	testutil.AssertInRange(t, meanConvex, 0, 1)
	assert.Greater(t, meanConcave, 0.5)
	assert.Less(t, meanConvex, 0.5)
}

func TestMeanGain_Empty(t *testing.T) {
	assert.Zero(t, MeanGain(nil))
}

func TestInterleaveStereo(t *testing.T) {
	left := []float64{1, 2, 3}
	right := []float64{4, 5, 6, 7}

	out := InterleaveStereo(left, right)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out, "truncates to the shorter channel")
}
