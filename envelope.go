package interpolator

import (
	"fmt"

	"github.com/soramane/go-interpolator/internal/simdops"
)

// Envelope drives an interpolator at a fixed sample rate, turning it
// into a gain ramp for audio buffers. Each rendered gain advances the
// interpolator by one sample period; Apply advances it block-wise.
//
// Like the interpolator it wraps, an Envelope is not safe for
// unsynchronized concurrent use.
type Envelope struct {
	ip   *Interpolator
	rate float64
}

// NewEnvelope wraps an interpolator for rendering at the given sample
// rate in Hz.
func NewEnvelope(ip *Interpolator, sampleRate float64) (*Envelope, error) {
	if ip == nil {
		return nil, fmt.Errorf("%w: interpolator is nil", ErrInvalidArgument)
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive", ErrInvalidArgument)
	}

	return &Envelope{ip: ip, rate: sampleRate}, nil
}

// Interpolator returns the wrapped interpolator.
func (e *Envelope) Interpolator() *Interpolator { return e.ip }

// SampleRate returns the envelope's sample rate in Hz.
func (e *Envelope) SampleRate() float64 { return e.rate }

// Reset rewinds the wrapped interpolator to its initial state.
func (e *Envelope) Reset() { e.ip.Reset() }

// Render produces n gain values. The first gain is the interpolator's
// current output; each subsequent gain follows one sample period later.
func (e *Envelope) Render(n int) []float64 {
	return render[float64](e, n)
}

// RenderFloat32 is like Render but for float32 gains.
func (e *Envelope) RenderFloat32(n int) []float32 {
	return render[float32](e, n)
}

// Apply scales samples in place by the envelope, one gain per block of
// blockSize samples. A non-positive blockSize selects a sensible
// default. The interpolator advances by the audio time the samples
// span, so successive Apply calls continue the ramp seamlessly.
func (e *Envelope) Apply(samples []float64, blockSize int) {
	apply(e, samples, blockSize)
}

// ApplyFloat32 is like Apply but for float32 samples.
func (e *Envelope) ApplyFloat32(samples []float32, blockSize int) {
	apply(e, samples, blockSize)
}

func render[F simdops.Float](e *Envelope, n int) []F {
	if n <= 0 {
		return []F{}
	}

	dt := 1 / e.rate
	out := make([]F, n)
	for i := range out {
		out[i] = F(e.ip.InterpolatedValue())
		e.ip.Advance(dt)
	}

	return out
}

func apply[F simdops.Float](e *Envelope, samples []F, blockSize int) {
	if blockSize <= 0 {
		blockSize = defaultEnvelopeBlock
	}

	ops := simdops.For[F]()

	for start := 0; start < len(samples); start += blockSize {
		end := min(start+blockSize, len(samples))
		block := samples[start:end]

		gain := F(e.ip.InterpolatedValue())
		ops.Scale(block, block, gain)

		e.ip.Advance(float64(len(block)) / e.rate)
	}
}

// InterleaveStereo converts planar stereo buffers to interleaved form
// [L0, R0, L1, R1, ...], truncating to the shorter channel.
func InterleaveStereo(left, right []float64) []float64 {
	n := min(len(left), len(right))
	out := make([]float64, n*stereoChannels)
	simdops.For[float64]().Interleave2(out, left[:n], right[:n])
	return out
}

// MeanGain returns the arithmetic mean of a rendered gain ramp, a cheap
// summary of how much an envelope attenuates overall.
func MeanGain(gains []float64) float64 {
	if len(gains) == 0 {
		return 0
	}
	return simdops.For[float64]().Sum(gains) / float64(len(gains))
}
