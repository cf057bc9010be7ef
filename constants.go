package interpolator

// DefaultStrength is the curve steepness used when Config.Strength is
// left zero. Matches the upstream VertigoInterpolator default.
const DefaultStrength = 24.0

// Curve sampling constants
const (
	minTableSamples = 2 // a table needs both endpoints
)

// Envelope constants
const (
	// defaultEnvelopeBlock is the block size used by Envelope.Apply
	// when the caller passes a non-positive one. One gain per 64
	// samples is fine enough to avoid audible zipper noise at common
	// rates while keeping the scaling work in vectorizable runs.
	defaultEnvelopeBlock = 64

	stereoChannels = 2 // Stereo channel count (used by interleave functions)
)
