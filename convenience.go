package interpolator

// Common frame rates for convenience functions.
const (
	// FPSFilm is the traditional cinema frame rate.
	FPSFilm = 24.0

	// FPSTV is the NTSC broadcast frame rate.
	FPSTV = 30.0

	// FPSGame is the common game and display refresh rate.
	FPSGame = 60.0

	// FPSHighRefresh is the 120 Hz high-refresh display rate.
	FPSHighRefresh = 120.0

	// FPSGaming144 is the 144 Hz gaming monitor refresh rate.
	FPSGaming144 = 144.0

	// FPSGaming240 is the 240 Hz competitive gaming refresh rate.
	FPSGaming240 = 240.0
)

// FrameDelta returns the per-frame delta time in seconds for a frame
// rate, suitable for passing to Advance once per frame.
func FrameDelta(fps float64) float64 {
	return 1 / fps
}

// NewSimple creates an interpolator with the default strength and no
// repetition. This covers the most common one-shot animation case.
func NewSimple(direction Direction, curvature Curvature, interval float64) (*Interpolator, error) {
	return New(&Config{
		Direction: direction,
		Curvature: curvature,
		Interval:  interval,
	})
}

// NewFadeIn creates a one-shot interpolator rising from 0 to 1 over the
// interval with a convex curve: the output stays low at first and
// accelerates toward the end, reading as a gentle fade-in.
func NewFadeIn(interval float64) (*Interpolator, error) {
	return New(&Config{
		Direction: Incremental,
		Curvature: Convex,
		Interval:  interval,
	})
}

// NewFadeOut creates a one-shot interpolator falling from 1 to 0 over
// the interval with a convex curve.
func NewFadeOut(interval float64) (*Interpolator, error) {
	return New(&Config{
		Direction: Decremental,
		Curvature: Convex,
		Interval:  interval,
	})
}

// NewPulse creates an interpolator that bounces between 0 and 1 forever,
// spending one interval per leg. The concave curve makes each leg start
// fast and settle softly, a natural pulsing highlight.
func NewPulse(interval float64) (*Interpolator, error) {
	return New(&Config{
		Direction:  Incremental,
		Curvature:  Concave,
		Interval:   interval,
		RepeatMode: PingPong,
	})
}

// NewCycle creates an interpolator that wraps from 1 back to 0 every
// interval, preserving the overshoot so cycle timing stays exact.
func NewCycle(interval float64) (*Interpolator, error) {
	return New(&Config{
		Direction:  Incremental,
		Curvature:  Concave,
		Interval:   interval,
		RepeatMode: Repeat,
	})
}
