// Package interpolator provides a stateful scalar interpolator for
// animation timing in pure Go.
//
// It advances a normalized progress value over caller-supplied delta
// time and maps it through a logarithmic concave or power convex curve,
// producing output that eases in or eases out instead of moving
// linearly. The curve design follows the VertigoInterpolator Java class
// by sinu.
//
// # Features
//
//   - Concave (fast start, soft landing) and convex (slow start, sharp
//     finish) curves with a tunable strength parameter
//   - Incremental (0 to 1) and decremental (1 to 0) progress
//   - NoRepeat, Repeat, and PingPong boundary behavior, all preserving
//     sub-step overshoot for accurate timing under large deltas
//   - Convenience constructors for fades, pulses, and cycles
//   - Named presets loadable from YAML files
//   - Audio gain envelopes with optional SIMD-accelerated block scaling
//     via github.com/tphakala/simd
//
// # Quick Start
//
// Drive an interpolator once per frame with your own delta time:
//
//	ip, err := interpolator.NewFadeIn(0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for !ip.Done() {
//	    ip.Advance(interpolator.FrameDelta(interpolator.FPSGame))
//	    draw(ip.InterpolatedValue())
//	}
//
// Full control goes through [Config] and [New]:
//
//	ip, err := interpolator.New(&interpolator.Config{
//	    Direction:  interpolator.Incremental,
//	    Curvature:  interpolator.Concave,
//	    Interval:   2.0,
//	    Strength:   48,
//	    RepeatMode: interpolator.PingPong,
//	})
//
// # Curves
//
// With strength s > 1 and raw value x in [0, 1]:
//
//	concave: log2((s-1)x + 1) / log2(s)
//	convex:  (s^x - 1) / (s - 1)
//
// Both map 0 to 0 and 1 to 1 exactly. To preview them, plot
//
//	y=((log2((a-1)x + 1)) / (log2(a))) and y=((a^x - 1)/(a-1)) where a=24
//
// from x=0 to x=1; larger a sharpens both curves.
//
// # Repeat Modes
//
// When the raw value crosses a boundary, [NoRepeat] clamps there and
// stops, [Repeat] wraps around carrying the excess into the next cycle,
// and [PingPong] reflects the excess back and reverses direction. Both
// repeating modes use the exact overshoot amount, so a delta several
// times the interval lands the raw value where elapsed time says it
// should be.
//
// # Envelopes
//
// [Envelope] drives an interpolator at an audio sample rate to produce
// gain ramps, and applies them to sample buffers block-wise:
//
//	ip, _ := interpolator.NewFadeIn(0.25)
//	env, _ := interpolator.NewEnvelope(ip, 44100)
//	env.Apply(samples, 0)
//
// The cmd/fade-wav tool uses this to add fades to WAV files.
//
// # Thread Safety
//
// Interpolator instances are mutable and not safe for unsynchronized
// concurrent use. Use one instance per logical timeline, or guard a
// shared instance with a lock. Advance is a pure synchronous state
// transition; there is no internal clock, timer, or goroutine.
package interpolator
