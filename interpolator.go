package interpolator

import (
	"errors"
	"fmt"
)

// Direction selects which way the raw value travels on each Advance call.
type Direction int

const (
	// Incremental moves the raw value from 0 toward 1.
	Incremental Direction = iota

	// Decremental moves the raw value from 1 toward 0.
	Decremental
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Incremental:
		return "incremental"
	case Decremental:
		return "decremental"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Curvature selects the curve formula that maps the raw value to the
// interpolated output.
type Curvature int

const (
	// Concave uses a logarithmic curve: fast initial change that
	// flattens out as the raw value approaches 1.
	Concave Curvature = iota

	// Convex uses a power curve: slow initial change that accelerates
	// as the raw value approaches 1.
	Convex
)

// String returns the lower-case name of the curvature.
func (c Curvature) String() string {
	switch c {
	case Concave:
		return "concave"
	case Convex:
		return "convex"
	default:
		return fmt.Sprintf("Curvature(%d)", int(c))
	}
}

// RepeatMode determines what happens when the raw value crosses the
// boundary of the [0, 1] range.
type RepeatMode int

const (
	// NoRepeat pins the raw value at the boundary. Further Advance
	// calls are no-ops until Reset or SetRawValue.
	NoRepeat RepeatMode = iota

	// Repeat wraps the raw value around, carrying the overshoot past
	// the boundary into the next cycle so cumulative timing stays
	// accurate across cycles.
	Repeat

	// PingPong reflects the overshoot back across the boundary and
	// flips the direction, bouncing between 0 and 1.
	PingPong
)

// String returns the lower-case name of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case NoRepeat:
		return "no-repeat"
	case Repeat:
		return "repeat"
	case PingPong:
		return "pingpong"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

// ErrInvalidArgument indicates an argument outside the interpolator's
// contract. All validation failures wrap this error.
var ErrInvalidArgument = errors.New("invalid interpolator argument")

// Config holds interpolator configuration.
type Config struct {
	// Direction sets which way the raw value travels.
	Direction Direction `yaml:"direction"`

	// Curvature selects the concave or convex curve formula.
	Curvature Curvature `yaml:"curvature"`

	// Interval is the time in seconds for the raw value to traverse
	// the full 0..1 range. Must be positive.
	Interval float64 `yaml:"interval"`

	// Strength controls curve steepness. Must be greater than 1;
	// higher values sharpen the curvature. Leave zero to use
	// DefaultStrength.
	Strength float64 `yaml:"strength"`

	// RepeatMode determines boundary behavior.
	RepeatMode RepeatMode `yaml:"repeat"`
}

// Validate checks if the configuration is valid. A zero Strength is
// accepted and stands for DefaultStrength.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidArgument)
	}

	if c.Strength != 0 && c.Strength <= 1 {
		return fmt.Errorf("%w: strength must be greater than 1", ErrInvalidArgument)
	}

	if c.Direction != Incremental && c.Direction != Decremental {
		return fmt.Errorf("%w: unknown direction %d", ErrInvalidArgument, int(c.Direction))
	}

	if c.Curvature != Concave && c.Curvature != Convex {
		return fmt.Errorf("%w: unknown curvature %d", ErrInvalidArgument, int(c.Curvature))
	}

	if c.RepeatMode < NoRepeat || c.RepeatMode > PingPong {
		return fmt.Errorf("%w: unknown repeat mode %d", ErrInvalidArgument, int(c.RepeatMode))
	}

	return nil
}

// Interpolator advances a raw progress value over caller-supplied delta
// time and maps it through a concave or convex curve.
//
// Instances are not safe for unsynchronized concurrent use; use one
// instance per logical timeline or provide external locking.
type Interpolator struct {
	direction Direction
	curvature Curvature
	repeat    RepeatMode
	interval  float64
	strength  float64

	raw          float64
	interpolated float64
}

// New creates an interpolator from the configuration. A zero
// Config.Strength is replaced with DefaultStrength before validation.
// The interpolator starts in its reset state.
func New(cfg *Config) (*Interpolator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strength := cfg.Strength
	if strength == 0 {
		strength = DefaultStrength
	}

	ip := &Interpolator{
		direction: cfg.Direction,
		curvature: cfg.Curvature,
		repeat:    cfg.RepeatMode,
		interval:  cfg.Interval,
		strength:  strength,
	}
	ip.Reset()

	return ip, nil
}

// Reset returns both values to their initial state: 0 when the
// direction is Incremental, 1 when Decremental. No curve evaluation is
// needed since both formulas map 0 to 0 and 1 to 1 exactly.
func (ip *Interpolator) Reset() {
	if ip.direction == Incremental {
		ip.raw = 0
		ip.interpolated = 0
	} else {
		ip.raw = 1
		ip.interpolated = 1
	}
}

// Advance moves the raw value by delta/interval in the configured
// direction and recomputes the interpolated value. Boundary crossings
// are resolved by the repeat mode using the excess past the boundary,
// so large deltas stay accurate across cycles.
//
// A negative delta runs time backward. If it pushes the raw value past
// the origin boundary (below 0 while Incremental, above 1 while
// Decremental) the value clamps at that boundary.
func (ip *Interpolator) Advance(delta float64) {
	if ip.repeat == NoRepeat && ip.Done() {
		return
	}

	step := delta / ip.interval

	if ip.direction == Incremental {
		ip.raw += step
		switch {
		case ip.raw > 1:
			switch ip.repeat {
			case NoRepeat:
				ip.raw = 1
			case Repeat:
				ip.raw -= 1
			case PingPong:
				ip.raw = 2 - ip.raw
				ip.direction = Decremental
			}
		case ip.raw < 0:
			// Negative delta rewound past the start.
			ip.raw = 0
		}
	} else {
		ip.raw -= step
		switch {
		case ip.raw < 0:
			switch ip.repeat {
			case NoRepeat:
				ip.raw = 0
			case Repeat:
				ip.raw += 1
			case PingPong:
				ip.raw = -ip.raw
				ip.direction = Incremental
			}
		case ip.raw > 1:
			ip.raw = 1
		}
	}

	ip.interpolated = ip.curvature.Eval(ip.strength, ip.raw)
}

// SetRawValue sets the raw value directly, bypassing time stepping, and
// recomputes the interpolated value. Direction and repeat mode are
// unchanged. Values outside [0, 1] are rejected and leave the prior
// state intact.
func (ip *Interpolator) SetRawValue(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: raw value must be between 0 and 1", ErrInvalidArgument)
	}

	ip.raw = v
	ip.interpolated = ip.curvature.Eval(ip.strength, ip.raw)

	return nil
}

// Done reports whether a NoRepeat interpolator has reached its terminal
// boundary (1 for Incremental, 0 for Decremental). It is always false
// for Repeat and PingPong modes.
func (ip *Interpolator) Done() bool {
	if ip.repeat != NoRepeat {
		return false
	}
	if ip.direction == Incremental {
		return ip.raw == 1
	}
	return ip.raw == 0
}

// Strength returns the curve steepness parameter.
func (ip *Interpolator) Strength() float64 { return ip.strength }

// Interval returns the traversal time in seconds.
func (ip *Interpolator) Interval() float64 { return ip.interval }

// RawValue returns the linear progress in [0, 1].
func (ip *Interpolator) RawValue() float64 { return ip.raw }

// InterpolatedValue returns the curve-mapped output in [0, 1].
func (ip *Interpolator) InterpolatedValue() float64 { return ip.interpolated }

// Direction returns the current direction. Under PingPong it flips
// every time the raw value bounces off a boundary.
func (ip *Interpolator) Direction() Direction { return ip.direction }

// Curvature returns the configured curvature.
func (ip *Interpolator) Curvature() Curvature { return ip.curvature }

// RepeatMode returns the configured repeat mode.
func (ip *Interpolator) RepeatMode() RepeatMode { return ip.repeat }

// The setters below reconfigure a live interpolator without
// re-validating against its current state, which can produce sudden
// jumps in the output. Use at your own risk.

// SetInterval replaces the traversal interval.
func (ip *Interpolator) SetInterval(interval float64) { ip.interval = interval }

// SetDirection replaces the direction without touching the raw value.
func (ip *Interpolator) SetDirection(d Direction) { ip.direction = d }

// SetCurvature replaces the curvature. The interpolated value is not
// recomputed until the next Advance or SetRawValue call.
func (ip *Interpolator) SetCurvature(c Curvature) { ip.curvature = c }
