package interpolator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// The enum types marshal to and from their lower-case string forms so
// preset files stay readable:
//
//	pulse:
//	  direction: incremental
//	  curvature: concave
//	  interval: 0.5
//	  strength: 24
//	  repeat: pingpong

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "incremental", "increment", "up":
		*d = Incremental
	case "decremental", "decrement", "down":
		*d = Decremental
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Curvature) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "concave", "log", "logarithmic":
		*c = Concave
	case "convex", "pow", "power":
		*c = Convex
	default:
		return fmt.Errorf("%w: unknown curvature %q", ErrInvalidArgument, s)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Curvature) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. An absent "repeat" key
// decodes to the zero value, NoRepeat.
func (m *RepeatMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "no-repeat", "norepeat", "none", "once":
		*m = NoRepeat
	case "repeat", "loop", "wrap":
		*m = Repeat
	case "pingpong", "ping-pong", "bounce":
		*m = PingPong
	default:
		return fmt.Errorf("%w: unknown repeat mode %q", ErrInvalidArgument, s)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m RepeatMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// LoadPresets reads a YAML document mapping preset names to
// interpolator configurations. Every configuration is validated;
// the first invalid preset fails the whole load with its name in the
// error.
func LoadPresets(r io.Reader) (map[string]*Config, error) {
	dec := yaml.NewDecoder(r)

	presets := make(map[string]*Config)
	if err := dec.Decode(&presets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty preset document", ErrInvalidArgument)
		}
		return nil, fmt.Errorf("parsing presets: %w", err)
	}

	for name, cfg := range presets {
		if cfg == nil {
			return nil, fmt.Errorf("preset %q: %w: empty configuration", name, ErrInvalidArgument)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}

	return presets, nil
}

// LoadPresetsFile is LoadPresets over a file path.
func LoadPresetsFile(path string) (map[string]*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening preset file: %w", err)
	}
	defer f.Close()

	return LoadPresets(f)
}
