// Command interpolate prints interpolator output over simulated time as
// a tab-separated table, one row per frame.
//
// Usage:
//
//	interpolate -interval 0.5 -curvature concave -duration 1 -fps 60
//	interpolate -direction decremental -repeat pingpong -duration 2
//	interpolate -presets presets.yaml -preset pulse -duration 2
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	interp "github.com/soramane/go-interpolator"
)

const (
	defaultInterval = 1.0
	defaultDuration = 1.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		direction   = flag.String("direction", "incremental", "Direction: incremental, decremental")
		curvature   = flag.String("curvature", "concave", "Curvature: concave, convex")
		interval    = flag.Float64("interval", defaultInterval, "Seconds to traverse the 0..1 range")
		strength    = flag.Float64("strength", interp.DefaultStrength, "Curve steepness (must be > 1)")
		repeat      = flag.String("repeat", "no-repeat", "Repeat mode: no-repeat, repeat, pingpong")
		fps         = flag.Float64("fps", interp.FPSGame, "Steps per second")
		duration    = flag.Float64("duration", defaultDuration, "Seconds to simulate")
		presetsPath = flag.String("presets", "", "YAML preset file (overrides the shape flags)")
		presetName  = flag.String("preset", "", "Preset name to use from the preset file")
	)
	flag.Parse()

	cfg, err := buildConfig(*presetsPath, *presetName, *direction, *curvature, *interval, *strength, *repeat)
	if err != nil {
		return err
	}

	ip, err := interp.New(cfg)
	if err != nil {
		return err
	}

	if *fps <= 0 || *duration <= 0 {
		return fmt.Errorf("fps and duration must be positive")
	}

	fmt.Printf("# direction=%s curvature=%s interval=%gs strength=%g repeat=%s\n",
		ip.Direction(), ip.Curvature(), ip.Interval(), ip.Strength(), ip.RepeatMode())
	fmt.Println("time\traw\tvalue")

	delta := interp.FrameDelta(*fps)
	steps := int(*duration * *fps)
	for i := 0; i <= steps; i++ {
		fmt.Printf("%.4f\t%.6f\t%.6f\n", float64(i)*delta, ip.RawValue(), ip.InterpolatedValue())
		ip.Advance(delta)
	}

	return nil
}

// buildConfig resolves the interpolator configuration from either a
// named preset or the individual shape flags.
func buildConfig(presetsPath, presetName, direction, curvature string, interval, strength float64, repeat string) (*interp.Config, error) {
	if presetsPath != "" {
		presets, err := interp.LoadPresetsFile(presetsPath)
		if err != nil {
			return nil, err
		}
		cfg, ok := presets[presetName]
		if !ok {
			fmt.Fprintf(os.Stderr, "Available presets in %s:\n", presetsPath)
			for name := range presets {
				fmt.Fprintf(os.Stderr, "  %s\n", name)
			}
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
		return cfg, nil
	}

	dir, err := parseDirection(direction)
	if err != nil {
		return nil, err
	}

	curv, err := parseCurvature(curvature)
	if err != nil {
		return nil, err
	}

	mode, err := parseRepeatMode(repeat)
	if err != nil {
		return nil, err
	}

	return &interp.Config{
		Direction:  dir,
		Curvature:  curv,
		Interval:   interval,
		Strength:   strength,
		RepeatMode: mode,
	}, nil
}

func parseDirection(s string) (interp.Direction, error) {
	switch s {
	case "incremental", "up":
		return interp.Incremental, nil
	case "decremental", "down":
		return interp.Decremental, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseCurvature(s string) (interp.Curvature, error) {
	switch s {
	case "concave", "log":
		return interp.Concave, nil
	case "convex", "pow":
		return interp.Convex, nil
	default:
		return 0, fmt.Errorf("unknown curvature %q", s)
	}
}

func parseRepeatMode(s string) (interp.RepeatMode, error) {
	switch s {
	case "no-repeat", "norepeat", "none":
		return interp.NoRepeat, nil
	case "repeat", "loop":
		return interp.Repeat, nil
	case "pingpong", "ping-pong":
		return interp.PingPong, nil
	default:
		return 0, fmt.Errorf("unknown repeat mode %q", s)
	}
}
