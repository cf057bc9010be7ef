// Command fade-wav applies curve-shaped fade-in and fade-out envelopes
// to a WAV file.
//
// Usage:
//
//	fade-wav -in 0.5 -out 1.5 input.wav output.wav
//	fade-wav -in 0.25 -curvature concave -strength 48 input.wav output.wav
//
// Fades use the interpolator's convex curve by default, which keeps the
// start of a fade-in quiet and the end of a fade-out gentle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"

	interp "github.com/soramane/go-interpolator"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fadeIn := flag.Float64("in", 0, "Fade-in duration in seconds")
	fadeOut := flag.Float64("out", 0, "Fade-out duration in seconds")
	curvature := flag.String("curvature", "convex", "Fade curve: concave, convex")
	strength := flag.Float64("strength", interp.DefaultStrength, "Curve steepness (must be > 1)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	if *fadeIn < 0 || *fadeOut < 0 {
		return fmt.Errorf("fade durations must not be negative")
	}
	if *fadeIn == 0 && *fadeOut == 0 {
		return fmt.Errorf("nothing to do: both fades are zero")
	}

	curv, err := parseCurvature(*curvature)
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	clip, err := readWAV(inputPath)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %d Hz, %d channels, %d-bit, %d frames",
			clip.rate, len(clip.channels), clip.bitDepth, clip.frames())
	}

	spec := fadeSpec{
		inDuration:  *fadeIn,
		outDuration: *fadeOut,
		curvature:   curv,
		strength:    *strength,
	}
	if err := applyFades(clip, spec); err != nil {
		return err
	}

	if err := writeWAV(outputPath, clip); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %s", outputPath)
	}

	return nil
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

// fadeSpec describes the fades to apply.
type fadeSpec struct {
	inDuration  float64
	outDuration float64
	curvature   interp.Curvature
	strength    float64
}

// applyFades runs a fresh envelope per channel and per fade so channel
// state never bleeds between them.
func applyFades(clip *wavClip, spec fadeSpec) error {
	rate := float64(clip.rate)

	for ch, samples := range clip.channels {
		if spec.inDuration > 0 {
			head := samples[:min(len(samples), int(spec.inDuration*rate))]
			env, err := newFadeEnvelope(interp.Incremental, spec, rate)
			if err != nil {
				return fmt.Errorf("channel %d fade-in: %w", ch, err)
			}
			env.Apply(head, 0)
		}

		if spec.outDuration > 0 {
			start := len(samples) - int(spec.outDuration*rate)
			if start < 0 {
				start = 0
			}
			env, err := newFadeEnvelope(interp.Decremental, spec, rate)
			if err != nil {
				return fmt.Errorf("channel %d fade-out: %w", ch, err)
			}
			env.Apply(samples[start:], 0)
		}
	}

	return nil
}

func newFadeEnvelope(direction interp.Direction, spec fadeSpec, rate float64) (*interp.Envelope, error) {
	interval := spec.inDuration
	if direction == interp.Decremental {
		interval = spec.outDuration
	}

	ip, err := interp.New(&interp.Config{
		Direction: direction,
		Curvature: spec.curvature,
		Interval:  interval,
		Strength:  spec.strength,
	})
	if err != nil {
		return nil, err
	}

	return interp.NewEnvelope(ip, rate)
}

// readWAV decodes a WAV file into planar normalized float channels.
func readWAV(path string) (*wavClip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	scale, err := sampleScale(bitDepth)
	if err != nil {
		return nil, err
	}

	return &wavClip{
		rate:     format.SampleRate,
		bitDepth: bitDepth,
		channels: deinterleave(buf.Data, format.NumChannels, scale),
	}, nil
}

// writeWAV encodes planar float channels back to a PCM WAV file.
func writeWAV(path string, clip *wavClip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, clip.rate, clip.bitDepth, len(clip.channels), wavPCMFormat)
	if err := enc.Write(clip.intBuffer()); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}

	return f.Close()
}
