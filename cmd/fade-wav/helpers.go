package main

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"

	interp "github.com/soramane/go-interpolator"
)

// Sample format constants
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	stereoChannels = 2

	wavPCMFormat = 1 // PCM format tag in the WAV fmt chunk
)

// wavClip holds decoded audio as planar normalized float64 channels.
type wavClip struct {
	rate     int
	bitDepth int
	channels [][]float64
}

func (c *wavClip) frames() int {
	if len(c.channels) == 0 {
		return 0
	}
	return len(c.channels[0])
}

// intBuffer converts the clip back to an interleaved audio.IntBuffer.
func (c *wavClip) intBuffer() *audio.IntBuffer {
	scale, _ := sampleScale(c.bitDepth)
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(c.channels),
			SampleRate:  c.rate,
		},
		Data:           interleave(c.channels, scale),
		SourceBitDepth: c.bitDepth,
	}
}

// sampleScale returns the full-scale factor for a PCM bit depth.
func sampleScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// deinterleave splits interleaved PCM ints into planar float64
// channels normalized to [-1, 1].
func deinterleave(data []int, channels int, scale float64) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(data[i*channels+ch]) / scale
		}
	}

	return out
}

// interleave merges planar float64 channels back into interleaved PCM
// ints, clamping to full scale.
func interleave(channels [][]float64, scale float64) []int {
	if len(channels) == 0 {
		return nil
	}

	if len(channels) == stereoChannels {
		mixed := interp.InterleaveStereo(channels[0], channels[1])
		out := make([]int, len(mixed))
		for i, v := range mixed {
			out[i] = quantize(v, scale)
		}
		return out
	}

	frames := len(channels[0])
	out := make([]int, frames*len(channels))
	for i := 0; i < frames; i++ {
		for ch := range channels {
			out[i*len(channels)+ch] = quantize(channels[ch][i], scale)
		}
	}

	return out
}

// quantize converts a normalized sample to PCM, clamping to [-1, 1].
func quantize(v, scale float64) int {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(math.Round(v * scale))
}
