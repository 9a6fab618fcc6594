// Package audio turns sound events into short synthesized effects played through ebiten's
// audio context.
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/retrofolio/config"
)

// bytesPerFrame is 16-bit little endian stereo
const bytesPerFrame = 4

// Synthesize renders every voice of a sound into one PCM buffer at the configured sample rate.
// Output for a given id is identical across calls. Unknown ids and SoundNone return nil.
func Synthesize(id cfg.SoundID) []byte {
	tones := cfg.Sound.Tones[id]
	if len(tones) == 0 {
		return nil
	}
	rate := float64(cfg.Audio.SampleRate)

	frames := 0
	for _, t := range tones {
		frames = max(frames, int(math.Ceil((t.Delay+t.Duration)*rate)))
	}
	mix := make([]float64, frames)
	noise := rand.New(rand.NewSource(cfg.Audio.NoiseSeed))

	for _, t := range tones {
		start := int(t.Delay * rate)
		n := int(t.Duration * rate)
		phase := 0.0
		for i := 0; i < n && start+i < frames; i++ {
			progress := float64(i) / float64(n)
			gain := decay(t.Gain, cfg.Audio.Floor, progress)

			var s float64
			switch t.Wave {
			case cfg.WaveNoise:
				s = noise.Float64()*2 - 1
			case cfg.WaveSquare:
				s = 1
				if math.Sin(phase) < 0 {
					s = -1
				}
			default:
				s = math.Sin(phase)
			}
			mix[start+i] += s * gain
			phase += 2 * math.Pi * glide(t.StartHz, t.EndHz, progress) / rate
		}
	}

	out := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v*cfg.Audio.Volume))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], sample)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], sample)
	}
	return out
}

// glide moves exponentially from start to end. Non-positive endpoints hold start.
func glide(start, end, progress float64) float64 {
	if start <= 0 || end <= 0 {
		return start
	}
	return start * math.Pow(end/start, progress)
}

// decay falls exponentially from gain to floor
func decay(gain, floor, progress float64) float64 {
	if gain <= 0 {
		return 0
	}
	if floor <= 0 || floor >= gain {
		return gain * (1 - progress)
	}
	return gain * math.Pow(floor/gain, progress)
}
