// Package sound synthesizes the short audio cues played on phase changes.
//
// Cues are plain beep streamers; opening an output device is left to the
// caller.
package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

// Cue selects a synthesized sound.
type Cue int

const (
	// Whoosh is falling filtered noise, played when particles disperse.
	Whoosh Cue = iota
	// Chime is a rising two-partial tone, played when particles reemerge.
	Chime
)

func (c Cue) String() string {
	switch c {
	case Whoosh:
		return "whoosh"
	case Chime:
		return "chime"
	default:
		return "unknown"
	}
}

// New returns a streamer that plays cue for d at sample rate sr, scaled by
// volume. It ends by itself.
func New(cue Cue, sr beep.SampleRate, d time.Duration, volume float64) beep.Streamer {
	length := max(sr.N(d), 1)
	attack := length / 10
	release := length * 6 / 10

	var src beep.Streamer
	switch cue {
	case Chime:
		src = chime(sr, length)
	default:
		src = whoosh(sr, length)
	}
	return newEnvelope(src, length, attack, release, volume)
}

// whoosh low-passes white noise with a cutoff sweeping from 4 kHz down to
// 200 Hz.
func whoosh(sr beep.SampleRate, length int) beep.Streamer {
	rng := rand.New(rand.NewPCG(1, 2))
	var lp float64
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= length {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && i < length; n++ {
			t := float64(i) / float64(length)
			cutoff := 4000 * math.Pow(200.0/4000, t)
			alpha := 1 - math.Exp(-2*math.Pi*cutoff/float64(sr))
			lp += alpha * (rng.Float64()*2 - 1 - lp)
			samples[n][0] = lp
			samples[n][1] = lp
			i++
		}
		return n, true
	})
}

// chime sweeps a fundamental from 330 Hz to 660 Hz with a quieter octave.
func chime(sr beep.SampleRate, length int) beep.Streamer {
	var phase float64
	i := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= length {
			return 0, false
		}
		n := 0
		for ; n < len(samples) && i < length; n++ {
			t := float64(i) / float64(length)
			freq := 330 * math.Pow(2, t)
			phase += 2 * math.Pi * freq / float64(sr)
			v := 0.7*math.Sin(phase) + 0.3*math.Sin(2*phase)
			samples[n][0] = v
			samples[n][1] = v
			i++
		}
		return n, true
	})
}
