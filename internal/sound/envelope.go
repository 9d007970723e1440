package sound

import (
	"github.com/faiface/beep"
)

// envelope wraps a beep.Streamer and scales it with a linear attack, a flat
// hold and a linear release, ending the stream after length samples.
type envelope struct {
	Source  beep.Streamer
	attack  int
	release int
	length  int
	gain    float64
	pos     int
}

func newEnvelope(src beep.Streamer, length, attack, release int, gain float64) *envelope {
	return &envelope{
		Source:  src,
		attack:  min(attack, length),
		release: min(release, length),
		length:  length,
		gain:    gain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.length {
		return 0, false
	}
	if rest := e.length - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := e.Source.Stream(samples)
	for i := 0; i < n; i++ {
		a := e.level(e.pos) * e.gain
		samples[i][0] *= a
		samples[i][1] *= a
		e.pos++
	}
	if !ok || n == 0 {
		e.pos = e.length
	}
	return n, n > 0
}

func (e *envelope) Err() error { return e.Source.Err() }

// level returns the envelope amplitude in [0, 1] at sample i.
func (e *envelope) level(i int) float64 {
	switch {
	case e.attack > 0 && i < e.attack:
		return float64(i) / float64(e.attack)
	case e.release > 0 && i >= e.length-e.release:
		return float64(e.length-1-i) / float64(e.release)
	}
	return 1
}
