package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestCueLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, cue := range []Cue{Whoosh, Chime} {
		t.Run(cue.String(), func(t *testing.T) {
			samples := drain(New(cue, sr, 250*time.Millisecond, 0.5))
			if got, want := len(samples), sr.N(250*time.Millisecond); got != want {
				t.Fatalf("len = %d, want %d", got, want)
			}
			peak := 0.0
			for i, s := range samples {
				for _, v := range s {
					if math.IsNaN(v) || math.Abs(v) > 0.5 {
						t.Fatalf("sample %d = %v, want within ±0.5", i, s)
					}
					peak = max(peak, math.Abs(v))
				}
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
			if samples[0] != [2]float64{} {
				t.Errorf("first sample = %v, want silence at attack start", samples[0])
			}
			if last := samples[len(samples)-1]; last != [2]float64{} {
				t.Errorf("last sample = %v, want silence at release end", last)
			}
		})
	}
}

func TestCueEndsForGood(t *testing.T) {
	s := New(Chime, beep.SampleRate(1000), 10*time.Millisecond, 1)
	_ = drain(s)

	buf := make([][2]float64, 4)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestEnvelopeLevel(t *testing.T) {
	e := newEnvelope(nil, 100, 10, 20, 1)

	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{79, 1},
		{80, 19.0 / 20},
		{99, 0},
	}
	for _, tt := range tests {
		if got := e.level(tt.i); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("level(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}
