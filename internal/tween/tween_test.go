package tween

import (
	"image/color"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.p); got != tt.want {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFraction(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		d    time.Duration
		want float64
	}{
		{"before", start.Add(-time.Second), time.Second, 0},
		{"half", start.Add(100 * time.Millisecond), 200 * time.Millisecond, 0.5},
		{"after", start.Add(time.Minute), time.Second, 1},
		{"zero window", start, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fraction(start, tt.now, tt.d); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFadeStaysPremultipliedAndDims(t *testing.T) {
	label := color.NRGBA{R: 220, G: 210, B: 255, A: 255}

	var prev uint32 = 1 << 17
	for _, k := range []float64{1, 0.75, 0.5, 0.25, 0.1, 0} {
		r, g, b, a := Fade(label, k).RGBA()
		if r > a || g > a || b > a {
			t.Fatalf("Fade(k=%v).RGBA() = (%d, %d, %d, %d), channel exceeds alpha", k, r, g, b, a)
		}
		if b >= prev && k < 1 {
			t.Errorf("Fade(k=%v) blue = %d, want less than %d", k, b, prev)
		}
		prev = b
	}

	if got := Fade(label, 0); got.A != 0 {
		t.Errorf("Fade(k=0).A = %d, want 0", got.A)
	}
	if got := Fade(label, 1); got != label {
		t.Errorf("Fade(k=1) = %v, want %v", got, label)
	}
}
