// Package tween holds the small easing and fading helpers used by the
// header's overlay widgets.
package tween

import (
	"image/color"
	"time"
)

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EaseOutCubic eases progress p in [0, 1].
func EaseOutCubic(p float64) float64 {
	q := 1 - Clamp01(p)
	return 1 - q*q*q
}

// Fraction returns how far now is into a window of length d that began at
// start, clamped to [0, 1].
func Fraction(start, now time.Time, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return Clamp01(float64(now.Sub(start)) / float64(d))
}

// Fade scales c's alpha by k in [0, 1]. The result is non-premultiplied, so
// its RGBA method yields a valid premultiplied color at every k.
func Fade(c color.NRGBA, k float64) color.NRGBA {
	c.A = uint8(float64(c.A)*Clamp01(k) + 0.5)
	return c
}
