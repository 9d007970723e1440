package game

import (
	"image"
)

func inRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
