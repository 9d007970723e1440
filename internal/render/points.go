// Package render draws the particle field as screen-space point sprites.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/glyph-particles/internal/camera"
	"github.com/iburimskiy/glyph-particles/internal/particles"
)

// 16-bit indices address at most 65536 vertices per draw call.
const quadsPerBatch = 1 << 16 / 4

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Points turns the field's position and color buffers into colored quads,
// one per visible particle, sized with distance attenuation.
type Points struct {
	size    float32
	opacity float32

	vertices []ebiten.Vertex
	indices  []uint16
	visible  int

	camVersion uint64
	uploaded   bool
}

// NewPoints creates a point renderer with a world-space point size and a
// uniform opacity.
func NewPoints(size, opacity float32) *Points {
	p := &Points{
		size:    size,
		opacity: opacity,
		indices: make([]uint16, 0, quadsPerBatch*6),
	}
	for q := 0; q < quadsPerBatch; q++ {
		base := uint16(q * 4)
		p.indices = append(p.indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	return p
}

// Visible returns how many particles were inside the view at the last upload.
func (p *Points) Visible() int { return p.visible }

// Upload re-projects the field when its positions or the camera changed.
func (p *Points) Upload(f *particles.Field, cam *camera.Camera) {
	if p.uploaded && !f.Dirty() && cam.Version() == p.camVersion {
		return
	}

	n := f.Len()
	if cap(p.vertices) < n*4 {
		p.vertices = make([]ebiten.Vertex, 0, n*4)
	}
	p.vertices = p.vertices[:0]

	col := f.Colors()
	scale := cam.PointScale()
	for i := 0; i < n; i++ {
		x, y, depth, ok := cam.Project(f.Position(i))
		if !ok {
			continue
		}
		half := max(p.size*scale/depth, 1) / 2
		r, g, b := col[i*3], col[i*3+1], col[i*3+2]
		p.vertices = append(p.vertices,
			p.vertex(x-half, y-half, r, g, b),
			p.vertex(x+half, y-half, r, g, b),
			p.vertex(x-half, y+half, r, g, b),
			p.vertex(x+half, y+half, r, g, b),
		)
	}
	p.visible = len(p.vertices) / 4

	f.MarkClean()
	p.camVersion = cam.Version()
	p.uploaded = true
}

func (p *Points) vertex(x, y, r, g, b float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: p.opacity,
	}
}

// Draw submits the uploaded quads to dst.
func (p *Points) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawTrianglesOptions{}
	for start := 0; start < p.visible; start += quadsPerBatch {
		quads := min(p.visible-start, quadsPerBatch)
		verts := p.vertices[start*4 : (start+quads)*4]
		dst.DrawTriangles(verts, p.indices[:quads*6], whiteSubImage, op)
	}
}
