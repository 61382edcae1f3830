package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/confetti/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConfettiSource is the read side of the confetti loop.
type ConfettiSource interface {
	Version() uint64
	AppendSnapshot(dst []components.ConfettiPiece) []components.ConfettiPiece
}

// maxConfettiQuadsPerBatch 单次 DrawTriangles 能容纳的四边形数（uint16 索引）
const maxConfettiQuadsPerBatch = math.MaxUint16 / 4

// ConfettiRenderSystem paints the published confetti snapshot.
//
// Pieces are positioned in percent of the target image: X=0 is the left edge,
// Y=0 the top edge. Each piece is a solid quad of its derived shape, rotated
// and scaled around its own center, drawn with one DrawTriangles call per batch.
// The renderer never writes back into the source.
type ConfettiRenderSystem struct {
	source ConfettiSource

	pixel    *ebiten.Image // 1x1 白色贴图，延迟创建
	snapshot []components.ConfettiPiece
	seen     uint64
	synced   bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewConfettiRenderSystem creates a renderer reading from source.
func NewConfettiRenderSystem(source ConfettiSource) *ConfettiRenderSystem {
	return &ConfettiRenderSystem{source: source}
}

// Draw paints the current snapshot onto screen. Nothing is drawn while the
// population is empty.
func (s *ConfettiRenderSystem) Draw(screen *ebiten.Image) {
	s.sync()
	if len(s.snapshot) == 0 {
		return
	}

	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}

	bounds := screen.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for start := 0; start < len(s.snapshot); start += maxConfettiQuadsPerBatch {
		end := start + maxConfettiQuadsPerBatch
		if end > len(s.snapshot) {
			end = len(s.snapshot)
		}

		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
		for i := start; i < end; i++ {
			quad := buildConfettiVertices(s.snapshot[i], w, h)
			base := uint16(len(s.vertices))
			s.vertices = append(s.vertices, quad[:]...)
			s.indices = append(s.indices,
				base+0, base+1, base+2,
				base+1, base+3, base+2,
			)
		}
		screen.DrawTriangles(s.vertices, s.indices, s.pixel, op)
	}
}

// Len returns how many pieces the last synced snapshot holds.
func (s *ConfettiRenderSystem) Len() int {
	s.sync()
	return len(s.snapshot)
}

// sync 仅在版本变化时重新拷贝快照
func (s *ConfettiRenderSystem) sync() {
	if s.source == nil {
		s.snapshot = s.snapshot[:0]
		return
	}
	v := s.source.Version()
	if s.synced && v == s.seen {
		return
	}
	s.snapshot = s.source.AppendSnapshot(s.snapshot[:0])
	s.seen = v
	s.synced = true
}

// confettiCorners returns the four transformed corners of a piece in screen
// pixels: left-top, right-top, left-bottom, right-bottom.
//
// The piece's top-left sits at (X%, Y%) of the screen; rotation (degrees,
// clockwise on screen) and scale apply around the shape's center.
func confettiCorners(p components.ConfettiPiece, screenW, screenH float64) [4][2]float64 {
	bw, bh := components.ConfettiShapeOf(p.ID).BaseSize()
	left := p.X / 100 * screenW
	top := p.Y / 100 * screenH
	cx := left + bw/2
	cy := top + bh/2

	local := [4][2]float64{
		{-bw / 2, -bh / 2},
		{bw / 2, -bh / 2},
		{-bw / 2, bh / 2},
		{bw / 2, bh / 2},
	}

	radians := p.Rotation * math.Pi / 180.0
	cosTheta := math.Cos(radians)
	sinTheta := math.Sin(radians)

	var out [4][2]float64
	for i, c := range local {
		x := c[0] * p.Scale
		y := c[1] * p.Scale
		out[i] = [2]float64{
			cx + x*cosTheta - y*sinTheta,
			cy + x*sinTheta + y*cosTheta,
		}
	}
	return out
}

// buildConfettiVertices 生成彩纸的 4 个顶点（纹理坐标覆盖 1x1 白色贴图）
func buildConfettiVertices(p components.ConfettiPiece, screenW, screenH float64) [4]ebiten.Vertex {
	corners := confettiCorners(p, screenW, screenH)

	r := float32(p.Color.R) / 255
	g := float32(p.Color.G) / 255
	b := float32(p.Color.B) / 255
	a := float32(p.Color.A) / 255

	src := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	var vs [4]ebiten.Vertex
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(corners[i][0]),
			DstY:   float32(corners[i][1]),
			SrcX:   src[i][0],
			SrcY:   src[i][1],
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	return vs
}
