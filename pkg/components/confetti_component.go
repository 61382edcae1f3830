package components

import (
	"image/color"

	"github.com/gonewx/confetti/pkg/config"
)

// ConfettiPiece is one piece of confetti in a running celebration.
//
// Positions are percentages of the viewport (0-100, Y grows downwards).
// Pieces have no lifetime of their own; the whole population belongs to
// the ConfettiSystem run that created it.
type ConfettiPiece struct {
	ID int // index within one run, not stable across runs

	X float64
	Y float64

	VelocityX float64
	VelocityY float64
	Gravity   float64 // added to VelocityY every tick, never negative

	Rotation float64 // degrees, unbounded
	Scale    float64

	Color color.RGBA
}

// ConfettiShape 彩纸形状（渲染时根据 ID 推导，不存储）
type ConfettiShape int

const (
	ConfettiSquare ConfettiShape = iota // 4x4
	ConfettiStrip                       // 6x3
)

// ConfettiShapeOf 返回指定 ID 的彩纸形状
// 偶数为方块，奇数为长条；同一片彩纸在整个动画中形状保持不变
func ConfettiShapeOf(id int) ConfettiShape {
	if id%2 == 0 {
		return ConfettiSquare
	}
	return ConfettiStrip
}

// BaseSize 返回形状在 Scale=1 时的像素尺寸
func (s ConfettiShape) BaseSize() (width, height float64) {
	if s == ConfettiSquare {
		return config.ConfettiSquareWidth, config.ConfettiSquareHeight
	}
	return config.ConfettiStripWidth, config.ConfettiStripHeight
}

func (s ConfettiShape) String() string {
	if s == ConfettiSquare {
		return "square"
	}
	return "strip"
}
