// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PageInput 存储当前帧联系页关心的输入
type PageInput struct {
	Submit        bool    // Enter 或点击/触摸
	Dismiss       bool    // Esc：立即结束庆祝
	ToggleTheme   bool    // T
	ToggleEffects bool    // E
	Scroll        float64 // 本帧滚动量（像素，正数向下）

	// 点击/触摸位置，仅 Clicked 为 true 时有效
	Clicked bool
	X, Y    int
}

// ReadPageInput 读取当前帧的键盘、滚轮和指针输入
func ReadPageInput(scrollStep float64) PageInput {
	in := PageInput{
		Submit:        inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Dismiss:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleTheme:   inpututil.IsKeyJustPressed(ebiten.KeyT),
		ToggleEffects: inpututil.IsKeyJustPressed(ebiten.KeyE),
	}

	_, wheelY := ebiten.Wheel()
	in.Scroll = ScrollDelta(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		wheelY, scrollStep,
	)

	in.Clicked, in.X, in.Y = IsJustTouchedOrClicked()
	return in
}

// ScrollDelta 把方向键和滚轮合成为滚动距离
// 滚轮向上（wheelY > 0）对应页面向上滚动
func ScrollDelta(up, down bool, wheelY, step float64) float64 {
	d := -wheelY * step
	if up {
		d -= step
	}
	if down {
		d += step
	}
	return d
}

// ClampScroll 将滚动位置限制在 [0, pageHeight-viewportHeight]
func ClampScroll(y, pageHeight, viewportHeight float64) float64 {
	maxY := pageHeight - viewportHeight
	if maxY < 0 {
		maxY = 0
	}
	if y < 0 {
		return 0
	}
	if y > maxY {
		return maxY
	}
	return y
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
