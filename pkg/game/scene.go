package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (e.g. the contact page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Teardown 是一个可选接口，场景被替换或应用退出时调用
//
// 持有动画或后台任务的场景必须在这里取消所有待执行的帧回调，
// 保证被卸载的场景不会继续更新或渲染。
type Teardown interface {
	Teardown()
}
