package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., loading screen, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds,
	// already clamped by the caller.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，视口尺寸变化时由宿主同步调用
// 实现方必须在下一次 Draw 之前完成缓冲区和程序纹理的重建
type Resizable interface {
	Resize(width, height int)
}
