package render

import (
	"math"

	"github.com/gonewx/deadzone/pkg/config"
)

// View is the camera transform applied to every world-space layer.
// Shake displaces the whole world while the HUD stays fixed.
type View struct {
	X, Y           float64
	ShakeX, ShakeY float64
	// ShakeRot 整个世界层的微小旋转（弧度），合成阶段应用
	ShakeRot float64
}

// NewView 由相机左上角和震动强度构造本帧视图
// 震动幅度随 trauma 的平方增长，用相位错开的正弦模拟抖动
func NewView(cameraX, cameraY, trauma, time float64) View {
	v := View{X: cameraX, Y: cameraY}
	if trauma > 0 {
		amp := trauma * trauma * 10
		v.ShakeX = amp * math.Sin(time*47.0)
		v.ShakeY = amp * math.Sin(time*59.0+1.3)
		v.ShakeRot = trauma * trauma * 0.012 * math.Sin(time*31.0+0.7)
	}
	return v
}

// WorldToScreen 世界坐标换算为屏幕坐标
func (v View) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - v.X + v.ShakeX, wy - v.Y + v.ShakeY
}

// ScreenToWorld 屏幕坐标换算回世界坐标，用于鼠标瞄准
func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + v.X - v.ShakeX, sy + v.Y - v.ShakeY
}

// VisibleTiles 返回视口覆盖的瓦片坐标闭区间 [x0,x1]x[y0,y1]
func (v View) VisibleTiles() (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((v.X - v.ShakeX) / config.TileSize))
	y0 = int(math.Floor((v.Y - v.ShakeY) / config.TileSize))
	x1 = int(math.Floor((v.X+config.GameWindowWidth)/config.TileSize)) + 1
	y1 = int(math.Floor((v.Y+config.GameWindowHeight)/config.TileSize)) + 1
	return
}
