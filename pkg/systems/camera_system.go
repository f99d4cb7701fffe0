package systems

import (
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/level"
)

// CameraSystem 指数平滑追踪玩家并把相机钳制在关卡内
// 相机坐标写入 GameState，渲染层以此做世界到屏幕换算
type CameraSystem struct {
	store *entities.Store
	world *level.TileWorld
	gs    *game.GameState

	viewW, viewH float64
}

// NewCameraSystem 创建相机系统并立即对准玩家
func NewCameraSystem(store *entities.Store, world *level.TileWorld, gs *game.GameState) *CameraSystem {
	cs := &CameraSystem{
		store: store,
		world: world,
		gs:    gs,
		viewW: float64(config.GameWindowWidth),
		viewH: float64(config.GameWindowHeight),
	}
	cs.Snap()
	return cs
}

// Snap 把相机瞬移到目标位置，用于关卡切换
func (cs *CameraSystem) Snap() {
	tx, ty := cs.target()
	cs.gs.CameraX = tx
	cs.gs.CameraY = ty
}

// Update 平滑逼近目标，单帧插值系数封顶避免大 dt 时越过目标
func (cs *CameraSystem) Update(dt float64) {
	tx, ty := cs.target()
	f := config.CameraSmoothing * dt
	if f > config.CameraMaxStep {
		f = config.CameraMaxStep
	}
	cs.gs.CameraX += (tx - cs.gs.CameraX) * f
	cs.gs.CameraY += (ty - cs.gs.CameraY) * f
	cs.gs.DecayShake(dt)
}

// target 玩家居中后的相机左上角，逐轴钳制到世界边界；
// 世界小于视口的轴上直接居中
func (cs *CameraSystem) target() (float64, float64) {
	p := cs.store.Player
	x := clampCameraAxis(p.X-cs.viewW/2, cs.world.PixelWidth(), cs.viewW)
	y := clampCameraAxis(p.Y-cs.viewH/2, cs.world.PixelHeight(), cs.viewH)
	return x, y
}

func clampCameraAxis(v, worldSize, viewSize float64) float64 {
	if worldSize <= viewSize {
		return (worldSize - viewSize) / 2
	}
	if v < 0 {
		return 0
	}
	if max := worldSize - viewSize; v > max {
		return max
	}
	return v
}
