// Package level 提供关卡瓦片世界：墙体查询、出口和刷怪点采样
package level

import (
	"math"
	"math/rand"

	"github.com/gonewx/deadzone/pkg/config"
)

// TileWorld 是一个关卡的不可变瓦片网格
// 瓦片码：0 地板，>0 墙体纹理变体
// 加载后不再修改，由引擎在关卡生命周期内持有
type TileWorld struct {
	Name       string
	Width      int // 瓦片数
	Height     int // 瓦片数
	tiles      []int
	exits      map[TileKey]struct{}
	SpawnX     float64 // 玩家出生位置（世界坐标）
	SpawnY     float64
	SpawnAngle float64
}

// TileKey 出口集合的键
type TileKey struct {
	X, Y int
}

// NewTileWorld 从关卡配置构建瓦片世界
func NewTileWorld(cfg *config.LevelConfig) *TileWorld {
	w := &TileWorld{
		Name:   cfg.Name,
		Width:  cfg.Width(),
		Height: cfg.Height(),
		tiles:  make([]int, cfg.Width()*cfg.Height()),
		exits:  make(map[TileKey]struct{}, len(cfg.Exits)),
	}

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			w.tiles[y*w.Width+x] = cfg.TileAt(x, y)
		}
	}

	for _, e := range cfg.Exits {
		w.exits[TileKey{X: e.X, Y: e.Y}] = struct{}{}
	}

	// 出生位姿：瓦片中心
	w.SpawnX = (float64(cfg.Spawn.X) + 0.5) * config.TileSize
	w.SpawnY = (float64(cfg.Spawn.Y) + 0.5) * config.TileSize
	w.SpawnAngle = cfg.Spawn.Angle

	return w
}

// TileAt 返回瓦片码，越界视为墙
func (w *TileWorld) TileAt(tx, ty int) int {
	if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
		return 1
	}
	return w.tiles[ty*w.Width+tx]
}

// IsWall 将连续世界坐标转换为瓦片索引并报告是否阻挡
// 越界同样视为阻挡
func (w *TileWorld) IsWall(x, y float64) bool {
	tx := int(math.Floor(x / config.TileSize))
	ty := int(math.Floor(y / config.TileSize))
	return w.TileAt(tx, ty) > 0
}

// IsExit 报告世界坐标是否落在出口瓦片上
func (w *TileWorld) IsExit(x, y float64) bool {
	tx := int(math.Floor(x / config.TileSize))
	ty := int(math.Floor(y / config.TileSize))
	_, ok := w.exits[TileKey{X: tx, Y: ty}]
	return ok
}

// Exits 返回全部出口瓦片坐标（迷你地图与出口高亮使用）
func (w *TileWorld) Exits() []TileKey {
	out := make([]TileKey, 0, len(w.exits))
	for k := range w.exits {
		out = append(out, k)
	}
	return out
}

// PixelWidth 返回世界宽度（像素）
func (w *TileWorld) PixelWidth() float64 {
	return float64(w.Width) * config.TileSize
}

// PixelHeight 返回世界高度（像素）
func (w *TileWorld) PixelHeight() float64 {
	return float64(w.Height) * config.TileSize
}

// SampleSpawnPoint 在随机地板瓦片上做有界拒绝采样
// 只接受与玩家距离超过 minDist 的点；尝试次数耗尽后返回 ok=false，
// 调用方必须将其当作软失败（跳过本次生成），而不是错误
func (w *TileWorld) SampleSpawnPoint(rng *rand.Rand, minDist, playerX, playerY float64) (float64, float64, bool) {
	for i := 0; i < config.SpawnSampleAttempts; i++ {
		tx := rng.Intn(w.Width)
		ty := rng.Intn(w.Height)
		if w.TileAt(tx, ty) != 0 {
			continue
		}

		x := (float64(tx) + 0.5) * config.TileSize
		y := (float64(ty) + 0.5) * config.TileSize

		dx := x - playerX
		dy := y - playerY
		if dx*dx+dy*dy <= minDist*minDist {
			continue
		}

		return x, y, true
	}
	return 0, 0, false
}
