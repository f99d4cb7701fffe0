package effects

import "github.com/gonewx/deadzone/pkg/types"

// 贴花透明度参数
const (
	decalFadeRate   = 0.02 // 每秒透明度衰减
	bloodAlphaFloor = 0.35 // 血迹透明度下限，存续期间不完全消失
)

// Decal 地面贴花，比粒子存续更久，只做透明度淡出
type Decal struct {
	X, Y  float64
	Kind  types.DecalKind
	Size  float64
	Rot   float64
	Alpha float64
}

// update 推进贴花淡出；血迹淡出到下限后保持
func (d *Decal) update(dt float64) {
	d.Alpha -= decalFadeRate * dt
	if d.Kind == types.DecalBlood {
		if d.Alpha < bloodAlphaFloor {
			d.Alpha = bloodAlphaFloor
		}
		return
	}
	if d.Alpha < 0 {
		d.Alpha = 0
	}
}
