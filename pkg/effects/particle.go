// Package effects 管理短生命周期视觉效果的有界池：
// 粒子、地面贴花和瞬时点光源。
// 池自身负责物理积分和淘汰策略；渲染管线只读取
package effects

import "github.com/gonewx/deadzone/pkg/types"

// Particle 单个粒子
// 简单欧拉积分：位置 += 速度*dt，速度受重力和按类别的阻力影响
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64 // 剩余寿命（秒）
	MaxLife  float64
	Size     float64
	R, G, B  float64 // 颜色 0~1
	Rot      float64
	RotSpeed float64
	Gravity  float64
	Drag     float64 // 每秒速度衰减比例，0 表示无阻力
	Kind     types.ParticleKind
}

// LifeFrac 返回剩余寿命比例 0~1，渲染端用于透明度
func (p *Particle) LifeFrac() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// update 推进一个粒子的物理状态
func (p *Particle) update(dt float64) {
	p.VY += p.Gravity * dt
	if p.Drag > 0 {
		damp := 1 - p.Drag*dt
		if damp < 0 {
			damp = 0
		}
		p.VX *= damp
		p.VY *= damp
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Rot += p.RotSpeed * dt
	p.Life -= dt
}
