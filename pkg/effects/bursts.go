package effects

import (
	"math"
	"math/rand"

	"github.com/gonewx/deadzone/pkg/types"
)

// 本文件是效果组合的工厂：把一次游戏事件翻译成一组粒子/贴花/光源。
// 随机数发生器由调用方注入，便于测试复现

// SpawnWallHit 子弹撞墙：火花 + 灰尘 + 灼痕 + 短光
func (p *Pool) SpawnWallHit(rng *rand.Rand, x, y float64) {
	for i := 0; i < 5; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 40 + rng.Float64()*120
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a) * sp,
			Life: 0.15 + rng.Float64()*0.2, MaxLife: 0.35,
			Size: 1.5 + rng.Float64(),
			R: 1, G: 0.85, B: 0.4,
			Kind: types.ParticleSpark,
		})
	}
	for i := 0; i < 3; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 10 + rng.Float64()*30
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a) * sp,
			Life: 0.4 + rng.Float64()*0.4, MaxLife: 0.8,
			Size: 3 + rng.Float64()*3,
			R: 0.6, G: 0.58, B: 0.52,
			Drag: 2.5,
			Kind: types.ParticleDust,
		})
	}
	p.AddDecal(&Decal{
		X: x, Y: y,
		Kind:  types.DecalScorch,
		Size:  4 + rng.Float64()*3,
		Rot:   rng.Float64() * 2 * math.Pi,
		Alpha: 0.7,
	})
	p.AddLight(&Light{
		X: x, Y: y,
		Radius: 40, Intensity: 0.6,
		R: 1, G: 0.8, B: 0.5,
		Life: 0.12, MaxLife: 0.12,
	})
}

// SpawnBloodHit 敌人受击：血液喷溅，方向沿子弹速度
func (p *Pool) SpawnBloodHit(rng *rand.Rand, x, y, dirX, dirY float64) {
	base := math.Atan2(dirY, dirX)
	for i := 0; i < 8; i++ {
		a := base + (rng.Float64()-0.5)*1.4
		sp := 30 + rng.Float64()*140
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a) * sp,
			Life: 0.3 + rng.Float64()*0.4, MaxLife: 0.7,
			Size: 2 + rng.Float64()*2,
			R: 0.65 + rng.Float64()*0.2, G: 0.05, B: 0.05,
			Gravity: 60,
			Drag:    3,
			Kind:    types.ParticleBlood,
		})
	}
}

// SpawnDeathBurst 敌人死亡：大量血液 + 碎块 + 大贴花
func (p *Pool) SpawnDeathBurst(rng *rand.Rand, x, y, size float64) {
	count := 14 + int(size)
	for i := 0; i < count; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 20 + rng.Float64()*180
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a) * sp,
			Life: 0.4 + rng.Float64()*0.6, MaxLife: 1.0,
			Size: 2 + rng.Float64()*3,
			R: 0.55 + rng.Float64()*0.3, G: 0.04, B: 0.04,
			Gravity: 70,
			Drag:    3,
			Kind:    types.ParticleBlood,
		})
	}
	for i := 0; i < 6; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 40 + rng.Float64()*120
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a) * sp,
			Life: 0.5 + rng.Float64()*0.5, MaxLife: 1.0,
			Size:     3 + rng.Float64()*3,
			R:        0.5, G: 0.1, B: 0.08,
			Rot:      rng.Float64() * 2 * math.Pi,
			RotSpeed: (rng.Float64() - 0.5) * 12,
			Gravity:  90,
			Drag:     2,
			Kind:     types.ParticleGib,
		})
	}
	p.AddDecal(&Decal{
		X: x, Y: y,
		Kind:  types.DecalBlood,
		Size:  10 + size + rng.Float64()*6,
		Rot:   rng.Float64() * 2 * math.Pi,
		Alpha: 0.85,
	})
}

// SpawnMuzzleFlash 开火：枪口闪光粒子 + 弹壳 + 短光
func (p *Pool) SpawnMuzzleFlash(rng *rand.Rand, x, y, angle float64) {
	p.AddParticle(&Particle{
		X: x + math.Cos(angle)*14, Y: y + math.Sin(angle)*14,
		VX: math.Cos(angle) * 40, VY: math.Sin(angle) * 40,
		Life: 0.05, MaxLife: 0.05,
		Size: 6,
		R: 1, G: 0.9, B: 0.5,
		Kind: types.ParticleMuzzle,
	})

	// 弹壳向持枪手侧后方弹出
	ejectA := angle + math.Pi/2 + (rng.Float64()-0.5)*0.5
	p.AddParticle(&Particle{
		X: x, Y: y,
		VX: math.Cos(ejectA) * (60 + rng.Float64()*40),
		VY: math.Sin(ejectA)*(60+rng.Float64()*40) - 40,
		Life: 0.5 + rng.Float64()*0.3, MaxLife: 0.8,
		Size:     1.6,
		R:        0.85, G: 0.7, B: 0.25,
		Rot:      rng.Float64() * 2 * math.Pi,
		RotSpeed: (rng.Float64() - 0.5) * 20,
		Gravity:  260,
		Kind:     types.ParticleShell,
	})

	p.AddLight(&Light{
		X: x + math.Cos(angle)*16, Y: y + math.Sin(angle)*16,
		Radius: 70, Intensity: 0.8,
		R: 1, G: 0.85, B: 0.5,
		Life: 0.06, MaxLife: 0.06,
	})
}

// SpawnPickupSparkle 拾取收集：上升的余烬
func (p *Pool) SpawnPickupSparkle(rng *rand.Rand, x, y float64, r, g, b float64) {
	for i := 0; i < 10; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 15 + rng.Float64()*50
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a)*sp - 50,
			Life: 0.4 + rng.Float64()*0.4, MaxLife: 0.8,
			Size: 1.5 + rng.Float64()*1.5,
			R: r, G: g, B: b,
			Gravity: -20,
			Kind:    types.ParticleEmber,
		})
	}
	p.AddLight(&Light{
		X: x, Y: y,
		Radius: 50, Intensity: 0.5,
		R: r, G: g, B: b,
		Life: 0.25, MaxLife: 0.25,
	})
}

// SpawnSmokePuff 残留烟雾（远程敌人开火）
func (p *Pool) SpawnSmokePuff(rng *rand.Rand, x, y float64) {
	for i := 0; i < 3; i++ {
		a := rng.Float64() * 2 * math.Pi
		sp := 5 + rng.Float64()*15
		p.AddParticle(&Particle{
			X: x, Y: y,
			VX: math.Cos(a) * sp, VY: math.Sin(a)*sp - 10,
			Life: 0.5 + rng.Float64()*0.5, MaxLife: 1.0,
			Size: 4 + rng.Float64()*4,
			R: 0.4, G: 0.42, B: 0.4,
			Drag: 1.5,
			Kind: types.ParticleSmoke,
		})
	}
}
