package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/level"
	"github.com/gonewx/deadzone/pkg/types"
)

// PlayerSystem 处理玩家移动、朝向、射击和拾取
type PlayerSystem struct {
	store *entities.Store
	world *level.TileWorld
	gs    *game.GameState
	pool  *effects.Pool
	audio game.AudioService
	rng   *rand.Rand

	// AimWorldX/Y 本帧瞄准目标的世界坐标，由场景在 Update 前
	// 用相机把屏幕坐标换算后写入
	AimWorldX, AimWorldY float64
	AimValid             bool
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(store *entities.Store, world *level.TileWorld, gs *game.GameState, pool *effects.Pool, audio game.AudioService, rng *rand.Rand) *PlayerSystem {
	return &PlayerSystem{
		store: store,
		world: world,
		gs:    gs,
		pool:  pool,
		audio: audio,
		rng:   rng,
	}
}

// Update 推进玩家一帧
func (ps *PlayerSystem) Update(dt float64, input *InputState) {
	p := ps.store.Player
	if p.Health <= 0 {
		return
	}

	ps.move(dt, input)
	ps.face(input)
	ps.fire(dt, input)
	ps.collectPickups(dt)

	if p.HitFlash > 0 {
		p.HitFlash -= dt
		if p.HitFlash < 0 {
			p.HitFlash = 0
		}
	}
}

// move 轴分离移动：先 X 后 Y，撞墙的轴单独回退
// 斜向贴墙时保留未阻挡轴的滑动
func (ps *PlayerSystem) move(dt float64, input *InputState) {
	p := ps.store.Player
	mx, my := input.MovementVector()
	if mx == 0 && my == 0 {
		p.WalkPhase = 0
		return
	}

	nx := p.X + mx*p.Speed*dt
	if !ps.blocked(nx, p.Y) {
		p.X = nx
	}
	ny := p.Y + my*p.Speed*dt
	if !ps.blocked(p.X, ny) {
		p.Y = ny
	}

	p.WalkPhase += dt * 10
}

// blocked 以玩家半径对圆周四个方向采样墙体
func (ps *PlayerSystem) blocked(x, y float64) bool {
	r := config.PlayerRadius
	return ps.world.IsWall(x-r, y) || ps.world.IsWall(x+r, y) ||
		ps.world.IsWall(x, y-r) || ps.world.IsWall(x, y+r)
}

// face 朝向瞄准目标；无有效瞄准时保持当前朝向
func (ps *PlayerSystem) face(input *InputState) {
	p := ps.store.Player
	if !ps.AimValid {
		return
	}
	dx := ps.AimWorldX - p.X
	dy := ps.AimWorldY - p.Y
	if dx != 0 || dy != 0 {
		p.Angle = math.Atan2(dy, dx)
	}
}

// fire 冷却结束且有弹药时发射一颗玩家子弹
// 弹药为 0 时不产生子弹，也不触发枪口效果
func (ps *PlayerSystem) fire(dt float64, input *InputState) {
	p := ps.store.Player
	if p.FireTimer > 0 {
		p.FireTimer -= dt
	}
	if !input.FireIntent() || p.FireTimer > 0 {
		return
	}
	if p.Ammo <= 0 {
		return
	}

	p.Ammo--
	p.FireTimer = config.PlayerFireCooldown

	muzzleX := p.X + math.Cos(p.Angle)*config.PlayerRadius*1.4
	muzzleY := p.Y + math.Sin(p.Angle)*config.PlayerRadius*1.4
	b := entities.NewBullet(muzzleX, muzzleY, p.Angle, config.PlayerBulletSpeed, config.PlayerBulletDamage, true, 2.5)
	ps.store.Bullets = append(ps.store.Bullets, b)

	ps.pool.SpawnMuzzleFlash(ps.rng, muzzleX, muzzleY, p.Angle)
	ps.gs.AddShake(0.08)
	ps.audio.PlayShot()
}

// pickupColor 拾取闪光配色：医疗红、弹药黄、护甲蓝
func pickupColor(kind types.PickupKind) (float64, float64, float64) {
	switch kind {
	case types.PickupHealth:
		return 0.9, 0.25, 0.25
	case types.PickupAmmo:
		return 0.95, 0.8, 0.3
	default:
		return 0.35, 0.6, 0.95
	}
}

// collectPickups 吸取玩家拾取半径内的道具
func (ps *PlayerSystem) collectPickups(dt float64) {
	p := ps.store.Player
	for _, pk := range ps.store.Pickups {
		if pk.Collected {
			continue
		}
		pk.BobPhase += dt * 3
		if math.Hypot(pk.X-p.X, pk.Y-p.Y) > config.PickupRadius {
			continue
		}
		if pk.Apply(p) {
			r, g, b := pickupColor(pk.Kind)
			ps.pool.SpawnPickupSparkle(ps.rng, pk.X, pk.Y, r, g, b)
			ps.audio.PlayUse()
		}
	}
}
