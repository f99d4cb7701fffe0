package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/level"
	"github.com/gonewx/deadzone/pkg/types"
)

// EnemySystem 按行为模式驱动敌人：近战追击、远程风筝
type EnemySystem struct {
	store      *entities.Store
	world      *level.TileWorld
	gs         *game.GameState
	pool       *effects.Pool
	audio      game.AudioService
	rng        *rand.Rand
	difficulty float64
}

// NewEnemySystem 创建敌人系统
// difficulty 缩放敌人对玩家造成的伤害，1.0 为标准
func NewEnemySystem(store *entities.Store, world *level.TileWorld, gs *game.GameState, pool *effects.Pool, audio game.AudioService, rng *rand.Rand, difficulty float64) *EnemySystem {
	return &EnemySystem{
		store:      store,
		world:      world,
		gs:         gs,
		pool:       pool,
		audio:      audio,
		rng:        rng,
		difficulty: difficulty,
	}
}

// Update 推进全部存活敌人一帧
func (es *EnemySystem) Update(dt float64) {
	for _, e := range es.store.Enemies {
		if !e.Alive {
			continue
		}
		if e.CooldownTimer > 0 {
			e.CooldownTimer -= dt
		}
		if e.HitFlash > 0 {
			e.HitFlash -= dt
			if e.HitFlash < 0 {
				e.HitFlash = 0
			}
		}

		switch e.Mode {
		case types.BehaviorRanged:
			es.updateRanged(e, dt)
		default:
			es.updateMelee(e, dt)
		}
	}
}

// updateMelee 近战：超出攻击距离就追击，进入范围后按冷却挥击
func (es *EnemySystem) updateMelee(e *entities.Enemy, dt float64) {
	p := es.store.Player
	dx := p.X - e.X
	dy := p.Y - e.Y
	dist := math.Hypot(dx, dy)

	if dist > e.AttackRange {
		es.step(e, dx/dist, dy/dist, e.Speed*dt)
		e.WalkPhase += dt * 8
		return
	}

	if e.CooldownTimer <= 0 && p.Health > 0 {
		e.CooldownTimer = e.AttackCooldown
		es.hurtPlayer(e.Damage)
	}
}

// updateRanged 远程：保持在 [KiteDistance, AttackRange] 环带内，
// 距离合适时朝玩家射击
func (es *EnemySystem) updateRanged(e *entities.Enemy, dt float64) {
	p := es.store.Player
	dx := p.X - e.X
	dy := p.Y - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx, ny := dx/dist, dy/dist

	switch {
	case dist > e.AttackRange:
		es.step(e, nx, ny, e.Speed*dt)
		e.WalkPhase += dt * 8
	case dist < e.KiteDistance:
		es.step(e, -nx, -ny, e.Speed*dt)
		e.WalkPhase += dt * 8
	}

	if dist <= e.AttackRange && e.CooldownTimer <= 0 && p.Health > 0 {
		e.CooldownTimer = e.AttackCooldown
		angle := math.Atan2(dy, dx)
		b := entities.NewBullet(e.X+nx*e.Radius, e.Y+ny*e.Radius, angle, e.BulletSpeed, e.Damage*es.difficulty, false, 3.0)
		es.store.Bullets = append(es.store.Bullets, b)
		es.pool.SpawnSmokePuff(es.rng, e.X+nx*e.Radius, e.Y+ny*e.Radius)
	}
}

// step 轴分离位移，贴墙时滑动
func (es *EnemySystem) step(e *entities.Enemy, dirX, dirY, amount float64) {
	nx := e.X + dirX*amount
	if !es.blocked(nx, e.Y, e.Radius) {
		e.X = nx
	}
	ny := e.Y + dirY*amount
	if !es.blocked(e.X, ny, e.Radius) {
		e.Y = ny
	}
}

func (es *EnemySystem) blocked(x, y, r float64) bool {
	return es.world.IsWall(x-r, y) || es.world.IsWall(x+r, y) ||
		es.world.IsWall(x, y-r) || es.world.IsWall(x, y+r)
}

// hurtPlayer 结算近战命中，玩家阵亡时触发一次性结束转换
func (es *EnemySystem) hurtPlayer(damage float64) {
	p := es.store.Player
	died := p.ApplyDamage(damage * es.difficulty)
	es.gs.AddShake(0.25)
	es.audio.PlayHit()
	if died && es.gs.TransitionGameOver() {
		es.audio.StopMusic()
	}
}
