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

// CombatSystem 积分子弹轨迹并结算命中
// 碰撞检测对子弹和敌人做全量配对扫描，遍历顺序与切片顺序一致，
// 同一颗子弹最多命中一个目标
type CombatSystem struct {
	store *entities.Store
	world *level.TileWorld
	gs    *game.GameState
	wave  *WaveState
	pool  *effects.Pool
	audio game.AudioService
	rng   *rand.Rand
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(store *entities.Store, world *level.TileWorld, gs *game.GameState, wave *WaveState, pool *effects.Pool, audio game.AudioService, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		store: store,
		world: world,
		gs:    gs,
		wave:  wave,
		pool:  pool,
		audio: audio,
		rng:   rng,
	}
}

// Update 推进全部子弹一帧并结算碰撞
func (cs *CombatSystem) Update(dt float64) {
	for _, b := range cs.store.Bullets {
		if b.Life <= 0 {
			continue
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Life -= dt
		if b.Life <= 0 {
			continue
		}

		if cs.world.IsWall(b.X, b.Y) {
			cs.pool.SpawnWallHit(cs.rng, b.X, b.Y)
			b.Life = 0
			continue
		}

		if b.FromPlayer {
			cs.hitEnemies(b)
		} else {
			cs.hitPlayer(b)
		}
	}
}

// hitEnemies 玩家子弹对存活敌人的圆形命中检测
func (cs *CombatSystem) hitEnemies(b *entities.Bullet) {
	for _, e := range cs.store.Enemies {
		if !e.Alive {
			continue
		}
		if math.Hypot(e.X-b.X, e.Y-b.Y) >= e.Radius {
			continue
		}

		speed := math.Hypot(b.VX, b.VY)
		dirX, dirY := 0.0, 0.0
		if speed > 0 {
			dirX, dirY = b.VX/speed, b.VY/speed
		}
		cs.pool.SpawnBloodHit(cs.rng, b.X, b.Y, dirX, dirY)

		if e.ApplyDamage(b.Damage) {
			cs.onEnemyKilled(e)
		}
		b.Life = 0
		return
	}
}

// onEnemyKilled 击杀结算：计分、死亡迸发、概率掉落
func (cs *CombatSystem) onEnemyKilled(e *entities.Enemy) {
	cs.wave.Score += e.Score
	cs.wave.Kills++
	cs.pool.SpawnDeathBurst(cs.rng, e.X, e.Y, e.Radius)
	cs.gs.AddShake(0.12)
	cs.audio.PlayHit()

	if cs.rng.Float64() < config.PickupDropChance {
		kind := types.PickupKind(cs.rng.Intn(3))
		cs.store.Pickups = append(cs.store.Pickups,
			entities.NewPickup(kind, e.X, e.Y, cs.rng.Float64()*2*math.Pi))
	}
}

// hitPlayer 敌方子弹对玩家的圆形命中检测
func (cs *CombatSystem) hitPlayer(b *entities.Bullet) {
	p := cs.store.Player
	if p.Health <= 0 {
		return
	}
	if math.Hypot(p.X-b.X, p.Y-b.Y) >= config.PlayerRadius {
		return
	}

	died := p.ApplyDamage(b.Damage)
	cs.gs.AddShake(0.2)
	cs.audio.PlayHit()
	speed := math.Hypot(b.VX, b.VY)
	if speed > 0 {
		cs.pool.SpawnBloodHit(cs.rng, b.X, b.Y, b.VX/speed, b.VY/speed)
	}
	b.Life = 0

	if died && cs.gs.TransitionGameOver() {
		cs.audio.StopMusic()
	}
}
