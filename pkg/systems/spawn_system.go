package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/level"
	"github.com/gonewx/deadzone/pkg/types"
)

// WaveState 波次进度与计分
type WaveState struct {
	Wave       int
	Score      int
	Kills      int
	Countdown  float64
	InProgress bool
}

// SpawnSystem 驱动波次循环：倒计时、生成一波敌人、等待清场
// 每波敌人数 = 本关基数 + 波次序号*2，敌人种类按波次从解锁池均匀抽取
type SpawnSystem struct {
	store *entities.Store
	world *level.TileWorld
	stats *config.EnemyStatsConfig
	pool  *effects.Pool
	rng   *rand.Rand

	wave           WaveState
	enemiesPerWave int
}

// NewSpawnSystem 创建波次系统
// levelIndex 从 0 计，决定本关每波的敌人基数
func NewSpawnSystem(store *entities.Store, world *level.TileWorld, stats *config.EnemyStatsConfig, pool *effects.Pool, rng *rand.Rand, levelIndex int) *SpawnSystem {
	return &SpawnSystem{
		store: store,
		world: world,
		stats: stats,
		pool:  pool,
		rng:   rng,
		wave: WaveState{
			Countdown: config.WaveCountdown,
		},
		enemiesPerWave: config.BaseEnemiesPerLevel + levelIndex*config.EnemiesPerLevelStep,
	}
}

// Wave 返回波次状态
func (ss *SpawnSystem) Wave() *WaveState {
	return &ss.wave
}

// Update 推进波次循环一帧
func (ss *SpawnSystem) Update(dt float64) {
	if ss.wave.InProgress {
		if ss.store.LivingEnemyCount() == 0 {
			ss.wave.InProgress = false
			ss.wave.Countdown = config.WaveCountdown
		}
		return
	}

	ss.wave.Countdown -= dt
	if ss.wave.Countdown > 0 {
		return
	}

	ss.wave.Wave++
	ss.spawnWave()
	ss.wave.InProgress = true
}

// spawnWave 生成一整波敌人
// 采样不到合法落点的个体直接跳过，不会死循环
func (ss *SpawnSystem) spawnWave() {
	count := ss.enemiesPerWave + ss.wave.Wave*2
	unlocked := ss.stats.UnlockedTypes(ss.wave.Wave)
	if len(unlocked) == 0 {
		log.Printf("[Spawn] wave %d: no enemy types unlocked", ss.wave.Wave)
		return
	}

	p := ss.store.Player
	spawned := 0
	for i := 0; i < count; i++ {
		x, y, ok := ss.world.SampleSpawnPoint(ss.rng, config.SpawnMinDistance, p.X, p.Y)
		if !ok {
			continue
		}
		et := unlocked[ss.rng.Intn(len(unlocked))]
		stats, found := ss.stats.Get(et)
		if !found {
			continue
		}
		e := entities.NewEnemy(et, stats, ss.stats.BehaviorMode(et), x, y)
		ss.store.Enemies = append(ss.store.Enemies, e)
		ss.pool.SpawnSmokePuff(ss.rng, x, y)
		spawned++
	}
	log.Printf("[Spawn] wave %d: spawned %d/%d enemies", ss.wave.Wave, spawned, count)
}

// SeedPickups 在关卡开局散布若干拾取物
func (ss *SpawnSystem) SeedPickups(count int) {
	p := ss.store.Player
	for i := 0; i < count; i++ {
		x, y, ok := ss.world.SampleSpawnPoint(ss.rng, config.TileSize*2, p.X, p.Y)
		if !ok {
			continue
		}
		kind := types.PickupKind(ss.rng.Intn(3))
		ss.store.Pickups = append(ss.store.Pickups,
			entities.NewPickup(kind, x, y, ss.rng.Float64()*2*math.Pi))
	}
}
