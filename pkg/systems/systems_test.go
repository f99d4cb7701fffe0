package systems

import (
	"math/rand"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/level"
)

// testWorld 16x12 的开阔试验场，四周围墙，(14,1) 为出口
func testWorld() *level.TileWorld {
	rows := []string{
		"1111111111111111",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1000000000000001",
		"1111111111111111",
	}
	cfg := &config.LevelConfig{
		Name:  "proving-grounds",
		Tiles: rows,
		Exits: []config.TileCoord{{X: 14, Y: 1}},
		Spawn: config.SpawnPose{X: 2, Y: 2},
	}
	return level.NewTileWorld(cfg)
}

func testStats() *config.EnemyStatsConfig {
	return &config.EnemyStatsConfig{
		Enemies: map[string]config.EnemyStats{
			"zombie": {
				HP: 40, Speed: 55, Damage: 12,
				AttackRange: 30, AttackCooldown: 1.0, Radius: 14,
				Score: 10, UnlockWave: 1, Behavior: "melee",
			},
			"shooter": {
				HP: 30, Speed: 70, Damage: 8,
				AttackRange: 280, AttackCooldown: 1.8, Radius: 13,
				Score: 30, UnlockWave: 2, Behavior: "ranged",
				KiteDistance: 160, BulletSpeed: 300,
			},
		},
	}
}

// testRig 为单个系统测试搭好共享依赖
type testRig struct {
	store *entities.Store
	world *level.TileWorld
	gs    *game.GameState
	pool  *effects.Pool
	audio *game.NullAudioService
	rng   *rand.Rand
}

func newTestRig() *testRig {
	world := testWorld()
	player := entities.NewPlayer(world.SpawnX, world.SpawnY, world.SpawnAngle)
	return &testRig{
		store: entities.NewStore(player),
		world: world,
		gs:    game.NewGameState(),
		pool:  effects.NewPool(),
		audio: &game.NullAudioService{},
		rng:   rand.New(rand.NewSource(7)),
	}
}
