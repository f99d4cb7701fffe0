package systems

import (
	"math"
	"testing"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/types"
)

func newSpawnSystem(rig *testRig, levelIndex int) *SpawnSystem {
	return NewSpawnSystem(rig.store, rig.world, testStats(), rig.pool, rig.rng, levelIndex)
}

// 让倒计时走完并触发下一波
func runCountdown(ss *SpawnSystem) {
	for i := 0; i < 240 && !ss.Wave().InProgress; i++ {
		ss.Update(1.0 / 60)
	}
}

func TestFirstWaveCountdown(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)

	// 倒计时未走完时不生成
	ss.Update(config.WaveCountdown / 2)
	if len(rig.store.Enemies) != 0 {
		t.Fatalf("no enemies expected during countdown, got %d", len(rig.store.Enemies))
	}

	ss.Update(config.WaveCountdown)
	if ss.Wave().Wave != 1 {
		t.Fatalf("expected wave 1, got %d", ss.Wave().Wave)
	}
	if !ss.Wave().InProgress {
		t.Error("wave should be in progress after spawn")
	}
}

func TestWaveEnemyCount(t *testing.T) {
	cases := []struct {
		levelIndex int
		wave       int
		want       int
	}{
		{0, 1, config.BaseEnemiesPerLevel + 2},
		{0, 2, config.BaseEnemiesPerLevel + 4},
		{1, 1, config.BaseEnemiesPerLevel + config.EnemiesPerLevelStep + 2},
	}
	for _, tc := range cases {
		rig := newTestRig()
		ss := newSpawnSystem(rig, tc.levelIndex)
		for ss.Wave().Wave < tc.wave {
			// 清场让波次推进
			for _, e := range rig.store.Enemies {
				e.Alive = false
			}
			ss.Update(1.0 / 60)
			runCountdown(ss)
		}
		alive := rig.store.LivingEnemyCount()
		if alive != tc.want {
			t.Errorf("level %d wave %d: expected %d enemies, got %d", tc.levelIndex, tc.wave, tc.want, alive)
		}
	}
}

func TestWaveAdvancesAfterClear(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)
	runCountdown(ss)
	if ss.Wave().Wave != 1 {
		t.Fatalf("expected wave 1, got %d", ss.Wave().Wave)
	}

	// 清场后回到倒计时
	for _, e := range rig.store.Enemies {
		e.Alive = false
	}
	ss.Update(1.0 / 60)
	if ss.Wave().InProgress {
		t.Fatal("cleared wave should end")
	}
	if ss.Wave().Countdown != config.WaveCountdown {
		t.Errorf("countdown should reset to %.1f, got %.1f", float64(config.WaveCountdown), ss.Wave().Countdown)
	}

	runCountdown(ss)
	if ss.Wave().Wave != 2 {
		t.Errorf("expected wave 2, got %d", ss.Wave().Wave)
	}
}

func TestWaveWaitsWhileEnemiesAlive(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)
	runCountdown(ss)
	count := rig.store.LivingEnemyCount()

	for i := 0; i < 600; i++ {
		ss.Update(1.0 / 60)
	}

	if ss.Wave().Wave != 1 {
		t.Errorf("wave must not advance while enemies live, got wave %d", ss.Wave().Wave)
	}
	if rig.store.LivingEnemyCount() != count {
		t.Error("no extra spawns while wave in progress")
	}
}

func TestSpawnRespectsMinDistance(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)
	runCountdown(ss)

	p := rig.store.Player
	for _, e := range rig.store.Enemies {
		if d := math.Hypot(e.X-p.X, e.Y-p.Y); d <= config.SpawnMinDistance {
			t.Errorf("enemy spawned at dist %.1f, min %d", d, int(config.SpawnMinDistance))
		}
		if rig.world.IsWall(e.X, e.Y) {
			t.Errorf("enemy spawned inside wall at (%.0f, %.0f)", e.X, e.Y)
		}
	}
}

func TestUnlockGatesEnemyTypes(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)
	runCountdown(ss)

	// testStats 里 shooter 第 2 波才解锁
	for _, e := range rig.store.Enemies {
		if e.Type == types.EnemyShooter {
			t.Fatal("shooter must not appear in wave 1")
		}
	}
}

func TestSeedPickups(t *testing.T) {
	rig := newTestRig()
	ss := newSpawnSystem(rig, 0)

	ss.SeedPickups(config.LevelStartPickups)

	if len(rig.store.Pickups) == 0 {
		t.Fatal("expected seeded pickups")
	}
	for _, pk := range rig.store.Pickups {
		if rig.world.IsWall(pk.X, pk.Y) {
			t.Errorf("pickup seeded inside wall at (%.0f, %.0f)", pk.X, pk.Y)
		}
	}
}
