package scenes

import (
	"testing"
	"time"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
)

func testLevelConfig() *config.LevelConfig {
	rows := []string{
		"111111111111",
		"100000000001",
		"100000000001",
		"100000000001",
		"100000000001",
		"100000000001",
		"100000000001",
		"111111111111",
	}
	return &config.LevelConfig{
		Name:  "holdout",
		Tiles: rows,
		Exits: []config.TileCoord{{X: 10, Y: 1}},
		Spawn: config.SpawnPose{X: 2, Y: 2},
	}
}

func testEnemyStats() *config.EnemyStatsConfig {
	return &config.EnemyStatsConfig{
		Enemies: map[string]config.EnemyStats{
			"zombie": {
				HP: 40, Speed: 55, Damage: 12,
				AttackRange: 30, AttackCooldown: 1.0, Radius: 14,
				Score: 10, UnlockWave: 1, Behavior: "melee",
			},
		},
	}
}

type recordedSnapshots struct {
	snaps []game.Snapshot
}

func newTestScene(t *testing.T) (*GameScene, *game.NullAudioService, *recordedSnapshots) {
	t.Helper()
	audio := &game.NullAudioService{}
	rec := &recordedSnapshots{}
	pub := game.NewSnapshotPublisher(func(s game.Snapshot) {
		rec.snaps = append(rec.snaps, s)
	})

	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("settings manager: %v", err)
	}

	s := NewGameScene(game.NewGameState(), sm, audio, pub, testEnemyStats(), config.DefaultPostFXConfig())
	s.levelSource = func(int) (*config.LevelConfig, error) { return testLevelConfig(), nil }
	s.levelCount = func() int { return 3 }
	if err := s.Load(0); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, audio, rec
}

func TestSceneLoadInitializesState(t *testing.T) {
	s, _, _ := newTestScene(t)

	if s.gs.Status != game.StatusReady {
		t.Errorf("expected StatusReady, got %v", s.gs.Status)
	}
	if s.gs.LevelName != "holdout" {
		t.Errorf("expected level name holdout, got %q", s.gs.LevelName)
	}
	if s.store.Player == nil {
		t.Fatal("player missing after load")
	}
	if len(s.store.Pickups) == 0 {
		t.Error("expected seeded pickups")
	}
}

func TestSceneStartBeginsRun(t *testing.T) {
	s, audio, rec := newTestScene(t)
	s.Start()

	if s.gs.Status != game.StatusRunning {
		t.Errorf("expected StatusRunning, got %v", s.gs.Status)
	}
	if !audio.MusicStarted {
		t.Error("music should start with the run")
	}
	if len(rec.snaps) == 0 {
		t.Fatal("start should force a snapshot")
	}
	if rec.snaps[0].Status != "running" {
		t.Errorf("snapshot status = %q, want running", rec.snaps[0].Status)
	}
}

func TestSceneStopIdempotent(t *testing.T) {
	s, audio, _ := newTestScene(t)
	s.Start()

	s.Stop()
	stops := audio.MusicStopCount
	s.Stop()
	s.Stop()

	if audio.MusicStopCount != stops {
		t.Errorf("repeated Stop must be a no-op, stop count went %d -> %d", stops, audio.MusicStopCount)
	}
}

func TestSceneUpdateAfterStopIsNoop(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()
	s.Stop()

	wave := s.spawner.Wave().Wave
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
	}
	if s.spawner.Wave().Wave != wave {
		t.Error("stopped scene must not advance simulation")
	}
}

func TestSceneDeltaTimeClamp(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()

	// 单次超长帧最多推进 MaxDeltaTime
	s.Update(5.0)

	if cd := s.spawner.Wave().Countdown; cd < config.WaveCountdown-config.MaxDeltaTime-1e-9 {
		t.Errorf("countdown advanced %.3f in one frame, clamp to %.3f", float64(config.WaveCountdown)-cd, float64(config.MaxDeltaTime))
	}
}

func TestSceneAnimationClockTracksDelta(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()

	s.Update(1.0 / 120)
	if s.lastDT != 1.0/120 {
		t.Errorf("animation delta %.5f, want %.5f", s.lastDT, 1.0/120)
	}

	// 超长帧按钳制后的值进动画时钟
	s.Update(5.0)
	if s.lastDT != config.MaxDeltaTime {
		t.Errorf("animation delta %.5f, want clamp %.5f", s.lastDT, float64(config.MaxDeltaTime))
	}
}

func TestScenePauseFreezesSimulation(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()
	s.gs.Paused = true

	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60)
	}

	if s.spawner.Wave().Wave != 0 {
		t.Errorf("paused scene spawned wave %d", s.spawner.Wave().Wave)
	}
}

func TestSceneWaveSpawnsAfterCountdown(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()

	frames := int(config.WaveCountdown*60) + 10
	for i := 0; i < frames; i++ {
		s.Update(1.0 / 60)
	}

	if s.spawner.Wave().Wave != 1 {
		t.Fatalf("expected wave 1 after countdown, got %d", s.spawner.Wave().Wave)
	}
	if got := s.store.LivingEnemyCount(); got != config.BaseEnemiesPerLevel+2 {
		t.Errorf("expected %d enemies, got %d", config.BaseEnemiesPerLevel+2, got)
	}
}

func TestSceneGameOverStopsSimulation(t *testing.T) {
	s, audio, _ := newTestScene(t)
	s.Start()
	s.store.Player.ApplyDamage(s.store.Player.Health)
	if !s.gs.TransitionGameOver() {
		t.Fatal("transition should succeed once")
	}
	audio.StopMusic()

	before := s.store.Player.Ammo
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if s.store.Player.Ammo != before {
		t.Error("dead player fired after game over")
	}
	if s.spawner.Wave().Wave != 0 {
		t.Error("waves must not advance after game over")
	}
}

func TestSceneRestartResetsRun(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()
	s.store.Player.Health = 10
	s.spawner.Wave().Score = 500

	if err := s.RestartLevel(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if s.gs.Status != game.StatusRunning {
		t.Errorf("expected StatusRunning after restart, got %v", s.gs.Status)
	}
	if s.store.Player.Health != s.store.Player.MaxHealth {
		t.Error("restart should reset player health")
	}
	if s.spawner.Wave().Score != 0 {
		t.Error("restart should reset score")
	}
}

func TestSceneNextLevelWraps(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()
	s.gs.LevelIndex = 2

	if err := s.NextLevel(); err != nil {
		t.Fatalf("next level: %v", err)
	}
	if s.gs.LevelIndex != 0 {
		t.Errorf("expected wrap to level 0, got %d", s.gs.LevelIndex)
	}
}

func TestSceneExitLingerAdvancesLevel(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()

	// 站上出口瓦片 (10,1)
	s.store.Player.X = 10*config.TileSize + config.TileSize/2
	s.store.Player.Y = 1*config.TileSize + config.TileSize/2

	frames := int(config.ExitLingerTime*60) + 5
	for i := 0; i < frames; i++ {
		s.Update(1.0 / 60)
	}
	if s.gs.LevelIndex != 1 {
		t.Errorf("expected level 1 after lingering on exit, got %d", s.gs.LevelIndex)
	}
}

func TestSceneUseKeySkipsExitLinger(t *testing.T) {
	s, audio, _ := newTestScene(t)
	s.Start()

	s.store.Player.X = 10*config.TileSize + config.TileSize/2
	s.store.Player.Y = 1*config.TileSize + config.TileSize/2

	s.input.InjectUse()
	s.Update(1.0 / 60)

	if s.gs.LevelIndex != 1 {
		t.Errorf("use key on exit should leave immediately, still on level %d", s.gs.LevelIndex)
	}
	if audio.UseCount == 0 {
		t.Error("leaving through the exit should play the use sound")
	}
}

func TestSceneSnapshotThrottled(t *testing.T) {
	s, _, rec := newTestScene(t)

	now := time.Unix(0, 0)
	s.publisher.SetClock(func() time.Time { return now })
	s.Start()
	base := len(rec.snaps)

	// 时钟不动，节流窗口内不再发布
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}
	if len(rec.snaps) != base {
		t.Errorf("expected no snapshots inside throttle window, got %d extra", len(rec.snaps)-base)
	}

	now = now.Add(config.SnapshotInterval + time.Millisecond)
	s.Update(1.0 / 60)
	if len(rec.snaps) != base+1 {
		t.Errorf("expected 1 snapshot after interval, got %d", len(rec.snaps)-base)
	}
}

func TestSceneDestroyThenUpdate(t *testing.T) {
	s, _, _ := newTestScene(t)
	s.Start()
	s.Destroy()

	// 销毁后更新不应崩溃
	s.Update(1.0 / 60)
}
