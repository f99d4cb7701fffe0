// Package scenes 包含游戏的两个场景：资源加载和主战斗循环
package scenes

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/level"
	"github.com/gonewx/deadzone/pkg/render"
	"github.com/gonewx/deadzone/pkg/systems"
)

// GameScene 主战斗场景：持有单局的全部模拟状态并驱动系统管线
// 每帧系统按固定顺序执行：输入、玩家、敌人、战斗、特效、刷怪、相机；
// 帧末一次性移除死亡实体，渲染只读取状态
type GameScene struct {
	gs        *game.GameState
	settings  *game.SettingsManager
	audio     game.AudioService
	publisher *game.SnapshotPublisher
	stats     *config.EnemyStatsConfig
	fxConfig  *config.PostFXConfig

	world *level.TileWorld
	store *entities.Store
	pool  *effects.Pool
	rng   *rand.Rand

	input   *systems.InputSystem
	player  *systems.PlayerSystem
	enemies *systems.EnemySystem
	combat  *systems.CombatSystem
	spawner *systems.SpawnSystem
	camera  *systems.CameraSystem

	// pipeline 延迟到首次 Draw 创建，模拟更新不触碰图形资源
	pipeline *render.Pipeline

	elapsed    float64
	lastDT     float64
	started    bool
	stopped    bool
	exitLinger float64

	// 关卡来源，测试里替换为内存配置
	levelSource func(int) (*config.LevelConfig, error)
	levelCount  func() int
}

// NewGameScene 创建战斗场景；还需调用 Load 和 Start 才可更新
func NewGameScene(gs *game.GameState, settings *game.SettingsManager, audio game.AudioService, publisher *game.SnapshotPublisher, stats *config.EnemyStatsConfig, fxConfig *config.PostFXConfig) *GameScene {
	return &GameScene{
		gs:          gs,
		settings:    settings,
		audio:       audio,
		publisher:   publisher,
		stats:       stats,
		fxConfig:    fxConfig,
		rng:         rand.New(rand.NewSource(1)),
		levelSource: config.LoadLevelConfig,
		levelCount:  config.LevelCount,
	}
}

// SetRandomSeed 重设随机源，用于可重复的模拟
func (s *GameScene) SetRandomSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Load 装载指定关卡并重建全部模拟状态
// 可以在任意时刻重复调用，原地复位本局
func (s *GameScene) Load(levelIndex int) error {
	cfg, err := s.levelSource(levelIndex)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", levelIndex, err)
	}

	s.world = level.NewTileWorld(cfg)
	player := entities.NewPlayer(s.world.SpawnX, s.world.SpawnY, s.world.SpawnAngle)
	if s.store == nil {
		s.store = entities.NewStore(player)
	} else {
		s.store.Reset(player)
	}
	if s.pool == nil {
		s.pool = effects.NewPool()
	} else {
		s.pool.Clear()
	}

	difficulty := s.settings.GetSettings().Difficulty
	s.input = systems.NewInputSystem()
	s.player = systems.NewPlayerSystem(s.store, s.world, s.gs, s.pool, s.audio, s.rng)
	s.enemies = systems.NewEnemySystem(s.store, s.world, s.gs, s.pool, s.audio, s.rng, difficulty)
	s.spawner = systems.NewSpawnSystem(s.store, s.world, s.stats, s.pool, s.rng, levelIndex)
	s.combat = systems.NewCombatSystem(s.store, s.world, s.gs, s.spawner.Wave(), s.pool, s.audio, s.rng)
	s.camera = systems.NewCameraSystem(s.store, s.world, s.gs)

	s.spawner.SeedPickups(config.LevelStartPickups)

	s.gs.Status = game.StatusReady
	s.gs.LevelIndex = levelIndex
	s.gs.LevelName = cfg.Name
	s.gs.Paused = false
	s.elapsed = 0
	s.lastDT = 1.0 / 60
	s.exitLinger = 0
	s.stopped = false

	// 换关后瓦片贴图按关卡序号重新生成
	s.pipeline = nil

	log.Printf("[Scene] loaded level %d (%s), %dx%d tiles", levelIndex, cfg.Name, s.world.Width, s.world.Height)
	return nil
}

// Start 开始本局：进入 Running 并起播背景音乐
func (s *GameScene) Start() {
	if s.started && s.gs.Status == game.StatusRunning {
		return
	}
	s.started = true
	s.stopped = false
	s.gs.Status = game.StatusRunning
	s.audio.StartMusic()
	s.publishSnapshot(true)
}

// Stop 停止本局，幂等
func (s *GameScene) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.audio.StopMusic()
	s.publishSnapshot(true)
}

// Destroy 释放本局资源；之后场景不可再更新
func (s *GameScene) Destroy() {
	s.Stop()
	s.pipeline = nil
	s.world = nil
	s.started = false
}

// RestartLevel 原地重开当前关
func (s *GameScene) RestartLevel() error {
	idx := s.gs.LevelIndex
	s.gs.Status = game.StatusLoading
	if err := s.Load(idx); err != nil {
		return err
	}
	s.Start()
	return nil
}

// NextLevel 切换到下一关，关卡序号循环
func (s *GameScene) NextLevel() error {
	count := s.levelCount()
	if count == 0 {
		return fmt.Errorf("no levels available")
	}
	next := (s.gs.LevelIndex + 1) % count
	s.gs.Status = game.StatusLoading
	if err := s.Load(next); err != nil {
		return err
	}
	s.Start()
	return nil
}

// Update 推进一帧
// deltaTime 上限防御钳制，掉帧时模拟减速而不是跳变
func (s *GameScene) Update(deltaTime float64) {
	if s.world == nil || s.stopped {
		return
	}
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	// 渲染动画时钟跟随钳制后的帧间隔，暂停时沿用最后一帧的值
	s.lastDT = dt

	s.input.Update(dt)
	s.handleToggles()

	if s.gs.Status == game.StatusGameOver {
		// 结束画面继续走特效和相机，世界静止
		s.pool.Update(dt)
		s.camera.Update(dt)
		restart := inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		if restart {
			if err := s.RestartLevel(); err != nil {
				log.Printf("[Scene] restart failed: %v", err)
			}
		}
		s.publishSnapshot(false)
		return
	}
	if s.gs.Status != game.StatusRunning || s.gs.Paused {
		return
	}

	s.elapsed += dt
	s.aimPlayer()

	s.player.Update(dt, s.input.State())
	s.enemies.Update(dt)
	s.combat.Update(dt)
	s.pool.Update(dt)
	s.spawner.Update(dt)
	s.camera.Update(dt)

	s.store.Compact()
	s.checkExit(dt)
	s.publishSnapshot(false)
}

// handleToggles 静音和暂停的边沿触发开关
func (s *GameScene) handleToggles() {
	if s.input.MuteToggled {
		s.audio.ToggleMute()
	}
	if s.input.PauseToggled && s.gs.Status == game.StatusRunning {
		s.gs.Paused = !s.gs.Paused
		s.publishSnapshot(true)
	}
}

// aimPlayer 把指针或触摸瞄准换算到世界坐标交给玩家系统
func (s *GameScene) aimPlayer() {
	v := render.NewView(s.gs.CameraX, s.gs.CameraY, 0, 0)
	in := s.input.State()
	if in.AimActive {
		s.player.AimWorldX, s.player.AimWorldY = v.ScreenToWorld(in.AimX, in.AimY)
	} else {
		s.player.AimWorldX, s.player.AimWorldY = v.ScreenToWorld(in.PointerX, in.PointerY)
	}
	s.player.AimValid = true
}

// checkExit 玩家在出口瓦片上停留片刻后进下一关
// 按使用键可跳过停留立即离开
func (s *GameScene) checkExit(dt float64) {
	p := s.store.Player
	if !s.world.IsExit(p.X, p.Y) {
		s.exitLinger = 0
		return
	}
	s.exitLinger += dt
	if s.input.UsePressed {
		s.exitLinger = config.ExitLingerTime
		s.audio.PlayUse()
	}
	if s.exitLinger < config.ExitLingerTime {
		return
	}
	log.Printf("[Scene] level %d complete, score %d", s.gs.LevelIndex, s.spawner.Wave().Score)
	if err := s.NextLevel(); err != nil {
		log.Printf("[Scene] next level failed: %v", err)
	}
}

// publishSnapshot 发布节流后的对外状态快照
func (s *GameScene) publishSnapshot(force bool) {
	if s.publisher == nil {
		return
	}
	wave := s.spawner.Wave()
	s.publisher.Publish(game.Snapshot{
		LevelIndex:    s.gs.LevelIndex,
		LevelName:     s.gs.LevelName,
		Health:        int(math.Round(s.store.Player.Health)),
		Ammo:          s.store.Player.Ammo,
		Kills:         wave.Kills,
		FPS:           s.gs.FPS,
		SoundUnlocked: s.audio.IsUnlocked(),
		Muted:         s.audio.IsMuted(),
		Status:        s.gs.Status.String(),
		Wave:          wave.Wave,
		Score:         wave.Score,
	}, force)
}

// Resize 丢弃渲染管线，下一次 Draw 前按新视口重建
func (s *GameScene) Resize(width, height int) {
	s.pipeline = nil
}

// Draw 渲染本帧；渲染管线首次使用时创建
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.world == nil {
		return
	}
	if s.pipeline == nil {
		pl, err := render.NewPipeline(int64(s.gs.LevelIndex)+1, s.fxConfig)
		if err != nil {
			log.Printf("[Scene] pipeline init failed: %v", err)
			return
		}
		s.pipeline = pl
	}

	wave := s.spawner.Wave()
	countdown := 0.0
	if !wave.InProgress {
		countdown = wave.Countdown
	}
	s.pipeline.Draw(screen, render.Frame{
		World: s.world,
		Store: s.store,
		Pool:  s.pool,
		View:  render.NewView(s.gs.CameraX, s.gs.CameraY, s.gs.ShakeTrauma, s.elapsed),
		HUD: render.HUDState{
			LevelName: s.gs.LevelName,
			Wave:      wave.Wave,
			Score:     wave.Score,
			Kills:     wave.Kills,
			Countdown: countdown,
			FPS:       s.gs.FPS,
			Status:    s.gs.Status,
			Paused:    s.gs.Paused,
			Muted:     s.audio.IsMuted(),
		},
	}, s.lastDT)
}
