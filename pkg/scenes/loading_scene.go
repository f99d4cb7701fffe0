package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/utils"
)

// 加载进度条布局
const (
	loadingBarWidth  = 360.0
	loadingBarHeight = 16.0
)

// LoadingScene 开屏加载：后台协程解析配置，前台画进度条
// 全部就绪后构建战斗场景并切换
type LoadingScene struct {
	sceneManager *game.SceneManager
	gs           *game.GameState
	settings     *game.SettingsManager
	audio        game.AudioService
	publisher    *game.SnapshotPublisher

	startLevel int

	// progress 千分比，由加载协程原子写入
	progress atomic.Int64
	// shownProgress 进度条的显示值，向目标缓出逼近
	shownProgress float64
	loadErr  atomic.Value
	done     atomic.Bool
	launched bool

	stats    *config.EnemyStatsConfig
	fxConfig *config.PostFXConfig

	elapsed float64
}

// NewLoadingScene 创建加载场景
func NewLoadingScene(sceneManager *game.SceneManager, gs *game.GameState, settings *game.SettingsManager, audio game.AudioService, publisher *game.SnapshotPublisher, startLevel int) *LoadingScene {
	return &LoadingScene{
		sceneManager: sceneManager,
		gs:           gs,
		settings:     settings,
		audio:        audio,
		publisher:    publisher,
		startLevel:   startLevel,
	}
}

// Update 驱动加载流程；完成后切换到战斗场景
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	target := float64(s.progress.Load()) / 1000
	s.shownProgress = utils.Lerp(s.shownProgress, target, utils.Clamp01(deltaTime*8))
	if !s.launched {
		s.launched = true
		s.gs.Status = game.StatusLoading
		go s.loadAll()
	}

	if !s.done.Load() {
		return
	}
	if err, ok := s.loadErr.Load().(error); ok && err != nil {
		// 配置损坏无法继续，保持在加载画面报错
		return
	}

	gameScene := NewGameScene(s.gs, s.settings, s.audio, s.publisher, s.stats, s.fxConfig)
	if err := gameScene.Load(s.startLevel); err != nil {
		s.loadErr.Store(err)
		return
	}
	s.sceneManager.SwitchTo(gameScene)
	gameScene.Start()
}

// loadAll 后台解析全部嵌入配置
func (s *LoadingScene) loadAll() {
	defer s.done.Store(true)

	stats, err := config.LoadEnemyStats("data/enemy_stats.yaml")
	if err != nil {
		s.loadErr.Store(fmt.Errorf("enemy stats: %w", err))
		return
	}
	s.stats = stats
	s.progress.Store(400)

	fx, err := config.LoadPostFXConfig("data/postfx.yaml")
	if err != nil {
		// 后期处理配置缺失可降级到默认值
		log.Printf("[Loading] postfx config fallback: %v", err)
		fx = config.DefaultPostFXConfig()
	}
	s.fxConfig = fx
	s.progress.Store(700)

	// 预检全部关卡，损坏的关卡在启动时即暴露
	for i := 0; i < config.LevelCount(); i++ {
		if _, err := config.LoadLevelConfig(i); err != nil {
			s.loadErr.Store(fmt.Errorf("level %d: %w", i, err))
			return
		}
	}
	s.progress.Store(1000)
}

// Draw 绘制进度条
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0c, 0x0c, 0x10, 0xff})

	x := (float64(config.GameWindowWidth) - loadingBarWidth) / 2
	y := float64(config.GameWindowHeight) * 0.55
	frac := s.shownProgress

	vector.StrokeRect(screen, float32(x)-2, float32(y)-2, loadingBarWidth+4, loadingBarHeight+4, 1, color.RGBA{0x50, 0x50, 0x58, 0xff}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(loadingBarWidth*frac), loadingBarHeight, color.RGBA{0x70, 0x18, 0x18, 0xff}, false)

	msg := "LOADING..."
	if err, ok := s.loadErr.Load().(error); ok && err != nil {
		msg = fmt.Sprintf("LOAD FAILED: %v", err)
	}
	ebitenutil.DebugPrintAt(screen, msg, int(x), int(y)-24)
}
