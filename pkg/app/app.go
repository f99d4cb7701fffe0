// Package app 提供游戏应用的核心包装器
//
// 该包把引擎初始化从 main 包提取出来：创建共享状态、音频、
// 设置持久化和场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 起始关卡序号（从 0 计）
	Level int
	// Snapshot 对外状态快照的接收器，可为 nil
	Snapshot game.SnapshotListener
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState
	settings     *game.SettingsManager
	audioManager game.AudioService
	verbose      bool

	// 上一帧时间戳，帧间隔按真实流逝测量
	lastTick time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	// Layout 记录的外部尺寸，变化时通知场景
	lastOutsideW int
	lastOutsideH int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 设置持久化，gdata 不可用时降级为内存模式
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "deadzone"}); err == nil {
		gdataManager = m
	} else {
		log.Printf("[App] gdata unavailable, settings will not persist: %v", err)
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] settings load failed, using defaults: %v", err)
	}

	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)

	gameState := game.NewGameState()
	publisher := game.NewSnapshotPublisher(cfg.Snapshot)
	sceneManager := game.NewSceneManager()

	startLevel := cfg.Level
	if startLevel < 0 || startLevel >= config.LevelCount() {
		startLevel = 0
	}

	loadingScene := scenes.NewLoadingScene(sceneManager, gameState, settingsManager, audioManager, publisher, startLevel)
	sceneManager.SwitchTo(loadingScene)

	log.Printf("[App] starting at level %d", startLevel)

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		settings:     settingsManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 帧间隔按墙钟测量并在场景内钳制，浏览器标签页挂起后不会跳变
func (a *App) Update() error {
	now := time.Now()
	deltaTime := 1.0 / 60.0
	if !a.lastTick.IsZero() {
		deltaTime = now.Sub(a.lastTick).Seconds()
	}
	a.lastTick = now

	// 浏览器要求用户手势后才能出声，首次输入时解锁
	if !a.audioManager.IsUnlocked() && anyUserGesture() {
		a.audioManager.Unlock()
		a.audioManager.StartMusic()
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] settings save failed: %v", err)
		}
	}

	a.gameState.FPS = ebiten.ActualFPS()
	a.sceneManager.Update(deltaTime)
	return nil
}

// anyUserGesture 检测任意会解锁音频的输入
func anyUserGesture() bool {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	if a.verbose {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
// 外部尺寸变化时通知当前场景重建尺寸相关缓冲
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.lastOutsideW || outsideHeight != a.lastOutsideH {
		a.lastOutsideW, a.lastOutsideH = outsideWidth, outsideHeight
		a.sceneManager.Resize(config.GameWindowWidth, config.GameWindowHeight)
	}
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
