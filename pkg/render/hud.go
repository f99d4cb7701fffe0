package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
)

// 小地图布局
const (
	minimapSize   = 120.0
	minimapMargin = 12.0
)

// HUDState 本帧 HUD 需要展示的快照数据
type HUDState struct {
	LevelName string
	Wave      int
	Score     int
	Kills     int
	Countdown float64
	FPS       float64
	Status    game.Status
	Paused    bool
	Muted     bool
}

// WaveLabel 波次标签
// 倒计时期间 Wave 还是上一波的序号，显示即将开始的那一波
func (s HUDState) WaveLabel() string {
	n := s.Wave
	if s.Countdown > 0 {
		n++
	}
	return fmt.Sprintf("WAVE %d", n)
}

// HUD draws all screen-space overlays: health and ammo readouts, wave
// banner, minimap, status text. It never applies the camera transform,
// so screen shake does not move it.
type HUD struct {
	patterns *PatternSet
	face     *text.GoTextFace
	big      *text.GoTextFace
}

// NewHUD 创建 HUD，加载内置字体
func NewHUD(patterns *PatternSet) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &HUD{
		patterns: patterns,
		face:     &text.GoTextFace{Source: src, Size: 14},
		big:      &text.GoTextFace{Source: src, Size: 36},
	}, nil
}

// Draw 绘制全部屏幕空间元素
func (h *HUD) Draw(screen *ebiten.Image, f Frame) {
	h.drawVitals(screen, f)
	h.drawWaveInfo(screen, f)
	h.drawMinimap(screen, f)
	h.drawStatus(screen, f)
}

// drawVitals 左下角：血条、弹药
func (h *HUD) drawVitals(screen *ebiten.Image, f Frame) {
	p := f.Store.Player
	const barW, barH = 180.0, 14.0
	x := 16.0
	y := float64(config.GameWindowHeight) - 48

	frac := 0.0
	if p.MaxHealth > 0 {
		frac = p.Health / p.MaxHealth
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), barW, barH, color.RGBA{0x20, 0x20, 0x24, 0xd0}, false)
	barColor := color.RGBA{0x40, 0xb0, 0x48, 0xff}
	if frac < 0.3 {
		barColor = color.RGBA{0xc0, 0x30, 0x30, 0xff}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*frac), barH, barColor, false)
	h.label(screen, fmt.Sprintf("%.0f / %.0f", p.Health, p.MaxHealth), x+4, y-1, color.White)

	h.label(screen, fmt.Sprintf("AMMO %d", p.Ammo), x, y+20, color.RGBA{0xd8, 0xb0, 0x30, 0xff})
}

// drawWaveInfo 左上角：关卡、波次、得分；波间显示倒计时
func (h *HUD) drawWaveInfo(screen *ebiten.Image, f Frame) {
	y := 14.0
	h.label(screen, f.HUD.LevelName, 16, y, color.RGBA{0xa0, 0xa8, 0xb0, 0xff})
	h.label(screen, f.HUD.WaveLabel(), 16, y+20, color.White)
	h.label(screen, fmt.Sprintf("SCORE %d   KILLS %d", f.HUD.Score, f.HUD.Kills), 16, y+40, color.White)
	h.label(screen, fmt.Sprintf("FPS %.0f", f.HUD.FPS), 16, y+60, color.RGBA{0x70, 0x78, 0x80, 0xff})

	if f.HUD.Countdown > 0 && f.HUD.Status == game.StatusRunning {
		msg := fmt.Sprintf("NEXT WAVE IN %.1f", f.HUD.Countdown)
		h.centered(screen, msg, h.face, float64(config.GameWindowHeight)*0.25, color.RGBA{0xd8, 0xd0, 0x90, 0xff})
	}
}

// drawMinimap 右上角：墙体轮廓、出口、敌人和玩家的点位
func (h *HUD) drawMinimap(screen *ebiten.Image, f Frame) {
	w := f.World
	originX := float64(config.GameWindowWidth) - minimapSize - minimapMargin
	originY := minimapMargin
	scaleX := minimapSize / w.PixelWidth()
	scaleY := minimapSize / w.PixelHeight()

	vector.DrawFilledRect(screen, float32(originX), float32(originY), minimapSize, minimapSize, color.RGBA{0x10, 0x10, 0x14, 0xb0}, false)

	cellW := float32(config.TileSize * scaleX)
	cellH := float32(config.TileSize * scaleY)
	for ty := 0; ty < w.Height; ty++ {
		for tx := 0; tx < w.Width; tx++ {
			if w.TileAt(tx, ty) == 0 {
				continue
			}
			x := float32(originX + float64(tx)*config.TileSize*scaleX)
			y := float32(originY + float64(ty)*config.TileSize*scaleY)
			vector.DrawFilledRect(screen, x, y, cellW, cellH, color.RGBA{0x48, 0x48, 0x50, 0xff}, false)
		}
	}
	for _, exit := range w.Exits() {
		x := float32(originX + float64(exit.X)*config.TileSize*scaleX)
		y := float32(originY + float64(exit.Y)*config.TileSize*scaleY)
		vector.DrawFilledRect(screen, x, y, cellW, cellH, color.RGBA{0x40, 0xc0, 0x50, 0xff}, false)
	}

	for _, e := range f.Store.Enemies {
		if !e.Alive {
			continue
		}
		vector.DrawFilledCircle(screen, float32(originX+e.X*scaleX), float32(originY+e.Y*scaleY), 2, color.RGBA{0xc0, 0x40, 0x40, 0xff}, false)
	}
	p := f.Store.Player
	vector.DrawFilledCircle(screen, float32(originX+p.X*scaleX), float32(originY+p.Y*scaleY), 2.5, color.RGBA{0x80, 0xc0, 0xff, 0xff}, false)
}

// drawStatus 居中横幅：暂停、游戏结束、静音角标
func (h *HUD) drawStatus(screen *ebiten.Image, f Frame) {
	switch {
	case f.HUD.Status == game.StatusGameOver:
		h.centered(screen, "YOU DIED", h.big, float64(config.GameWindowHeight)/2-40, color.RGBA{0xc0, 0x28, 0x28, 0xff})
		h.centered(screen, fmt.Sprintf("FINAL SCORE %d", f.HUD.Score), h.face, float64(config.GameWindowHeight)/2+8, color.White)
		h.centered(screen, "PRESS R TO RESTART", h.face, float64(config.GameWindowHeight)/2+32, color.RGBA{0x90, 0x98, 0xa0, 0xff})
	case f.HUD.Paused:
		h.centered(screen, "PAUSED", h.big, float64(config.GameWindowHeight)/2-40, color.White)
	}

	if f.HUD.Muted {
		h.label(screen, "MUTED", float64(config.GameWindowWidth)-70, float64(config.GameWindowHeight)-24, color.RGBA{0x90, 0x98, 0xa0, 0xff})
	}
}

func (h *HUD) label(screen *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, msg, h.face, op)

	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(x, y)
	op2.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, h.face, op2)
}

func (h *HUD) centered(screen *ebiten.Image, msg string, face *text.GoTextFace, y float64, clr color.Color) {
	w, _ := text.Measure(msg, face, 0)
	x := (float64(config.GameWindowWidth) - w) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+2, y+2)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, msg, face, op)

	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(x, y)
	op2.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, op2)
}
