package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/gonewx/deadzone/pkg/config"
)

// bloomScale 泛光降采样倍率
const bloomScale = 4

// PostFX runs the stylized post-processing chain over the lit scene:
// color grading, bloom, chromatic aberration, drifting fog, film grain
// and the vignette. Channels toggle independently from postfx.yaml.
type PostFX struct {
	patterns *PatternSet
	cfg      *config.PostFXConfig

	// graded holds the scene after color grading, the source for the
	// following channels.
	graded *ebiten.Image
	// bloomA/bloomB are low-res ping-pong buffers for the blur.
	bloomA *ebiten.Image
	bloomB *ebiten.Image
}

// NewPostFX 创建后期处理链
func NewPostFX(patterns *PatternSet, cfg *config.PostFXConfig) *PostFX {
	if cfg == nil {
		cfg = config.DefaultPostFXConfig()
	}
	return &PostFX{patterns: patterns, cfg: cfg}
}

// Apply 把处理结果写入 screen
func (fx *PostFX) Apply(screen, scene *ebiten.Image, view View, elapsed float64) {
	fx.ensureBuffers()

	src := scene
	if fx.cfg.Grading.Enabled {
		fx.graded.Clear()
		op := &colorm.DrawImageOptions{}
		colorm.DrawImage(fx.graded, src, fx.gradingMatrix(), op)
		src = fx.graded
	}

	base := shakeGeoM(view)
	if fx.cfg.ChromaticAberration.Enabled {
		fx.drawAberrated(screen, src, base)
	} else {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = base
		screen.DrawImage(src, op)
	}

	if fx.cfg.Bloom.Enabled {
		fx.drawBloom(screen, src, base)
	}
	if fx.cfg.Fog.Enabled {
		fx.drawFog(screen, elapsed)
	}
	if fx.cfg.Grain.Enabled {
		fx.drawGrain(screen, elapsed)
	}
	if fx.cfg.Vignette.Enabled {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(fx.cfg.Vignette.Strength))
		screen.DrawImage(fx.patterns.Vignette, op)
	}
}

func (fx *PostFX) ensureBuffers() {
	if fx.graded != nil {
		return
	}
	fx.graded = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	fx.bloomA = ebiten.NewImage(config.GameWindowWidth/bloomScale, config.GameWindowHeight/bloomScale)
	fx.bloomB = ebiten.NewImage(config.GameWindowWidth/bloomScale, config.GameWindowHeight/bloomScale)
}

// gradingMatrix 对比度和饱和度的合成颜色矩阵
func (fx *PostFX) gradingMatrix() colorm.ColorM {
	var m colorm.ColorM

	// 饱和度：向亮度灰轴插值
	s := fx.cfg.Grading.Saturation
	const lr, lg, lb = 0.2126, 0.7152, 0.0722
	m.SetElement(0, 0, lr*(1-s)+s)
	m.SetElement(0, 1, lg*(1-s))
	m.SetElement(0, 2, lb*(1-s))
	m.SetElement(1, 0, lr*(1-s))
	m.SetElement(1, 1, lg*(1-s)+s)
	m.SetElement(1, 2, lb*(1-s))
	m.SetElement(2, 0, lr*(1-s))
	m.SetElement(2, 1, lg*(1-s))
	m.SetElement(2, 2, lb*(1-s))

	// 对比度：围绕中灰缩放
	c := fx.cfg.Grading.Contrast
	m.Scale(c, c, c, 1)
	m.Translate(0.5*(1-c), 0.5*(1-c), 0.5*(1-c), 0)
	return m
}

// shakeGeoM 围绕屏幕中心施加震动的微小旋转
func shakeGeoM(view View) ebiten.GeoM {
	var g ebiten.GeoM
	if view.ShakeRot != 0 {
		cx := float64(config.GameWindowWidth) / 2
		cy := float64(config.GameWindowHeight) / 2
		g.Translate(-cx, -cy)
		g.Rotate(view.ShakeRot)
		g.Translate(cx, cy)
	}
	return g
}

// drawAberrated 三次通道隔离绘制，红蓝沿水平方向错位
func (fx *PostFX) drawAberrated(screen, src *ebiten.Image, base ebiten.GeoM) {
	off := fx.cfg.ChromaticAberration.Offset

	opG := &ebiten.DrawImageOptions{}
	opG.GeoM = base
	opG.ColorScale.Scale(0, 1, 0, 1)
	screen.DrawImage(src, opG)

	opR := &ebiten.DrawImageOptions{}
	opR.GeoM.Translate(-off, 0)
	opR.GeoM.Concat(base)
	opR.ColorScale.Scale(1, 0, 0, 0)
	opR.Blend = ebiten.BlendLighter
	screen.DrawImage(src, opR)

	opB := &ebiten.DrawImageOptions{}
	opB.GeoM.Translate(off, 0)
	opB.GeoM.Concat(base)
	opB.ColorScale.Scale(0, 0, 1, 0)
	opB.Blend = ebiten.BlendLighter
	screen.DrawImage(src, opB)
}

// drawBloom 降采样提亮部，来回缩放模糊后加性叠回
func (fx *PostFX) drawBloom(screen, src *ebiten.Image, base ebiten.GeoM) {
	fx.bloomA.Clear()
	fx.bloomB.Clear()

	// 降采样并用阈值平移滤出亮部
	th := fx.cfg.Bloom.Threshold
	down := &ebiten.DrawImageOptions{}
	down.GeoM.Scale(1.0/bloomScale, 1.0/bloomScale)
	down.Filter = ebiten.FilterLinear
	down.ColorM.Translate(float64(-th), float64(-th), float64(-th), 0)
	fx.bloomA.DrawImage(src, down)

	// 两次轻微错位叠加近似模糊
	for i := 0; i < 2; i++ {
		fx.bloomB.Clear()
		for _, d := range [4][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(d[0], d[1])
			op.Filter = ebiten.FilterLinear
			op.ColorScale.ScaleAlpha(0.25)
			op.Blend = ebiten.BlendLighter
			fx.bloomB.DrawImage(fx.bloomA, op)
		}
		fx.bloomA, fx.bloomB = fx.bloomB, fx.bloomA
	}

	up := &ebiten.DrawImageOptions{}
	up.GeoM.Scale(bloomScale, bloomScale)
	up.GeoM.Concat(base)
	up.Filter = ebiten.FilterLinear
	up.ColorScale.ScaleAlpha(float32(fx.cfg.Bloom.Strength))
	up.Blend = ebiten.BlendLighter
	screen.DrawImage(fx.bloomA, up)
}

// drawFog 两层噪声反向漂移，叠出流动的雾
func (fx *PostFX) drawFog(screen *ebiten.Image, elapsed float64) {
	noise := fx.patterns.Noise
	nw := float64(noise.Bounds().Dx())
	drift := fx.cfg.Fog.DriftSpeed * elapsed
	alpha := float32(fx.cfg.Fog.Strength * 0.5)

	for layer := 0; layer < 2; layer++ {
		speed := drift
		if layer == 1 {
			speed = -drift * 0.6
		}
		offX := math.Mod(speed, nw)
		if offX < 0 {
			offX += nw
		}
		scale := 3.0 + float64(layer)
		for x := -nw * scale; x < config.GameWindowWidth+nw*scale; x += nw * scale {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x+offX*scale, 0)
			op.Filter = ebiten.FilterLinear
			op.ColorScale.Scale(0.5, 0.52, 0.55, 1)
			op.ColorScale.ScaleAlpha(alpha)
			screen.DrawImage(noise, op)
		}
	}
}

// drawGrain 平铺噪声，偏移逐帧跳动
func (fx *PostFX) drawGrain(screen *ebiten.Image, elapsed float64) {
	noise := fx.patterns.Noise
	nw := noise.Bounds().Dx()
	jx := int(math.Mod(elapsed*613, float64(nw)))
	jy := int(math.Mod(elapsed*389, float64(nw)))
	alpha := float32(fx.cfg.Grain.Strength)

	for y := -jy; y < config.GameWindowHeight; y += nw {
		for x := -jx; x < config.GameWindowWidth; x += nw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleAlpha(alpha)
			op.Blend = ebiten.BlendLighter
			screen.DrawImage(noise, op)
		}
	}
}
