package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/entities"
)

// blendMultiply 把光照图逐像素乘到场景上
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Lighting accumulates an additive lightmap each frame and multiplies
// it onto the scene: a dim ambient base, the player's flashlight cone,
// and every transient light in the effects pool.
type Lighting struct {
	patterns *PatternSet
	lightmap *ebiten.Image
}

// NewLighting 创建光照合成器
func NewLighting(patterns *PatternSet) *Lighting {
	return &Lighting{patterns: patterns}
}

// Apply 合成本帧光照并乘到 scene 上
func (l *Lighting) Apply(scene *ebiten.Image, f Frame) {
	if l.lightmap == nil {
		l.lightmap = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	}
	// 环境底光，避免无光区域全黑
	l.lightmap.Fill(color.RGBA{0x30, 0x30, 0x38, 0xff})

	l.drawFlashlight(f)
	l.drawPoolLights(f)
	l.drawGlows(f)

	op := &ebiten.DrawImageOptions{}
	op.Blend = blendMultiply
	scene.DrawImage(l.lightmap, op)
}

// drawFlashlight 玩家手电：锥形主光束加一圈近身光晕
func (l *Lighting) drawFlashlight(f Frame) {
	p := f.Store.Player
	sx, sy := f.View.WorldToScreen(p.X, p.Y)

	cone := l.patterns.Cone
	ch := cone.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -float64(ch)/2)
	op.GeoM.Rotate(p.Angle)
	op.GeoM.Translate(sx, sy)
	op.Blend = ebiten.BlendLighter
	op.ColorScale.Scale(0.95, 0.92, 0.82, 1)
	l.lightmap.DrawImage(cone, op)

	l.addGlow(sx, sy, 90, 0.45, 0.9, 0.88, 0.8)
}

// drawPoolLights 效果池里的瞬时光源
func (l *Lighting) drawPoolLights(f Frame) {
	for _, light := range f.Pool.Lights {
		in := light.CurrentIntensity()
		if in <= 0 {
			continue
		}
		sx, sy := f.View.WorldToScreen(light.X, light.Y)
		l.addGlow(sx, sy, light.Radius, in, light.R, light.G, light.B)
	}
}

// glowSpec 一个自发光体，世界坐标
type glowSpec struct {
	x, y      float64
	radius    float64
	intensity float64
	r, g, b   float64
}

// glowSources 枚举本帧的自发光体：未拾取的道具和存活的敌人
// 敌人光晕很弱，只保证光束外的目标不至于全黑
func glowSources(store *entities.Store) []glowSpec {
	specs := make([]glowSpec, 0, len(store.Pickups)+len(store.Enemies))
	for _, pk := range store.Pickups {
		if pk.Collected {
			continue
		}
		specs = append(specs, glowSpec{x: pk.X, y: pk.Y, radius: 36, intensity: 0.35, r: 0.8, g: 0.8, b: 0.7})
	}
	for _, e := range store.Enemies {
		if !e.Alive {
			continue
		}
		specs = append(specs, glowSpec{x: e.X, y: e.Y, radius: e.Radius * 2.5, intensity: 0.18, r: 0.75, g: 0.85, b: 0.75})
	}
	return specs
}

// drawGlows 道具和敌人的自发光
func (l *Lighting) drawGlows(f Frame) {
	for _, g := range glowSources(f.Store) {
		sx, sy := f.View.WorldToScreen(g.x, g.y)
		l.addGlow(sx, sy, g.radius, g.intensity, g.r, g.g, g.b)
	}
}

func (l *Lighting) addGlow(sx, sy, radius, intensity, r, g, b float64) {
	glow := l.patterns.Glow
	gw := float64(glow.Bounds().Dx())
	scale := radius * 2 / gw
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx-radius, sy-radius)
	op.Blend = ebiten.BlendLighter
	op.ColorScale.Scale(float32(r*intensity), float32(g*intensity), float32(b*intensity), float32(intensity))
	l.lightmap.DrawImage(glow, op)
}
