package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/effects"
	"github.com/gonewx/deadzone/pkg/entities"
	"github.com/gonewx/deadzone/pkg/level"
	"github.com/gonewx/deadzone/pkg/types"
	"github.com/gonewx/deadzone/pkg/utils"
)

// Pipeline composes a frame in fixed layer order: floor, decals,
// walls, pickups, enemies, bullets, player, particles. The result is
// lit and post-processed into the target screen; the HUD is drawn last
// in screen space, unaffected by camera or shake.
type Pipeline struct {
	patterns *PatternSet
	lighting *Lighting
	postfx   *PostFX
	hud      *HUD

	// scene is the unlit world render target at viewport size.
	scene *ebiten.Image

	elapsed float64
}

// NewPipeline builds the full render stack for one level.
// seed keys the procedural tile art so a level is visually stable.
func NewPipeline(seed int64, fx *config.PostFXConfig) (*Pipeline, error) {
	patterns := NewPatternSet(seed)
	hud, err := NewHUD(patterns)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		patterns: patterns,
		lighting: NewLighting(patterns),
		postfx:   NewPostFX(patterns, fx),
		hud:      hud,
	}, nil
}

// Frame 单帧渲染所需的全部只读状态
type Frame struct {
	World *level.TileWorld
	Store *entities.Store
	Pool  *effects.Pool
	View  View
	HUD   HUDState
}

// Draw 渲染完整一帧到 screen
func (pl *Pipeline) Draw(screen *ebiten.Image, f Frame, dt float64) {
	pl.elapsed += dt
	if pl.scene == nil {
		pl.scene = ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	}
	pl.scene.Fill(color.RGBA{0x0a, 0x0a, 0x0c, 0xff})

	pl.drawTiles(f, false)
	pl.drawDecals(f)
	pl.drawTiles(f, true)
	pl.drawPickups(f)
	pl.drawEnemies(f)
	pl.drawBullets(f)
	pl.drawPlayer(f)
	pl.drawParticles(f)

	pl.lighting.Apply(pl.scene, f)
	pl.postfx.Apply(screen, pl.scene, f.View, pl.elapsed)
	pl.hud.Draw(screen, f)
}

// drawTiles 绘制视口内的瓦片；walls 选择墙或地面层
// 变体按坐标哈希选取，保证同一格每帧稳定
func (pl *Pipeline) drawTiles(f Frame, walls bool) {
	x0, y0, x1, y1 := f.View.VisibleTiles()
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			code := f.World.TileAt(tx, ty)
			isWall := code != 0
			if isWall != walls {
				continue
			}
			variant := tileHash(tx, ty) % tileVariants
			var img *ebiten.Image
			if isWall {
				img = pl.patterns.Walls[(code-1)%3][variant]
			} else {
				img = pl.patterns.Floors[variant]
			}
			sx, sy := f.View.WorldToScreen(float64(tx)*config.TileSize, float64(ty)*config.TileSize)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sx, sy)
			if !isWall && f.World.IsExit(float64(tx)*config.TileSize+1, float64(ty)*config.TileSize+1) {
				// 出口地面泛绿脉冲
				pulse := utils.EaseOutQuad(0.5 + 0.5*math.Sin(pl.elapsed*3))
				op.ColorScale.Scale(0.6, float32(utils.Lerp(0.9, 1.6, pulse)), 0.6, 1)
			}
			pl.scene.DrawImage(img, op)
			if !isWall {
				pl.drawFloorContactShadow(f, tx, ty, sx, sy)
			}
		}
	}
}

// drawFloorContactShadow 邻墙一侧压暗地面，近似接触阴影
func (pl *Pipeline) drawFloorContactShadow(f Frame, tx, ty int, sx, sy float64) {
	const depth = 7
	shade := color.RGBA{0, 0, 0, 0x48}
	ts := float32(config.TileSize)
	x, y := float32(sx), float32(sy)
	if f.World.TileAt(tx, ty-1) != 0 {
		vector.DrawFilledRect(pl.scene, x, y, ts, depth, shade, false)
	}
	if f.World.TileAt(tx, ty+1) != 0 {
		vector.DrawFilledRect(pl.scene, x, y+ts-depth, ts, depth, shade, false)
	}
	if f.World.TileAt(tx-1, ty) != 0 {
		vector.DrawFilledRect(pl.scene, x, y, depth, ts, shade, false)
	}
	if f.World.TileAt(tx+1, ty) != 0 {
		vector.DrawFilledRect(pl.scene, x+ts-depth, y, depth, ts, shade, false)
	}
}

func (pl *Pipeline) drawDecals(f Frame) {
	for _, d := range f.Pool.Decals {
		sx, sy := f.View.WorldToScreen(d.X, d.Y)
		var r, g, b float32
		switch d.Kind {
		case types.DecalBlood:
			r, g, b = 0.45, 0.05, 0.05
		case types.DecalScorch:
			r, g, b = 0.1, 0.1, 0.1
		default:
			r, g, b = 0.2, 0.2, 0.22
		}
		a := float32(d.Alpha)
		vector.DrawFilledCircle(pl.scene, float32(sx), float32(sy), float32(d.Size), color.RGBA{
			R: uint8(r * a * 255), G: uint8(g * a * 255), B: uint8(b * a * 255), A: uint8(a * 255),
		}, true)
	}
}

func (pl *Pipeline) drawPickups(f Frame) {
	for _, pk := range f.Store.Pickups {
		if pk.Collected {
			continue
		}
		bob := math.Sin(pk.BobPhase+pl.elapsed*3) * 3
		sx, sy := f.View.WorldToScreen(pk.X, pk.Y+bob)
		var body color.RGBA
		switch pk.Kind {
		case types.PickupHealth:
			body = color.RGBA{0xd0, 0x30, 0x30, 0xff}
		case types.PickupAmmo:
			body = color.RGBA{0xd8, 0xb0, 0x30, 0xff}
		default:
			body = color.RGBA{0x40, 0x80, 0xd8, 0xff}
		}
		vector.DrawFilledRect(pl.scene, float32(sx-6), float32(sy-6), 12, 12, body, true)
		if pk.Kind == types.PickupHealth {
			// 十字标
			vector.DrawFilledRect(pl.scene, float32(sx-1.5), float32(sy-4.5), 3, 9, color.White, true)
			vector.DrawFilledRect(pl.scene, float32(sx-4.5), float32(sy-1.5), 9, 3, color.White, true)
		}
	}
}

func (pl *Pipeline) drawEnemies(f Frame) {
	for _, e := range f.Store.Enemies {
		if !e.Alive {
			continue
		}
		sx, sy := f.View.WorldToScreen(e.X, e.Y)
		wobble := math.Sin(e.WalkPhase) * 2

		var body color.RGBA
		switch e.Type {
		case types.EnemyRunner:
			body = color.RGBA{0x9a, 0x6a, 0x28, 0xff}
		case types.EnemyTank:
			body = color.RGBA{0x46, 0x52, 0x46, 0xff}
		case types.EnemyShooter:
			body = color.RGBA{0x5a, 0x3a, 0x6e, 0xff}
		case types.EnemySpitter:
			body = color.RGBA{0x3a, 0x6e, 0x42, 0xff}
		default:
			body = color.RGBA{0x58, 0x70, 0x3a, 0xff}
		}
		if e.HitFlash > 0 {
			body = color.RGBA{0xff, 0xff, 0xff, 0xff}
		}

		vector.DrawFilledCircle(pl.scene, float32(sx+wobble), float32(sy), float32(e.Radius), body, true)
		// 血条只在受损后出现
		if e.HP < e.MaxHP {
			w := float32(e.Radius * 2)
			frac := float32(e.HP / e.MaxHP)
			bx, by := float32(sx)-w/2, float32(sy)-float32(e.Radius)-6
			vector.DrawFilledRect(pl.scene, bx, by, w, 3, color.RGBA{0x20, 0x20, 0x20, 0xc0}, false)
			vector.DrawFilledRect(pl.scene, bx, by, w*frac, 3, color.RGBA{0xc0, 0x30, 0x30, 0xff}, false)
		}
	}
}

func (pl *Pipeline) drawBullets(f Frame) {
	for _, b := range f.Store.Bullets {
		if b.Life <= 0 {
			continue
		}
		sx, sy := f.View.WorldToScreen(b.X, b.Y)
		c := color.RGBA{0xff, 0xe0, 0x90, 0xff}
		if !b.FromPlayer {
			c = color.RGBA{0xa0, 0xff, 0x70, 0xff}
		}
		// 短拖尾沿速度反向
		speed := math.Hypot(b.VX, b.VY)
		if speed > 0 {
			tx := sx - b.VX/speed*8
			ty := sy - b.VY/speed*8
			vector.StrokeLine(pl.scene, float32(tx), float32(ty), float32(sx), float32(sy), float32(b.Caliber), c, true)
		}
		vector.DrawFilledCircle(pl.scene, float32(sx), float32(sy), float32(b.Caliber), color.White, true)
	}
}

func (pl *Pipeline) drawPlayer(f Frame) {
	p := f.Store.Player
	sx, sy := f.View.WorldToScreen(p.X, p.Y)
	bob := math.Sin(p.WalkPhase) * 1.5

	body := color.RGBA{0x50, 0x60, 0x78, 0xff}
	if p.HitFlash > 0 {
		body = color.RGBA{0xff, 0x80, 0x80, 0xff}
	}
	vector.DrawFilledCircle(pl.scene, float32(sx), float32(sy+bob), float32(config.PlayerRadius), body, true)

	// 枪管指向朝向角
	gx := sx + math.Cos(p.Angle)*config.PlayerRadius*1.5
	gy := sy + bob + math.Sin(p.Angle)*config.PlayerRadius*1.5
	vector.StrokeLine(pl.scene, float32(sx), float32(sy+bob), float32(gx), float32(gy), 3, color.RGBA{0x28, 0x28, 0x2c, 0xff}, true)
}

func (pl *Pipeline) drawParticles(f Frame) {
	for _, pt := range f.Pool.Particles {
		frac := pt.LifeFrac()
		if frac <= 0 {
			continue
		}
		sx, sy := f.View.WorldToScreen(pt.X, pt.Y)
		a := frac
		size := float32(pt.Size)
		c := color.RGBA{
			R: uint8(clampByte(pt.R * a * 255)),
			G: uint8(clampByte(pt.G * a * 255)),
			B: uint8(clampByte(pt.B * a * 255)),
			A: uint8(clampByte(a * 255)),
		}
		switch pt.Kind {
		case types.ParticleShell:
			// 弹壳画成旋转短线
			dx := math.Cos(pt.Rot) * float64(size)
			dy := math.Sin(pt.Rot) * float64(size)
			vector.StrokeLine(pl.scene, float32(sx-dx), float32(sy-dy), float32(sx+dx), float32(sy+dy), 1.5, c, true)
		case types.ParticleSmoke:
			// 烟雾随寿命膨胀
			grown := size * float32(1.5-frac*0.5)
			vector.DrawFilledCircle(pl.scene, float32(sx), float32(sy), grown, c, true)
		default:
			vector.DrawFilledCircle(pl.scene, float32(sx), float32(sy), size, c, true)
		}
	}
}

// tileHash 坐标到稳定变体序号的散列
func tileHash(tx, ty int) int {
	h := tx*73856093 ^ ty*19349663
	if h < 0 {
		h = -h
	}
	return h
}
