// Package render implements the frame composition pipeline: procedural
// tile art, the world layer stack, additive lighting, post-processing
// and the screen-space HUD. Everything is drawn from generated images,
// there are no texture assets on disk.
package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/deadzone/pkg/config"
)

// tileVariants 每个瓦片码预生成的随机变体数
const tileVariants = 4

// PatternSet holds all procedurally generated images used by the
// pipeline. Generation is seeded so a level always looks the same.
type PatternSet struct {
	Floors [tileVariants]*ebiten.Image
	Walls  [3][tileVariants]*ebiten.Image

	// Glow is a radial falloff sprite reused for every light.
	Glow *ebiten.Image
	// Cone is the flashlight beam mask, pointing along +X.
	Cone *ebiten.Image
	// Noise is tiled for film grain and fog distortion.
	Noise *ebiten.Image
	// Vignette darkens the screen borders, sized to the viewport.
	Vignette *ebiten.Image

	// Pixel is a reusable 1x1 white image for tinted primitives.
	Pixel *ebiten.Image
}

// NewPatternSet 生成全部程序化贴图
func NewPatternSet(seed int64) *PatternSet {
	rng := rand.New(rand.NewSource(seed))
	ps := &PatternSet{}

	for i := 0; i < tileVariants; i++ {
		ps.Floors[i] = makeFloorTile(rng)
	}
	for w := 0; w < 3; w++ {
		for i := 0; i < tileVariants; i++ {
			ps.Walls[w][i] = makeWallTile(rng, w)
		}
	}

	ps.Glow = makeGlow(96)
	ps.Cone = makeCone(320, 200)
	ps.Noise = makeNoise(rng, 256)
	ps.Vignette = makeVignette(config.GameWindowWidth, config.GameWindowHeight)

	ps.Pixel = ebiten.NewImage(1, 1)
	ps.Pixel.Fill(color.White)

	return ps
}

// makeFloorTile 混凝土地面：基色加斑点与裂纹噪声
func makeFloorTile(rng *rand.Rand) *ebiten.Image {
	const size = int(config.TileSize)
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := 46.0 + rng.Float64()*6
			// 稀疏的亮斑和暗渍
			switch {
			case rng.Float64() < 0.02:
				base += 10 + rng.Float64()*8
			case rng.Float64() < 0.03:
				base -= 8 + rng.Float64()*6
			}
			// 瓦片接缝压暗
			if x == 0 || y == 0 {
				base -= 9
			}
			i := (y*size + x) * 4
			pix[i] = clampByte(base)
			pix[i+1] = clampByte(base + 2)
			pix[i+2] = clampByte(base - 2)
			pix[i+3] = 0xff
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// makeWallTile 三种墙体变体：0 砖墙、1 金属板、2 破损混凝土
func makeWallTile(rng *rand.Rand, variant int) *ebiten.Image {
	const size = int(config.TileSize)
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var r, g, b float64
			switch variant {
			case 0:
				// 砖缝按行错位
				r, g, b = 96, 58, 48
				brickRow := y / 12
				mortarX := (x + brickRow*24) % 24
				if y%12 == 0 || mortarX == 0 {
					r, g, b = 40, 36, 34
				}
				r += rng.Float64()*10 - 5
				g += rng.Float64()*6 - 3
			case 1:
				// 金属板带铆钉
				v := 78 + rng.Float64()*5
				r, g, b = v, v+3, v+8
				if (x%16 == 3 || x%16 == 12) && (y%16 == 3 || y%16 == 12) {
					r, g, b = 120, 124, 132
				}
				if y%24 == 0 {
					r, g, b = 52, 54, 60
				}
			default:
				v := 70 + rng.Float64()*12
				r, g, b = v, v-2, v-6
				if rng.Float64() < 0.04 {
					r, g, b = 38, 36, 34
				}
			}
			// 顶缘高光给出少许体积感
			if y < 3 {
				r += 18
				g += 18
				b += 18
			}
			i := (y*size + x) * 4
			pix[i] = clampByte(r)
			pix[i+1] = clampByte(g)
			pix[i+2] = clampByte(b)
			pix[i+3] = 0xff
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// makeGlow 径向衰减光斑，白色预乘 alpha
func makeGlow(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			a := 0.0
			if d < 1 {
				a = (1 - d) * (1 - d)
			}
			v := clampByte(a * 255)
			i := (y*size + x) * 4
			pix[i] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// makeCone 手电光锥遮罩，锥尖在左缘中点，朝 +X 展开
func makeCone(w, h int) *ebiten.Image {
	pix := make([]byte, w*h*4)
	halfAngle := math.Pi / 7
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x)
			dy := float64(y) - float64(h)/2
			dist := math.Hypot(dx, dy)
			if dx <= 0 || dist == 0 {
				continue
			}
			ang := math.Abs(math.Atan2(dy, dx))
			if ang > halfAngle {
				continue
			}
			radial := 1 - dist/float64(w)
			if radial < 0 {
				radial = 0
			}
			angular := 1 - ang/halfAngle
			a := radial * radial * angular * 255
			v := clampByte(a)
			i := (y*w + x) * 4
			pix[i] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = v
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

// makeNoise 单色噪声图，平铺使用
func makeNoise(rng *rand.Rand, size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	for i := 0; i < size*size; i++ {
		v := byte(rng.Intn(256))
		pix[i*4] = v
		pix[i*4+1] = v
		pix[i*4+2] = v
		pix[i*4+3] = 0xff
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// makeVignette 四周压暗遮罩，预乘黑色 alpha
func makeVignette(w, h int) *ebiten.Image {
	pix := make([]byte, w*h*4)
	cx, cy := float64(w)/2, float64(h)/2
	maxD := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxD
			a := d * d * d * 255
			i := (y*w + x) * 4
			pix[i+3] = clampByte(a)
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
