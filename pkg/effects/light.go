package effects

// Light 瞬时点光源，寿命通常不足一秒
// 只被渲染管线的光照合成读取，过期即丢弃
type Light struct {
	X, Y      float64
	Radius    float64
	Intensity float64 // 初始强度
	R, G, B   float64
	Life      float64
	MaxLife   float64
}

// CurrentIntensity 强度随剩余寿命比例线性衰减
func (l *Light) CurrentIntensity() float64 {
	if l.MaxLife <= 0 || l.Life <= 0 {
		return 0
	}
	return l.Intensity * (l.Life / l.MaxLife)
}
