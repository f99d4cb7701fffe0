package effects

import "github.com/gonewx/deadzone/pkg/config"

// Pool 持有全部三类效果的有界集合
// 容量超限时丢弃最旧的条目腾出空间（有界环语义，不是无界列表）
type Pool struct {
	Particles []*Particle
	Decals    []*Decal
	Lights    []*Light

	particleCap int
	decalCap    int
	lightCap    int
}

// NewPool 按默认容量创建效果池
func NewPool() *Pool {
	return NewPoolWithCaps(config.ParticlePoolCap, config.DecalPoolCap, config.LightPoolCap)
}

// NewPoolWithCaps 按指定容量创建效果池（测试用）
func NewPoolWithCaps(particleCap, decalCap, lightCap int) *Pool {
	return &Pool{
		Particles:   make([]*Particle, 0, particleCap),
		Decals:      make([]*Decal, 0, decalCap),
		Lights:      make([]*Light, 0, lightCap),
		particleCap: particleCap,
		decalCap:    decalCap,
		lightCap:    lightCap,
	}
}

// AddParticle 追加粒子，容量超限时淘汰最旧条目
func (p *Pool) AddParticle(particle *Particle) {
	if len(p.Particles) >= p.particleCap {
		drop := len(p.Particles) - p.particleCap + 1
		p.Particles = append(p.Particles[:0], p.Particles[drop:]...)
	}
	p.Particles = append(p.Particles, particle)
}

// AddDecal 追加贴花，容量超限时淘汰最旧条目
func (p *Pool) AddDecal(decal *Decal) {
	if len(p.Decals) >= p.decalCap {
		drop := len(p.Decals) - p.decalCap + 1
		p.Decals = append(p.Decals[:0], p.Decals[drop:]...)
	}
	p.Decals = append(p.Decals, decal)
}

// AddLight 追加光源，容量超限时淘汰最旧条目
func (p *Pool) AddLight(light *Light) {
	if len(p.Lights) >= p.lightCap {
		drop := len(p.Lights) - p.lightCap + 1
		p.Lights = append(p.Lights[:0], p.Lights[drop:]...)
	}
	p.Lights = append(p.Lights, light)
}

// Update 推进所有效果并移除过期条目
// 原地过滤，保持相对顺序（最旧在前）
func (p *Pool) Update(dt float64) {
	particles := p.Particles[:0]
	for _, pt := range p.Particles {
		pt.update(dt)
		if pt.Life > 0 {
			particles = append(particles, pt)
		}
	}
	p.Particles = particles

	decals := p.Decals[:0]
	for _, d := range p.Decals {
		d.update(dt)
		if d.Alpha > 0 {
			decals = append(decals, d)
		}
	}
	p.Decals = decals

	lights := p.Lights[:0]
	for _, l := range p.Lights {
		l.Life -= dt
		if l.Life > 0 {
			lights = append(lights, l)
		}
	}
	p.Lights = lights
}

// Clear 清空全部效果（关卡重开时调用）
func (p *Pool) Clear() {
	p.Particles = p.Particles[:0]
	p.Decals = p.Decals[:0]
	p.Lights = p.Lights[:0]
}
