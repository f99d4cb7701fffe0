package types

// ParticleKind 粒子的视觉类别，决定绘制方式与物理参数（阻力、重力）
type ParticleKind int

const (
	// ParticleSpark 火花（枪口、弹着点）
	ParticleSpark ParticleKind = iota
	// ParticleBlood 血液
	ParticleBlood
	// ParticleShell 弹壳
	ParticleShell
	// ParticleGib 碎块（敌人死亡）
	ParticleGib
	// ParticleSmoke 烟雾
	ParticleSmoke
	// ParticleEmber 余烬
	ParticleEmber
	// ParticleDust 灰尘（墙体弹着）
	ParticleDust
	// ParticleMuzzle 枪口闪光
	ParticleMuzzle
)

// DecalKind 地面贴花类别
type DecalKind int

const (
	// DecalBlood 血迹（淡出到下限，存续期间不完全消失）
	DecalBlood DecalKind = iota
	// DecalScorch 灼痕
	DecalScorch
	// DecalCrack 裂纹
	DecalCrack
)

// PickupKind 拾取物类别
type PickupKind int

const (
	// PickupHealth 医疗包
	PickupHealth PickupKind = iota
	// PickupAmmo 弹药箱
	PickupAmmo
	// PickupArmor 护甲（提升生命上限）
	PickupArmor
)

// String 返回拾取物类别的字符串表示
func (p PickupKind) String() string {
	switch p {
	case PickupHealth:
		return "health"
	case PickupAmmo:
		return "ammo"
	case PickupArmor:
		return "armor"
	default:
		return "unknown"
	}
}
