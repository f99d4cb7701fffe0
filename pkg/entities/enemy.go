package entities

import (
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/types"
)

// Enemy 敌人实体
// 属性在创建时从 enemy_stats.yaml 的查表结果拷贝，
// 行为模式按类型查表分发（近战追击 / 远程风筝），不使用子类化
type Enemy struct {
	Type types.EnemyType
	Mode types.BehaviorMode

	X, Y  float64
	HP    float64
	MaxHP float64
	Alive bool

	// 从属性表拷贝的每类型参数
	Speed          float64
	Damage         float64
	AttackRange    float64
	AttackCooldown float64
	Radius         float64
	Score          int
	KiteDistance   float64 // 远程类型的后撤下限
	BulletSpeed    float64 // 远程类型的子弹速度

	// 运行时计时器
	CooldownTimer float64 // 攻击冷却剩余，到期才可攻击
	HitFlash      float64 // 受击闪白计时，线性衰减，仅视觉
	WalkPhase     float64
}

// NewEnemy 按类型从属性表创建敌人
func NewEnemy(et types.EnemyType, stats *config.EnemyStats, mode types.BehaviorMode, x, y float64) *Enemy {
	return &Enemy{
		Type:           et,
		Mode:           mode,
		X:              x,
		Y:              y,
		HP:             stats.HP,
		MaxHP:          stats.HP,
		Alive:          true,
		Speed:          stats.Speed,
		Damage:         stats.Damage,
		AttackRange:    stats.AttackRange,
		AttackCooldown: stats.AttackCooldown,
		Radius:         stats.Radius,
		Score:          stats.Score,
		KiteDistance:   stats.KiteDistance,
		BulletSpeed:    stats.BulletSpeed,
	}
}

// ApplyDamage 扣血并设置受击闪白
// 返回本次伤害是否击杀（HP 降到 0 以下且之前存活）
func (e *Enemy) ApplyDamage(amount float64) bool {
	if !e.Alive {
		return false
	}
	e.HP -= amount
	e.HitFlash = 0.12
	if e.HP <= 0 {
		e.Alive = false
		return true
	}
	return false
}
