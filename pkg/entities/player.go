// Package entities 定义模拟实体的数据结构和工厂函数
// 所有可变游戏状态集中在 Store 中，由引擎独占持有；
// 外部组件只能通过引擎的操作接口间接修改
package entities

import "github.com/gonewx/deadzone/pkg/config"

// Player 玩家实体
// 仅由 Store 持有；移动由 PlayerSystem 写入，
// 伤害由 CombatSystem 写入，治疗/补给由拾取流程写入
type Player struct {
	X, Y      float64 // 世界坐标
	Angle     float64 // 朝向角（弧度）
	Health    float64
	MaxHealth float64
	Ammo      int
	Speed     float64
	WalkPhase float64 // 行走动画相位，静止时冻结
	HitFlash  float64 // 受击闪白计时（秒），线性衰减
	FireTimer float64 // 射击冷却计时
}

// NewPlayer 在指定位姿创建玩家
func NewPlayer(x, y, angle float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Angle:     angle,
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
		Ammo:      config.PlayerStartAmmo,
		Speed:     config.PlayerSpeed,
	}
}

// ApplyDamage 扣除生命并钳制到 [0, MaxHealth]
// 返回本次伤害是否使生命降到 0（触发 gameover 的判定由调用方负责）
func (p *Player) ApplyDamage(amount float64) bool {
	if p.Health <= 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.HitFlash = 0.25
	return p.Health == 0
}

// Heal 回复生命，钳制到当前上限
func (p *Player) Heal(amount float64) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddArmor 提升生命上限（封顶 PlayerHealthCap）并按提升量回血
func (p *Player) AddArmor(amount float64) {
	p.MaxHealth += amount
	if p.MaxHealth > config.PlayerHealthCap {
		p.MaxHealth = config.PlayerHealthCap
	}
	p.Heal(amount)
}
