package entities

import (
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/types"
)

// Pickup 拾取物实体
// 关卡开始时撒布，敌人死亡时按概率掉落；
// Collected 置位后不再生效（拾取幂等），下一次清理遍历移出列表
type Pickup struct {
	X, Y      float64
	Kind      types.PickupKind
	Amount    int
	Collected bool
	BobPhase  float64 // 漂浮动画相位偏移，避免同屏拾取物同步起伏
}

// NewPickup 按类别创建拾取物，数量取各类别的固定值
func NewPickup(kind types.PickupKind, x, y, bobPhase float64) *Pickup {
	amount := 0
	switch kind {
	case types.PickupHealth:
		amount = config.PickupHealthAmount
	case types.PickupAmmo:
		amount = config.PickupAmmoAmount
	case types.PickupArmor:
		amount = config.PickupArmorAmount
	}
	return &Pickup{
		X:        x,
		Y:        y,
		Kind:     kind,
		Amount:   amount,
		BobPhase: bobPhase,
	}
}

// Apply 将拾取效果应用到玩家；已收集的拾取物不再生效
// 返回是否实际生效
func (p *Pickup) Apply(player *Player) bool {
	if p.Collected {
		return false
	}
	p.Collected = true

	switch p.Kind {
	case types.PickupHealth:
		player.Heal(float64(p.Amount))
	case types.PickupAmmo:
		player.Ammo += p.Amount
	case types.PickupArmor:
		player.AddArmor(float64(p.Amount))
	}
	return true
}
