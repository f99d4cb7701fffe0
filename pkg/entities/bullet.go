package entities

import (
	"math"

	"github.com/gonewx/deadzone/pkg/config"
)

// Bullet 子弹实体
// 由玩家开火或敌人远程攻击创建；在寿命耗尽、撞墙或命中后销毁
type Bullet struct {
	X, Y       float64
	VX, VY     float64
	Damage     float64
	FromPlayer bool
	Life       float64 // 剩余存活时间（秒）
	Caliber    float64 // 渲染线宽，非玩法属性
}

// NewBullet 以指定起点、朝向角和速度创建子弹
func NewBullet(x, y, angle, speed, damage float64, fromPlayer bool, caliber float64) *Bullet {
	return &Bullet{
		X:          x,
		Y:          y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle) * speed,
		Damage:     damage,
		FromPlayer: fromPlayer,
		Life:       config.BulletLifetime,
		Caliber:    caliber,
	}
}
