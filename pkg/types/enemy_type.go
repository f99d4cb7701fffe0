// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// EnemyType 定义敌人的类型（封闭集合）
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota
	// EnemyZombie 普通丧尸（近战追击）
	EnemyZombie
	// EnemyRunner 奔跑者（快速近战）
	EnemyRunner
	// EnemyTank 坦克（重型近战）
	EnemyTank
	// EnemyShooter 射手（远程）
	EnemyShooter
	// EnemySpitter 吐酸者（远程风筝）
	EnemySpitter
)

// AllEnemyTypes 按解锁顺序列出全部敌人类型，刷怪池构建时使用
var AllEnemyTypes = []EnemyType{
	EnemyZombie,
	EnemyRunner,
	EnemyTank,
	EnemyShooter,
	EnemySpitter,
}

// String 返回敌人类型的字符串表示，与 enemy_stats.yaml 的键一致
func (e EnemyType) String() string {
	switch e {
	case EnemyZombie:
		return "zombie"
	case EnemyRunner:
		return "runner"
	case EnemyTank:
		return "tank"
	case EnemyShooter:
		return "shooter"
	case EnemySpitter:
		return "spitter"
	default:
		return "unknown"
	}
}

// ParseEnemyType 将配置键解析为敌人类型
func ParseEnemyType(s string) (EnemyType, error) {
	switch s {
	case "zombie":
		return EnemyZombie, nil
	case "runner":
		return EnemyRunner, nil
	case "tank":
		return EnemyTank, nil
	case "shooter":
		return EnemyShooter, nil
	case "spitter":
		return EnemySpitter, nil
	default:
		return EnemyUnknown, fmt.Errorf("unknown enemy type %q", s)
	}
}

// BehaviorMode 敌人的行为模式（按类型查表，不使用子类化）
type BehaviorMode int

const (
	// BehaviorMelee 近战追击：拉近距离后在冷却到期时造成伤害
	BehaviorMelee BehaviorMode = iota
	// BehaviorRanged 远程风筝：保持距离区间并在射程内开火
	BehaviorRanged
)

// ParseBehaviorMode 将配置值解析为行为模式
func ParseBehaviorMode(s string) (BehaviorMode, error) {
	switch s {
	case "melee":
		return BehaviorMelee, nil
	case "ranged":
		return BehaviorRanged, nil
	default:
		return BehaviorMelee, fmt.Errorf("unknown behavior mode %q", s)
	}
}
