package config

import (
	"fmt"

	"github.com/gonewx/deadzone/pkg/embedded"
	"github.com/gonewx/deadzone/pkg/types"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	HP             float64 `yaml:"hp"`             // 初始血量
	Speed          float64 `yaml:"speed"`          // 移动速度（像素/秒）
	Damage         float64 `yaml:"damage"`         // 单次攻击伤害
	AttackRange    float64 `yaml:"attackRange"`    // 攻击距离阈值
	AttackCooldown float64 `yaml:"attackCooldown"` // 攻击冷却（秒）
	Radius         float64 `yaml:"radius"`         // 碰撞半径
	Score          int     `yaml:"score"`          // 击杀得分
	UnlockWave     int     `yaml:"unlockWave"`     // 进入刷怪池的波次
	Behavior       string  `yaml:"behavior"`       // 行为模式：melee / ranged
	KiteDistance   float64 `yaml:"kiteDistance"`   // 远程类型的后撤距离下限（melee 忽略）
	BulletSpeed    float64 `yaml:"bulletSpeed"`    // 远程类型的子弹速度（melee 忽略）
}

// EnemyStatsConfig 敌人属性配置文件结构
type EnemyStatsConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"` // 敌人类型到属性的映射
}

// LoadEnemyStats 从嵌入的 YAML 文件加载敌人属性配置
// 参数：
//
//	filepath - 配置文件路径（以 "data/" 开头）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}
	return parseEnemyStats(data, filepath)
}

// parseEnemyStats 解析并验证敌人属性 YAML 数据
func parseEnemyStats(data []byte, filepath string) (*EnemyStatsConfig, error) {
	var config EnemyStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML from %s: %w", filepath, err)
	}

	if err := validateEnemyStats(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateEnemyStats 验证敌人属性配置的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for name, stats := range config.Enemies {
		if _, err := types.ParseEnemyType(name); err != nil {
			return err
		}

		mode, err := types.ParseBehaviorMode(stats.Behavior)
		if err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}

		if stats.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %v", name, stats.HP)
		}

		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %v", name, stats.Speed)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("enemy %s: damage cannot be negative, got %v", name, stats.Damage)
		}

		if stats.AttackRange <= 0 {
			return fmt.Errorf("enemy %s: attackRange must be positive, got %v", name, stats.AttackRange)
		}

		if stats.AttackCooldown <= 0 {
			return fmt.Errorf("enemy %s: attackCooldown must be positive, got %v", name, stats.AttackCooldown)
		}

		if stats.UnlockWave < 1 {
			return fmt.Errorf("enemy %s: unlockWave must be at least 1, got %d", name, stats.UnlockWave)
		}

		if mode == types.BehaviorRanged && stats.BulletSpeed <= 0 {
			return fmt.Errorf("enemy %s: ranged behavior requires positive bulletSpeed", name)
		}
	}

	return nil
}

// Get 获取指定类型的完整属性
// 如果类型不存在，返回 nil 和 false
func (c *EnemyStatsConfig) Get(enemyType types.EnemyType) (*EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// BehaviorMode 返回指定类型的行为模式
// 类型不存在时返回近战模式作为兜底
func (c *EnemyStatsConfig) BehaviorMode(enemyType types.EnemyType) types.BehaviorMode {
	stats, ok := c.Enemies[enemyType.String()]
	if !ok {
		return types.BehaviorMelee
	}
	mode, err := types.ParseBehaviorMode(stats.Behavior)
	if err != nil {
		return types.BehaviorMelee
	}
	return mode
}

// UnlockedTypes 返回指定波次已解锁的敌人类型池
// 解锁是累加的：高波次保留之前所有已解锁类型
func (c *EnemyStatsConfig) UnlockedTypes(wave int) []types.EnemyType {
	pool := make([]types.EnemyType, 0, len(types.AllEnemyTypes))
	for _, et := range types.AllEnemyTypes {
		stats, ok := c.Get(et)
		if !ok {
			continue
		}
		if stats.UnlockWave <= wave {
			pool = append(pool, et)
		}
	}
	return pool
}
