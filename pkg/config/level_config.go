package config

import (
	"fmt"

	"github.com/gonewx/deadzone/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// tiles 为逐行字符串，每个字符是一个瓦片码：0 地板，>0 墙体纹理变体
type LevelConfig struct {
	Name  string      `yaml:"name"`  // 关卡显示名称
	Tiles []string    `yaml:"tiles"` // 瓦片码网格（行优先）
	Exits []TileCoord `yaml:"exits"` // 出口瓦片坐标
	Spawn SpawnPose   `yaml:"spawn"` // 玩家出生位姿
}

// TileCoord 瓦片坐标
type TileCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnPose 玩家出生位姿（瓦片坐标 + 朝向角）
type SpawnPose struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// LevelCount 返回嵌入的关卡数量
func LevelCount() int {
	matches, err := embedded.Glob("data/levels/level_*.yaml")
	if err != nil {
		return 0
	}
	return len(matches)
}

// LoadLevelConfig 按索引（从0开始）加载嵌入的关卡配置
// 关卡文件命名为 data/levels/level_N.yaml，N 从 1 开始
func LoadLevelConfig(index int) (*LevelConfig, error) {
	path := fmt.Sprintf("data/levels/level_%d.yaml", index+1)

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	return parseLevelConfig(data, path)
}

// parseLevelConfig 解析并验证关卡 YAML 数据
func parseLevelConfig(data []byte, path string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", path, err)
	}

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", path, err)
	}

	return &levelConfig, nil
}

// validateLevelConfig 验证关卡配置的完整性和合法性
//
// 运行时代码假设数据结构良构，这里的检查针对的是
// 配置文件被手工编辑后最容易出现的结构性错误。
func validateLevelConfig(config *LevelConfig) error {
	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}

	if len(config.Tiles) < 3 {
		return fmt.Errorf("level must have at least 3 rows, got %d", len(config.Tiles))
	}

	width := len(config.Tiles[0])
	if width < 3 {
		return fmt.Errorf("level must have at least 3 columns, got %d", width)
	}

	for y, row := range config.Tiles {
		if len(row) != width {
			return fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x, c := range row {
			if c < '0' || c > '9' {
				return fmt.Errorf("invalid tile code %q at (%d,%d)", c, x, y)
			}
		}
	}

	height := len(config.Tiles)
	if config.Spawn.X < 0 || config.Spawn.X >= width || config.Spawn.Y < 0 || config.Spawn.Y >= height {
		return fmt.Errorf("spawn (%d,%d) out of bounds %dx%d", config.Spawn.X, config.Spawn.Y, width, height)
	}
	if config.Tiles[config.Spawn.Y][config.Spawn.X] != '0' {
		return fmt.Errorf("spawn (%d,%d) is not a floor tile", config.Spawn.X, config.Spawn.Y)
	}

	for _, exit := range config.Exits {
		if exit.X < 0 || exit.X >= width || exit.Y < 0 || exit.Y >= height {
			return fmt.Errorf("exit (%d,%d) out of bounds %dx%d", exit.X, exit.Y, width, height)
		}
	}

	return nil
}

// Width 返回关卡宽度（瓦片数）
func (c *LevelConfig) Width() int {
	if len(c.Tiles) == 0 {
		return 0
	}
	return len(c.Tiles[0])
}

// Height 返回关卡高度（瓦片数）
func (c *LevelConfig) Height() int {
	return len(c.Tiles)
}

// TileAt 返回指定瓦片坐标的瓦片码，越界视为墙（码 1）
func (c *LevelConfig) TileAt(x, y int) int {
	if y < 0 || y >= len(c.Tiles) || x < 0 || x >= len(c.Tiles[y]) {
		return 1
	}
	return int(c.Tiles[y][x] - '0')
}
