package config

import (
	"fmt"

	"github.com/gonewx/deadzone/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PostFXConfig 后期处理通道配置
// 每个通道可单独开关；参数是风格化近似，不追求物理正确
type PostFXConfig struct {
	Bloom struct {
		Enabled   bool    `yaml:"enabled"`
		Threshold float64 `yaml:"threshold"` // 亮度阈值 0~1
		Strength  float64 `yaml:"strength"`  // 叠加强度
	} `yaml:"bloom"`
	ChromaticAberration struct {
		Enabled bool    `yaml:"enabled"`
		Offset  float64 `yaml:"offset"` // 通道偏移像素
	} `yaml:"chromaticAberration"`
	Grain struct {
		Enabled  bool    `yaml:"enabled"`
		Strength float64 `yaml:"strength"` // 噪声叠加强度 0~1
	} `yaml:"grain"`
	Vignette struct {
		Enabled  bool    `yaml:"enabled"`
		Strength float64 `yaml:"strength"` // 边缘压暗强度 0~1
	} `yaml:"vignette"`
	Fog struct {
		Enabled    bool    `yaml:"enabled"`
		Strength   float64 `yaml:"strength"`   // 雾层不透明度 0~1
		DriftSpeed float64 `yaml:"driftSpeed"` // 漂移速度（像素/秒）
	} `yaml:"fog"`
	Grading struct {
		Enabled    bool    `yaml:"enabled"`
		Contrast   float64 `yaml:"contrast"`   // 对比度系数，1 为不变
		Saturation float64 `yaml:"saturation"` // 饱和度系数，1 为不变
	} `yaml:"grading"`
}

// DefaultPostFXConfig 返回全部通道开启的默认配置
func DefaultPostFXConfig() *PostFXConfig {
	cfg := &PostFXConfig{}
	cfg.Bloom.Enabled = true
	cfg.Bloom.Threshold = 0.62
	cfg.Bloom.Strength = 0.85
	cfg.ChromaticAberration.Enabled = true
	cfg.ChromaticAberration.Offset = 1.6
	cfg.Grain.Enabled = true
	cfg.Grain.Strength = 0.06
	cfg.Vignette.Enabled = true
	cfg.Vignette.Strength = 0.55
	cfg.Fog.Enabled = true
	cfg.Fog.Strength = 0.35
	cfg.Fog.DriftSpeed = 9.0
	cfg.Grading.Enabled = true
	cfg.Grading.Contrast = 1.08
	cfg.Grading.Saturation = 1.12
	return cfg
}

// LoadPostFXConfig 从嵌入的 YAML 文件加载后期处理配置
// 文件缺失不是致命错误，调用方可退回 DefaultPostFXConfig
func LoadPostFXConfig(filepath string) (*PostFXConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read postfx config file %s: %w", filepath, err)
	}
	return parsePostFXConfig(data, filepath)
}

// parsePostFXConfig 解析并验证后期处理 YAML 数据
func parsePostFXConfig(data []byte, filepath string) (*PostFXConfig, error) {
	var config PostFXConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse postfx config YAML from %s: %w", filepath, err)
	}

	if err := validatePostFXConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid postfx config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validatePostFXConfig 验证后期处理配置的参数范围
func validatePostFXConfig(config *PostFXConfig) error {
	if config.Bloom.Threshold < 0 || config.Bloom.Threshold > 1 {
		return fmt.Errorf("bloom threshold must be in [0,1], got %v", config.Bloom.Threshold)
	}
	if config.Grain.Strength < 0 || config.Grain.Strength > 1 {
		return fmt.Errorf("grain strength must be in [0,1], got %v", config.Grain.Strength)
	}
	if config.Vignette.Strength < 0 || config.Vignette.Strength > 1 {
		return fmt.Errorf("vignette strength must be in [0,1], got %v", config.Vignette.Strength)
	}
	if config.Fog.Strength < 0 || config.Fog.Strength > 1 {
		return fmt.Errorf("fog strength must be in [0,1], got %v", config.Fog.Strength)
	}
	if config.Grading.Contrast <= 0 {
		return fmt.Errorf("grading contrast must be positive, got %v", config.Grading.Contrast)
	}
	if config.Grading.Saturation < 0 {
		return fmt.Errorf("grading saturation cannot be negative, got %v", config.Grading.Saturation)
	}
	return nil
}
