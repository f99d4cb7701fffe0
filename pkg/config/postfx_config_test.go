package config

import (
	"strings"
	"testing"
)

func TestParsePostFXConfig_Valid(t *testing.T) {
	yaml := `
bloom:
  enabled: true
  threshold: 0.5
  strength: 0.9
vignette:
  enabled: false
  strength: 0.3
grading:
  enabled: true
  contrast: 1.1
  saturation: 1.2
`
	config, err := parsePostFXConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("parsePostFXConfig failed: %v", err)
	}

	if !config.Bloom.Enabled || config.Bloom.Threshold != 0.5 {
		t.Errorf("Unexpected bloom config: %+v", config.Bloom)
	}
	if config.Vignette.Enabled {
		t.Error("Vignette should be disabled")
	}
}

func TestParsePostFXConfig_Invalid(t *testing.T) {
	yaml := `
bloom:
  enabled: true
  threshold: 1.5
`
	_, err := parsePostFXConfig([]byte(yaml), "test.yaml")
	if err == nil {
		t.Fatal("Expected error for out-of-range threshold")
	}
	if !strings.Contains(err.Error(), "threshold") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDefaultPostFXConfig_PassesValidation(t *testing.T) {
	config := DefaultPostFXConfig()
	if err := validatePostFXConfig(config); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
	if !config.Bloom.Enabled || !config.Grading.Enabled {
		t.Error("Default config should enable all channels")
	}
}
