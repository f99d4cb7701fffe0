package render

import "testing"

func TestWaveLabel(t *testing.T) {
	tests := []struct {
		name string
		hud  HUDState
		want string
	}{
		{"首波倒计时显示第 1 波", HUDState{Wave: 0, Countdown: 4.2}, "WAVE 1"},
		{"波次进行中显示当前波", HUDState{Wave: 1, Countdown: 0}, "WAVE 1"},
		{"波间倒计时显示下一波", HUDState{Wave: 2, Countdown: 2.5}, "WAVE 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hud.WaveLabel(); got != tt.want {
				t.Errorf("WaveLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
