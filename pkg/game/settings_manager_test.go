package game

import "testing"

// TestSettingsManager_DegradedMode gdata 为 nil 时使用默认设置且 Save 不报错
func TestSettingsManager_DegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	settings := sm.GetSettings()
	if settings.MusicVolume != 0.7 || settings.SoundVolume != 0.8 {
		t.Errorf("Unexpected default volumes: %+v", settings)
	}
	if !settings.MusicEnabled || !settings.SoundEnabled {
		t.Error("Audio should be enabled by default")
	}
	if settings.Difficulty != 1.0 {
		t.Errorf("Default difficulty = %v, want 1.0", settings.Difficulty)
	}

	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not error: %v", err)
	}
}

// TestSettingsManager_VolumeClamp 音量设置钳制到 [0,1]
func TestSettingsManager_VolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetMusicVolume(1.5)
	if sm.GetSettings().MusicVolume != 1.0 {
		t.Errorf("MusicVolume = %v, want 1.0", sm.GetSettings().MusicVolume)
	}

	sm.SetSoundVolume(-0.5)
	if sm.GetSettings().SoundVolume != 0.0 {
		t.Errorf("SoundVolume = %v, want 0.0", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsManager_DifficultyFallback 非法难度回退到 1.0
func TestSettingsManager_DifficultyFallback(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetDifficulty(0.75)
	if sm.GetSettings().Difficulty != 0.75 {
		t.Errorf("Difficulty = %v, want 0.75", sm.GetSettings().Difficulty)
	}

	sm.SetDifficulty(-1)
	if sm.GetSettings().Difficulty != 1.0 {
		t.Errorf("Difficulty = %v, want fallback 1.0", sm.GetSettings().Difficulty)
	}
}

// TestNullAudioService 空实现满足契约并记录触发次数
func TestNullAudioService(t *testing.T) {
	var svc AudioService = &NullAudioService{}

	if svc.IsUnlocked() {
		t.Error("Should start locked")
	}
	svc.Unlock()
	if !svc.IsUnlocked() {
		t.Error("Unlock should take effect")
	}

	if svc.IsMuted() {
		t.Error("Should start unmuted")
	}
	svc.ToggleMute()
	if !svc.IsMuted() {
		t.Error("ToggleMute should mute")
	}
	svc.ToggleMute()
	if svc.IsMuted() {
		t.Error("Second toggle should unmute")
	}

	null := svc.(*NullAudioService)
	svc.PlayShot()
	svc.PlayShot()
	svc.PlayHit()
	if null.ShotCount != 2 || null.HitCount != 1 {
		t.Errorf("Unexpected counts: shot=%d hit=%d", null.ShotCount, null.HitCount)
	}
}
