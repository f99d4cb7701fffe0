package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioService 音频服务契约（fire-and-forget，无返回值要求）
// 引擎只通过这个接口请求音频，便于在无音频后端的环境下测试
type AudioService interface {
	Unlock()
	IsUnlocked() bool
	IsMuted() bool
	ToggleMute()
	StartMusic()
	StopMusic()
	PlayShot()
	PlayUse()
	PlayHit()
}

// 采样率与内置提示音参数
const audioSampleRate = 48000

// AudioManager 音频管理器，AudioService 的 Ebiten 实现
// 职责：
//   - 统一管理音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 延迟初始化播放器（Unlock 之前所有播放请求都被忽略）
//
// 正式音源由上游内容管线提供；这里用内置的合成提示音占位，
// 播放路径与真实素材完全一致
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager

	unlocked bool
	muted    bool

	shotPlayer  *audio.Player
	usePlayer   *audio.Player
	hitPlayer   *audio.Player
	musicPlayer *audio.Player
}

// NewAudioManager 创建新的音频管理器
// ctx 可为 nil（无音频后端的降级模式，所有播放都是 no-op）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
	}
}

// Unlock 解锁音频播放并构建播放器缓存
// 浏览器式自动播放策略要求首次用户交互后才能出声；重复调用无害
func (am *AudioManager) Unlock() {
	if am.unlocked || am.context == nil {
		return
	}

	am.shotPlayer = am.newClipPlayer(tonePCM(900, 0.06, 0.5))
	am.usePlayer = am.newClipPlayer(tonePCM(520, 0.10, 0.4))
	am.hitPlayer = am.newClipPlayer(tonePCM(180, 0.12, 0.6))

	music := tonePCM(55, 4.0, 0.18)
	loop := audio.NewInfiniteLoop(bytes.NewReader(music), int64(len(music)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create music player: %v", err)
	} else {
		am.musicPlayer = player
	}

	am.unlocked = true
	log.Printf("[AudioManager] Audio unlocked")
}

// IsUnlocked 返回音频是否已解锁
func (am *AudioManager) IsUnlocked() bool {
	return am.unlocked
}

// IsMuted 返回是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// ToggleMute 切换静音并立即作用于正在播放的音乐
func (am *AudioManager) ToggleMute() {
	am.muted = !am.muted
	if am.musicPlayer == nil {
		return
	}
	if am.muted {
		am.musicPlayer.Pause()
	} else if am.settingsManager == nil || am.settingsManager.GetSettings().MusicEnabled {
		am.musicPlayer.Play()
	}
}

// StartMusic 循环播放背景音乐
func (am *AudioManager) StartMusic() {
	if am.musicPlayer == nil || am.muted {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return
	}
	am.musicPlayer.SetVolume(am.musicVolume())
	am.musicPlayer.Play()
}

// StopMusic 停止背景音乐
func (am *AudioManager) StopMusic() {
	if am.musicPlayer != nil {
		am.musicPlayer.Pause()
	}
}

// PlayShot 播放射击音效
func (am *AudioManager) PlayShot() { am.playSound(am.shotPlayer) }

// PlayUse 播放使用/拾取音效
func (am *AudioManager) PlayUse() { am.playSound(am.usePlayer) }

// PlayHit 播放受击音效
func (am *AudioManager) PlayHit() { am.playSound(am.hitPlayer) }

// playSound 重置并播放单次音效
func (am *AudioManager) playSound(player *audio.Player) {
	if player == nil || am.muted {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return
	}
	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind sound: %v", err)
	}
	player.Play()
}

// newClipPlayer 从 PCM 数据创建音效播放器，失败时返回 nil（降级为 no-op）
func (am *AudioManager) newClipPlayer(pcm []byte) *audio.Player {
	player, err := am.context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create sound player: %v", err)
		return nil
	}
	return player
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().SoundVolume
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().MusicVolume
}

// tonePCM 生成 16bit 立体声正弦波 PCM（占位提示音）
func tonePCM(freq, duration, gain float64) []byte {
	n := int(float64(audioSampleRate) * duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / audioSampleRate
		// 简单包络，避免爆音
		env := 1.0
		if attack := 0.005; t < attack {
			env = t / attack
		}
		if tail := duration - 0.01; t > tail {
			env = (duration - t) / 0.01
		}
		v := int16(math.Sin(2*math.Pi*freq*t) * gain * env * math.MaxInt16)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// NullAudioService 是 AudioService 的 no-op 实现，测试和无头环境使用
type NullAudioService struct {
	unlocked bool
	muted    bool

	// 触发计数（测试断言用）
	ShotCount      int
	UseCount       int
	HitCount       int
	MusicStarted   bool
	MusicStopCount int
}

// Unlock 实现 AudioService
func (n *NullAudioService) Unlock() { n.unlocked = true }

// IsUnlocked 实现 AudioService
func (n *NullAudioService) IsUnlocked() bool { return n.unlocked }

// IsMuted 实现 AudioService
func (n *NullAudioService) IsMuted() bool { return n.muted }

// ToggleMute 实现 AudioService
func (n *NullAudioService) ToggleMute() { n.muted = !n.muted }

// StartMusic 实现 AudioService
func (n *NullAudioService) StartMusic() { n.MusicStarted = true }

// StopMusic 实现 AudioService
func (n *NullAudioService) StopMusic() { n.MusicStopCount++ }

// PlayShot 实现 AudioService
func (n *NullAudioService) PlayShot() { n.ShotCount++ }

// PlayUse 实现 AudioService
func (n *NullAudioService) PlayUse() { n.UseCount++ }

// PlayHit 实现 AudioService
func (n *NullAudioService) PlayHit() { n.HitCount++ }
