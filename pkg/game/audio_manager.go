package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// MusicPlayer 播放器抽象，*audio.Player 满足该接口
// 测试中使用假实现，避免创建真实的 audio.Context
type MusicPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
}

// PlayerFactory 按需创建播放器
type PlayerFactory func() (MusicPlayer, error)

// NewAmbientPlayerFactory 返回生成循环环境音乐的播放器工厂
// ctx 为 nil 时返回 nil（无音频设备时的降级模式）
func NewAmbientPlayerFactory(ctx *audio.Context) PlayerFactory {
	if ctx == nil {
		return nil
	}
	return func() (MusicPlayer, error) {
		pcm := SynthesizeAmbientTrack(ctx.SampleRate())
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := ctx.NewPlayer(loop)
		if err != nil {
			return nil, fmt.Errorf("failed to create ambient player: %w", err)
		}
		return player, nil
	}
}

// AudioManager 音频管理器
// 职责：
//   - 音箱开关驱动环境音乐的播放和暂停
//   - 音量 = 用户设置音量 × 配置增益
//
// 播放器在第一次打开音箱时才创建，之后复用
type AudioManager struct {
	factory         PlayerFactory
	settingsManager *SettingsManager // 可为 nil
	gain            float64
	player          MusicPlayer
	failed          bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - factory: 播放器工厂，可为 nil（静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - gain: 配置文件中的音量增益
func NewAudioManager(factory PlayerFactory, sm *SettingsManager, gain float64) *AudioManager {
	return &AudioManager{
		factory:         factory,
		settingsManager: sm,
		gain:            clampVolume(gain),
	}
}

// PlayMusic 开始或继续播放环境音乐
//
// 返回：
//   - bool: 是否正在播放
func (am *AudioManager) PlayMusic() bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	player := am.ensurePlayer()
	if player == nil {
		return false
	}
	player.SetVolume(am.EffectiveVolume())
	if player.IsPlaying() {
		return true
	}
	player.Play()
	log.Printf("[AudioManager] Playing ambient music (volume: %.2f)", am.EffectiveVolume())
	return true
}

// StopMusic 暂停并回到开头，下次打开音箱从头播放
func (am *AudioManager) StopMusic() {
	if am.player == nil {
		return
	}
	if am.player.IsPlaying() {
		am.player.Pause()
	}
	if err := am.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
}

// IsPlaying 当前是否在播放
func (am *AudioManager) IsPlaying() bool {
	return am.player != nil && am.player.IsPlaying()
}

// SetMusicVolume 设置音量并立即应用到当前播放器
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.player != nil {
		am.player.SetVolume(am.EffectiveVolume())
	}
}

// SetGain 更新配置增益（配置热重载时调用）
func (am *AudioManager) SetGain(gain float64) {
	am.gain = clampVolume(gain)
	if am.player != nil {
		am.player.SetVolume(am.EffectiveVolume())
	}
}

// EffectiveVolume 实际输出音量
func (am *AudioManager) EffectiveVolume() float64 {
	volume := 1.0
	if am.settingsManager != nil {
		volume = am.settingsManager.GetSettings().MusicVolume
	}
	return clampVolume(volume * am.gain)
}

func (am *AudioManager) ensurePlayer() MusicPlayer {
	if am.player != nil {
		return am.player
	}
	if am.factory == nil || am.failed {
		return nil
	}
	player, err := am.factory()
	if err != nil {
		// 只尝试一次，避免每帧重复报错
		am.failed = true
		log.Printf("[AudioManager] Warning: %v", err)
		return nil
	}
	am.player = player
	return player
}
