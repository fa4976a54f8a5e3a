package systems

import (
	"github.com/decker502/apartment/pkg/game"
)

// AudioSystem 音箱开关控制环境音乐
type AudioSystem struct {
	state   *game.ApplianceState
	audio   *game.AudioManager
	key     string
	playing bool
}

// NewAudioSystem 创建音频系统，key 为音箱开关键
// AudioManager 在场景重建之间共享，播放状态以它为准，
// 新场景的音箱是关闭的，上一个场景留下的音乐会在第一帧停止
func NewAudioSystem(state *game.ApplianceState, audio *game.AudioManager, key string) *AudioSystem {
	s := &AudioSystem{state: state, audio: audio, key: key}
	if audio != nil {
		s.playing = audio.IsPlaying()
	}
	return s
}

// Update 在开关变化时播放或停止
func (s *AudioSystem) Update(dt float64) {
	if s.audio == nil {
		return
	}
	on := s.state.IsOn(s.key)
	if on == s.playing {
		return
	}
	s.playing = on
	if on {
		s.audio.PlayMusic()
	} else {
		s.audio.StopMusic()
	}
}
