package game

import (
	"encoding/binary"
	"math"
)

// ambientLoopSeconds 环境音乐循环长度
// 所有频率都是 1/ambientLoopSeconds Hz 的整数倍，循环接缝处没有爆音
const ambientLoopSeconds = 8

// ambientVoices 低音量的 A 小调和弦
var ambientVoices = []struct {
	freq float64
	gain float64
	pan  float64 // -1 左 ... 1 右
}{
	{110.000, 0.20, 0},
	{220.000, 0.14, -0.3},
	{261.625, 0.10, 0.3},
	{329.625, 0.08, -0.5},
	{440.000, 0.04, 0.5},
}

// SynthesizeAmbientTrack 生成一段可无缝循环的 16 位立体声 PCM
func SynthesizeAmbientTrack(sampleRate int) []byte {
	frames := sampleRate * ambientLoopSeconds
	buf := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		// 0.25Hz 的缓慢起伏，一个循环内两个周期
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*0.25*t)

		var left, right float64
		for _, v := range ambientVoices {
			s := math.Sin(2*math.Pi*v.freq*t) * v.gain * swell
			left += s * (1 - v.pan) / 2
			right += s * (1 + v.pan) / 2
		}
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(toPCM16(left)))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(toPCM16(right)))
	}
	return buf
}

func toPCM16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
