package game

import (
	"fmt"
	"log"
	"sort"
)

// 电器开关键名
// 每个可点击物体对应一个键，开关状态只保存在内存中，重启后全部恢复为关闭
const (
	KeyTV          = "tv"
	KeySpeaker     = "speaker"
	KeyFloorLamp   = "floor_lamp"
	KeyPC          = "pc"
	KeyCrystalBall = "crystal_ball"
	KeyBedroomLamp = "bedroom_lamp"
	KeyTree        = "christmas_tree"
	KeySink        = "sink"
	KeyShower      = "shower"
	KeyShowerDoor  = "shower_door"
	KeyFridgeLeft  = "fridge_left"
	KeyFridgeRight = "fridge_right"

	// 一次性触发
	KeyFlush = "flush"
	KeyChair = "chair"
)

// BurnerKey 返回第 i 个灶头的键名（0=左前 1=右前 2=左后 3=右后）
func BurnerKey(i int) string {
	return fmt.Sprintf("burner_%d", i)
}

// ApplianceState 保存所有电器的开关和一次性触发状态
//
// 动画系统每帧只读这里的状态；只有输入系统通过 Toggle/Trigger 修改它。
// 触发成功只产生一帧的脉冲（JustTriggered），冷却期间重复触发被忽略。
type ApplianceState struct {
	toggles  map[string]bool
	triggers map[string]float64 // 剩余冷却时间（秒）
	fired    map[string]bool    // 本帧被接受的触发

	// OnChange 在开关状态变化时调用（可为 nil）
	OnChange func(key string, on bool)
}

// NewApplianceState 创建所有开关均为关闭的状态
func NewApplianceState() *ApplianceState {
	return &ApplianceState{
		toggles:  make(map[string]bool),
		triggers: make(map[string]float64),
		fired:    make(map[string]bool),
	}
}

// Toggle 翻转开关并返回新状态
func (s *ApplianceState) Toggle(key string) bool {
	on := !s.toggles[key]
	s.Set(key, on)
	return on
}

// Set 设置开关状态
func (s *ApplianceState) Set(key string, on bool) {
	if s.toggles[key] == on {
		return
	}
	s.toggles[key] = on
	log.Printf("[ApplianceState] %s -> %v", key, on)
	if s.OnChange != nil {
		s.OnChange(key, on)
	}
}

// IsOn 返回开关状态，未知键视为关闭
func (s *ApplianceState) IsOn(key string) bool {
	return s.toggles[key]
}

// Trigger 启动一次性触发，cooldown 秒内忽略再次触发
// 接受时本帧 JustTriggered 为 true；冷却中返回 false 且不重置冷却
func (s *ApplianceState) Trigger(key string, cooldown float64) bool {
	if s.triggers[key] > 0 {
		log.Printf("[ApplianceState] %s ignored (%.2fs cooldown left)", key, s.triggers[key])
		return false
	}
	if cooldown <= 0 {
		// 同一帧内不能重复触发
		cooldown = 1e-9
	}
	s.triggers[key] = cooldown
	s.fired[key] = true
	log.Printf("[ApplianceState] %s triggered", key)
	return true
}

// TriggerActive 返回触发器是否仍在冷却
func (s *ApplianceState) TriggerActive(key string) bool {
	return s.triggers[key] > 0
}

// JustTriggered 返回本帧是否有被接受的触发
// 动画系统据此启动一次动作，脉冲在帧末 Update 时清除
func (s *ApplianceState) JustTriggered(key string) bool {
	return s.fired[key]
}

// Update 在帧末清除触发脉冲并推进冷却时间
func (s *ApplianceState) Update(dt float64) {
	clear(s.fired)
	if !(dt > 0) {
		return
	}
	for key, left := range s.triggers {
		left -= dt
		if left <= 0 {
			delete(s.triggers, key)
			continue
		}
		s.triggers[key] = left
	}
}

// ActiveKeys 返回当前打开的开关（按名称排序）
func (s *ApplianceState) ActiveKeys() []string {
	keys := make([]string, 0, len(s.toggles))
	for k, on := range s.toggles {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
