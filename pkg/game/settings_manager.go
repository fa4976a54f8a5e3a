package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// UserSettings 用户偏好设置
// 注意：只保存偏好，不保存电器开关，每次启动所有电器都是关闭状态
type UserSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音箱音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 关闭后点击音箱只有灯光效果

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool `yaml:"showDebug"`  // F3 调试信息

	// 操作设置
	InvertOrbit bool `yaml:"invertOrbit"` // 反转拖动旋转方向
}

// DefaultSettings 返回默认设置
func DefaultSettings() *UserSettings {
	return &UserSettings{
		MusicVolume:  1.0,
		MusicEnabled: true,
		Fullscreen:   false,
		ShowDebug:    false,
		InvertOrbit:  false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *UserSettings
	dirty        bool
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// NewSettingsManager 创建新的设置管理器实例
//
// gdataManager 可为 nil（降级模式，仅内存设置）。
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
func (sm *SettingsManager) Load() error {
	sm.dirty = false
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值上解析，旧版本文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata，降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	sm.dirty = false
	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// SaveIfDirty 仅在设置被修改过时保存
func (sm *SettingsManager) SaveIfDirty() error {
	if !sm.dirty {
		return nil
	}
	return sm.Save()
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// SetMusicVolume 设置音量，限制在 0.0 ~ 1.0
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
	sm.dirty = true
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
	sm.dirty = true
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
	sm.dirty = true
}

// SetShowDebug 设置调试信息显示
func (sm *SettingsManager) SetShowDebug(enabled bool) {
	sm.settings.ShowDebug = enabled
	sm.dirty = true
}

// SetInvertOrbit 设置旋转方向反转
func (sm *SettingsManager) SetInvertOrbit(enabled bool) {
	sm.settings.InvertOrbit = enabled
	sm.dirty = true
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
