package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 配置热重载时用它重新构建场景
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Rebuild to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Rebuild 用工厂重新创建场景
// 创建失败时保留旧场景并返回错误
func (sm *SceneManager) Rebuild() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("failed to rebuild scene: scene factory not set")
	}
	scene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("failed to rebuild scene: %w", err)
	}
	if scene == nil {
		return fmt.Errorf("failed to rebuild scene: factory returned nil")
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Scene rebuilt")
	return nil
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
