package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/entities"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/systems"
)

// ApartmentSceneOptions 创建公寓场景所需的依赖
type ApartmentSceneOptions struct {
	Config *config.ApartmentConfig
	// Clock 场景累计时间，由 App 每帧推进
	Clock systems.ElapsedSource
	// Rand 粒子和彩灯的随机源，固定种子可复现
	Rand *rand.Rand
	// Settings 用户设置，可为 nil
	Settings *game.SettingsManager
	// Audio 环境音乐，可为 nil（静音）
	Audio *game.AudioManager
	// Updates 配置热重载通道，可为 nil
	Updates <-chan *config.ApartmentConfig
	// Width/Height 初始视口尺寸
	Width, Height int
}

// ApartmentScene 公寓场景
//
// 每帧顺序：
//  1. 应用待处理的配置热重载
//  2. 输入（点击切换开关、相机操作）
//  3. 各动画系统读取开关状态并推进
//  4. 相机飞行、音乐
//  5. 触发器冷却
type ApartmentScene struct {
	cfg      *config.ApartmentConfig
	clock    systems.ElapsedSource
	rng      *rand.Rand
	state    *game.ApplianceState
	settings *game.SettingsManager
	audio    *game.AudioManager
	updates  <-chan *config.ApartmentConfig

	entityManager *ecs.EntityManager
	apartment     *entities.Apartment

	cameraSystem *systems.CameraSystem
	inputSystem  *systems.InputSystem
	renderSystem *systems.RenderSystem
	audioSystem  *systems.AudioSystem
	// animators 按注册顺序更新
	animators []animator

	hudFace       *text.GoTextFace
	width, height int
}

// animator 每帧推进的动画系统
type animator interface {
	Update(dt float64)
}

// NewApartmentScene 创建公寓场景
func NewApartmentScene(opts ApartmentSceneOptions) (*ApartmentScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("apartment config cannot be nil")
	}
	if opts.Clock == nil {
		return nil, fmt.Errorf("scene clock cannot be nil")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = opts.Config.Window.Width, opts.Config.Window.Height
	}

	hudFace, err := newHUDFace()
	if err != nil {
		return nil, err
	}

	s := &ApartmentScene{
		cfg:      opts.Config,
		clock:    opts.Clock,
		rng:      rng,
		state:    game.NewApplianceState(),
		settings: opts.Settings,
		audio:    opts.Audio,
		updates:  opts.Updates,
		hudFace:  hudFace,
		width:    width,
		height:   height,
	}
	if err := s.buildWorld(opts.Config); err != nil {
		return nil, err
	}
	s.audioSystem = systems.NewAudioSystem(s.state, s.audio, game.KeySpeaker)
	log.Printf("[ApartmentScene] Created (%dx%d, %d entities)", width, height, s.entityManager.Count())
	return s, nil
}

// buildWorld 创建实体和所有引用实体管理器的系统
func (s *ApartmentScene) buildWorld(cfg *config.ApartmentConfig) error {
	em := ecs.NewEntityManager()
	apartment, err := entities.BuildApartment(em, cfg, s.rng)
	if err != nil {
		return fmt.Errorf("failed to build apartment: %w", err)
	}

	camera := systems.NewCameraSystem(em, cfg.Camera, s.width, s.height)
	render, err := systems.NewRenderSystem(em, s.state, camera, game.KeyFloorLamp, cfg.Palette.Color(config.ColorBackdrop))
	if err != nil {
		return fmt.Errorf("failed to create render system: %w", err)
	}

	s.entityManager = em
	s.apartment = apartment
	s.cameraSystem = camera
	s.renderSystem = render
	s.inputSystem = systems.NewInputSystem(em, s.state, camera, s.settings, apartment.Floor)
	s.animators = []animator{
		systems.NewParticleSystem(em, s.state),
		systems.NewHingeSystem(em, s.state),
		systems.NewSpinSystem(em, s.state, s.clock),
		systems.NewFlushSystem(em, s.state),
		systems.NewBootSystem(em, s.state),
		systems.NewBlinkSystem(em, s.state, s.clock),
		systems.NewPulseSystem(em, s.state, s.clock),
		systems.NewGlowSystem(em, s.state, s.clock),
		systems.NewBreathSystem(em, s.state, s.clock),
	}
	return nil
}

// Update 推进一帧
func (s *ApartmentScene) Update(deltaTime float64) {
	s.applyPendingConfig()
	s.inputSystem.Update(deltaTime)
	s.step(deltaTime)
}

// step 输入之后的所有逐帧逻辑
func (s *ApartmentScene) step(dt float64) {
	for _, a := range s.animators {
		a.Update(dt)
	}
	s.cameraSystem.Update(dt)
	s.audioSystem.Update(dt)
	s.state.Update(dt)
}

// applyPendingConfig 在帧开始时应用热重载的配置
func (s *ApartmentScene) applyPendingConfig() {
	if s.updates == nil {
		return
	}
	select {
	case cfg := <-s.updates:
		if err := s.ApplyConfig(cfg); err != nil {
			log.Printf("[ApartmentScene] Warning: %v (keeping previous config)", err)
		}
	default:
	}
}

// ApplyConfig 用新配置重建场景内容
// 开关状态、相机视角和场景时间保持不变
func (s *ApartmentScene) ApplyConfig(cfg *config.ApartmentConfig) error {
	if cfg == nil {
		return fmt.Errorf("apartment config cannot be nil")
	}
	old := s.cameraSystem.Projection()
	if err := s.buildWorld(cfg); err != nil {
		return fmt.Errorf("failed to apply config: %w", err)
	}
	s.cfg = cfg

	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.cameraSystem.Entity())
	cam.Position, cam.Target = old.Eye, old.Target
	if s.audio != nil {
		s.audio.SetGain(cfg.Audio.Volume)
	}
	log.Printf("[ApartmentScene] Config applied (%d entities)", s.entityManager.Count())
	return nil
}

// Draw 绘制场景、提示文字和调试信息
func (s *ApartmentScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		s.width, s.height = b.Dx(), b.Dy()
		s.cameraSystem.SetViewport(s.width, s.height)
	}
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)
	if s.settings != nil && s.settings.GetSettings().ShowDebug {
		s.drawDebug(screen)
	}
}

// SaveOnExit 实现 game.Saveable，退出时保存用户设置
func (s *ApartmentScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.SaveIfDirty(); err != nil {
		log.Printf("[ApartmentScene] Warning: Failed to save settings: %v", err)
		return false
	}
	return true
}

// State 电器开关状态
func (s *ApartmentScene) State() *game.ApplianceState {
	return s.state
}

// Camera 相机系统
func (s *ApartmentScene) Camera() *systems.CameraSystem {
	return s.cameraSystem
}

// Input 输入系统
func (s *ApartmentScene) Input() *systems.InputSystem {
	return s.inputSystem
}

// Apartment 场景中的公寓实体
func (s *ApartmentScene) Apartment() *entities.Apartment {
	return s.apartment
}

// EntityManager 实体管理器
func (s *ApartmentScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Config 当前生效的配置
func (s *ApartmentScene) Config() *config.ApartmentConfig {
	return s.cfg
}
