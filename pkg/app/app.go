// Package app 提供应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：配置加载、音频、用户设置、
// 场景管理和配置热重载都在这里组装。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/scenes"
	"github.com/decker502/apartment/pkg/utils"
)

// AppName gdata 存储目录名
const AppName = "apartment"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件，为空时使用嵌入的 data/apartment.yaml
	ConfigPath string
	// Watch 监听 ConfigPath 的修改并热重载（需要 ConfigPath）
	Watch bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 应用核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.ApartmentConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	audioManager *game.AudioManager
	frameClock   *game.FrameClock
	rng          *rand.Rand
	watcher      *config.Watcher
	updates      <-chan *config.ApartmentConfig
	verbose      bool
	mobile       bool

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口尺寸
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var watcher *config.Watcher
	if cfg.Watch {
		if cfg.ConfigPath == "" {
			return nil, fmt.Errorf("--watch requires --config")
		}
		watcher, err = config.WatchApartmentConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to start config watcher: %w", err)
		}
	}

	// 用户设置：gdata 不可用时降级为仅内存
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	var store *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
	} else {
		store = m
	}
	settings := game.NewSettingsManager(store)

	audioContext := audio.NewContext(sceneConfig.Audio.SampleRate)
	audioManager := game.NewAudioManager(game.NewAmbientPlayerFactory(audioContext), settings, sceneConfig.Audio.Volume)
	log.Printf("[App] AudioManager initialized (sample rate %d)", sceneConfig.Audio.SampleRate)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	a := &App{
		cfg:          sceneConfig,
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		audioManager: audioManager,
		frameClock:   game.NewFrameClock(clock.New(), game.DefaultMaxDelta),
		rng:          rand.New(rand.NewSource(seed)),
		watcher:      watcher,
		verbose:      cfg.Verbose,
		mobile:       utils.IsMobile(),
	}
	if watcher != nil {
		a.updates = watcher.Updates()
	}

	a.sceneManager.SetSceneFactory(a.newScene)
	if err := a.sceneManager.Rebuild(); err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, err
	}

	// 移动端没有窗口
	if a.mobile {
		return a, nil
	}
	ebiten.SetWindowSize(sceneConfig.Window.Width, sceneConfig.Window.Height)
	ebiten.SetWindowTitle(sceneConfig.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	return a, nil
}

// newScene 场景工厂，使用当前生效的配置
func (a *App) newScene() (game.Scene, error) {
	return scenes.NewApartmentScene(scenes.ApartmentSceneOptions{
		Config:   a.cfg,
		Clock:    a.frameClock,
		Rand:     a.rng,
		Settings: a.settings,
		Audio:    a.audioManager,
		Updates:  a.updates,
		Width:    a.cfg.Window.Width,
		Height:   a.cfg.Window.Height,
	})
}

// rebuildScene 重新创建场景，所有电器恢复关闭
// 热重载只更新了场景里的配置，重建前先取回，避免退回启动时的配置
func (a *App) rebuildScene() error {
	if current, ok := a.sceneManager.GetCurrentScene().(configuredScene); ok {
		if cfg := current.Config(); cfg != nil {
			a.cfg = cfg
		}
	}
	return a.sceneManager.Rebuild()
}

// configuredScene 可以报告当前配置的场景
type configuredScene interface {
	Config() *config.ApartmentConfig
}

func loadConfig(path string) (*config.ApartmentConfig, error) {
	if path == "" {
		cfg, err := config.LoadEmbeddedApartmentConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load default config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadApartmentConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	log.Printf("[App] Loaded config from %s", path)
	return cfg, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !a.mobile && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F5 重新创建场景（所有电器恢复关闭）
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.rebuildScene(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	_, dt := a.frameClock.Tick()
	a.sceneManager.Update(dt)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	a.settings.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 等窗口管理器处理完再设置尺寸
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口，控制缩放滤波和边框颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口，投影宽高比随之变化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.cfg.Window.Width, a.cfg.Window.Height
	}
	return outsideWidth, outsideHeight
}

// Close 保存设置并停止配置监听
func (a *App) Close() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: settings were not saved")
		}
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: failed to stop config watcher: %v", err)
		}
		a.watcher = nil
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
