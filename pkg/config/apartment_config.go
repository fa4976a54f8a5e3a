package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/embedded"
)

// DefaultConfigPath 是嵌入的默认配置路径
const DefaultConfigPath = "data/apartment.yaml"

// ApartmentConfig 公寓场景的全部可调参数
//
// 配置文件位置: data/apartment.yaml（编译时嵌入，可用 --config 覆盖）。
// 未出现在 YAML 中的字段保留 DefaultApartmentConfig 的值。
type ApartmentConfig struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`

	// FurnitureScale 家具整体缩放（原场景为 0.9）
	FurnitureScale float64 `yaml:"furniture_scale"`

	Shower  ShowerConfig   `yaml:"shower"`
	Snow    SnowConfig     `yaml:"snow"`
	Lamp    LampConfig     `yaml:"lamp"`
	Doors   DoorConfig     `yaml:"doors"`
	Chair   ChairConfig    `yaml:"chair"`
	Flush   FlushConfig    `yaml:"flush"`
	Boot    anim.BootConfig `yaml:"boot"`
	Tree    TreeConfig     `yaml:"tree"`
	Turbine TurbineConfig  `yaml:"turbine"`
	Audio   AudioConfig    `yaml:"audio"`
	Palette Palette        `yaml:"palette"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Vec3 YAML 中的三维坐标
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// R3 转换为 r3.Vector
func (v Vec3) R3() r3.Vector { return r3.Vector{X: v.X, Y: v.Y, Z: v.Z} }

// CameraConfig 轨道相机配置
type CameraConfig struct {
	Position Vec3 `yaml:"position"` // 初始位置，空格键复位到此处
	Target   Vec3 `yaml:"target"`

	FOV  float64 `yaml:"fov"` // 垂直视角（度）
	Near float64 `yaml:"near"`

	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	MaxPolar    float64 `yaml:"max_polar"` // 弧度，限制不能看到地板下方

	FlyRate    float64 `yaml:"fly_rate"`    // 飞行插值速率
	FlyEpsilon float64 `yaml:"fly_epsilon"` // 距离小于该值时停止飞行
	EyeHeight  float64 `yaml:"eye_height"`  // 右键地板后的视点高度
	LookHeight float64 `yaml:"look_height"`

	OrbitSpeed float64 `yaml:"orbit_speed"` // 每像素旋转弧度
	ZoomStep   float64 `yaml:"zoom_step"`   // 每格滚轮的距离比例
}

// ShowerConfig 淋浴水流粒子
type ShowerConfig struct {
	Capacity   int     `yaml:"capacity"`
	Radius     float64 `yaml:"radius"`
	HeadHeight float64 `yaml:"head_height"`
	Jitter     float64 `yaml:"jitter"`
	Hidden     float64 `yaml:"hidden"`
	MinSpeed   float64 `yaml:"min_speed"` // 每帧下落距离
	MaxSpeed   float64 `yaml:"max_speed"`
	PointSize  float64 `yaml:"point_size"`
	Color      string  `yaml:"color"`
}

// SnowConfig 水晶球雪花粒子
type SnowConfig struct {
	Capacity  int     `yaml:"capacity"`
	Radius    float64 `yaml:"radius"`
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
	FallSpeed float64 `yaml:"fall_speed"` // 每帧
	Spin      float64 `yaml:"spin"`       // 每帧
	PointSize float64 `yaml:"point_size"`
	Color     string  `yaml:"color"`
}

// LampConfig 卧室粒子灯
type LampConfig struct {
	Capacity   int     `yaml:"capacity"`
	Radius     float64 `yaml:"radius"`
	SpinY      float64 `yaml:"spin_y"` // 每帧
	SpinZ      float64 `yaml:"spin_z"`
	BreathFreq float64 `yaml:"breath_freq"`
	BreathAmp  float64 `yaml:"breath_amp"`
	PointSize  float64 `yaml:"point_size"`
	OnColor    string  `yaml:"on_color"`
	OffColor   string  `yaml:"off_color"`
}

// DoorConfig 冰箱门和淋浴门
type DoorConfig struct {
	Rate        float64 `yaml:"rate"`
	FridgeAngle float64 `yaml:"fridge_angle"`
	ShowerAngle float64 `yaml:"shower_angle"`
}

// ChairConfig 电竞椅旋转
type ChairConfig struct {
	Speed float64 `yaml:"speed"` // 弧度/秒
}

// FlushConfig 马桶冲水
type FlushConfig struct {
	anim.FlushTimings `yaml:",inline"`
	// Cooldown 两次触发之间的最短间隔（秒），不能短于整个冲水过程
	Cooldown float64 `yaml:"cooldown"`
}

// TreeConfig 圣诞树彩灯
type TreeConfig struct {
	Bulbs      int     `yaml:"bulbs"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// TurbineConfig 音箱涡轮叶片
type TurbineConfig struct {
	Blades    int     `yaml:"blades"`
	Speed     float64 `yaml:"speed"`
	PhaseStep float64 `yaml:"phase_step"`
	Floor     float64 `yaml:"floor"`
	FadeRate  float64 `yaml:"fade_rate"` // 关闭后每帧向暗色插值的比例
}

// AudioConfig 音箱环境音乐
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// DefaultApartmentConfig 返回与原场景一致的默认参数
func DefaultApartmentConfig() *ApartmentConfig {
	return &ApartmentConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Apartment"},
		Camera: CameraConfig{
			Position:    Vec3{X: 0, Y: 15, Z: 25},
			Target:      Vec3{},
			FOV:         45,
			Near:        0.1,
			MinDistance: 1,
			MaxDistance: 60,
			MaxPolar:    math.Pi / 1.8,
			FlyRate:     3,
			FlyEpsilon:  0.1,
			EyeHeight:   1.7,
			LookHeight:  1.0,
			OrbitSpeed:  0.005,
			ZoomStep:    0.1,
		},
		FurnitureScale: 0.9,
		Shower: ShowerConfig{
			Capacity:   3000,
			Radius:     0.15,
			HeadHeight: 2.25,
			Jitter:     0.2,
			Hidden:     -10,
			MinSpeed:   0.15,
			MaxSpeed:   0.2,
			PointSize:  0.015,
			Color:      "#aaddff",
		},
		Snow: SnowConfig{
			Capacity:  200,
			Radius:    0.25,
			MinY:      -0.3,
			MaxY:      0.3,
			FallSpeed: 0.002,
			Spin:      0.001,
			PointSize: 0.02,
			Color:     "#ffffff",
		},
		Lamp: LampConfig{
			Capacity:   150,
			Radius:     0.25,
			SpinY:      0.005,
			SpinZ:      0.002,
			BreathFreq: 2,
			BreathAmp:  0.05,
			PointSize:  0.03,
			OnColor:    "#ffaa33",
			OffColor:   "#444444",
		},
		Doors: DoorConfig{
			Rate:        5,
			FridgeAngle: math.Pi / 2.5,
			ShowerAngle: -math.Pi / 2.5,
		},
		Chair: ChairConfig{Speed: 8},
		Flush: FlushConfig{
			FlushTimings: anim.DefaultFlushTimings(),
			Cooldown:     3,
		},
		Boot: anim.DefaultBootConfig(),
		Tree: TreeConfig{
			Bulbs:      40,
			MinSpeed:   2,
			MaxSpeed:   5,
			Saturation: 1,
			Lightness:  0.5,
		},
		Turbine: TurbineConfig{
			Blades:    12,
			Speed:     3,
			PhaseStep: 0.5,
			Floor:     0.2,
			FadeRate:  0.1,
		},
		Audio:   AudioConfig{SampleRate: 44100, Volume: 0.5},
		Palette: DefaultPalette(),
	}
}

// ParseApartmentConfig 在默认配置之上解析 YAML 并验证
func ParseApartmentConfig(data []byte) (*ApartmentConfig, error) {
	cfg := DefaultApartmentConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse apartment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid apartment config: %w", err)
	}
	return cfg, nil
}

// LoadApartmentConfig 从文件系统加载配置
func LoadApartmentConfig(path string) (*ApartmentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read apartment config: %w", err)
	}
	return ParseApartmentConfig(data)
}

// LoadEmbeddedApartmentConfig 加载编译时嵌入的默认配置
func LoadEmbeddedApartmentConfig() (*ApartmentConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded apartment config: %w", err)
	}
	return ParseApartmentConfig(data)
}

// Validate 验证配置有效性
func (c *ApartmentConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.FOV > 0 && cam.FOV < 180, "camera fov must be in (0, 180), got %.1f", cam.FOV)
	check(cam.Near > 0, "camera near plane must be positive, got %g", cam.Near)
	check(cam.MinDistance > 0 && cam.MinDistance <= cam.MaxDistance,
		"camera distance range invalid: min(%.1f) max(%.1f)", cam.MinDistance, cam.MaxDistance)
	check(cam.MaxPolar > 0 && cam.MaxPolar < math.Pi, "camera max polar must be in (0, pi), got %g", cam.MaxPolar)
	check(cam.FlyRate > 0, "camera fly rate must be positive, got %g", cam.FlyRate)
	check(cam.FlyEpsilon > 0, "camera fly epsilon must be positive, got %g", cam.FlyEpsilon)

	check(c.FurnitureScale > 0, "furniture scale must be positive, got %g", c.FurnitureScale)

	check(c.Shower.Capacity > 0, "shower capacity must be positive, got %d", c.Shower.Capacity)
	check(c.Shower.Radius > 0, "shower radius must be positive, got %g", c.Shower.Radius)
	check(c.Shower.MinSpeed >= 0 && c.Shower.MinSpeed <= c.Shower.MaxSpeed,
		"shower speed range invalid: min(%g) > max(%g)", c.Shower.MinSpeed, c.Shower.MaxSpeed)
	check(c.Shower.Hidden < 0, "shower hidden y must be below the floor, got %g", c.Shower.Hidden)

	check(c.Snow.Capacity > 0, "snow capacity must be positive, got %d", c.Snow.Capacity)
	check(c.Snow.MinY < c.Snow.MaxY, "snow y range invalid: min(%g) >= max(%g)", c.Snow.MinY, c.Snow.MaxY)
	check(c.Snow.FallSpeed >= 0, "snow fall speed must not be negative, got %g", c.Snow.FallSpeed)

	check(c.Lamp.Capacity > 0, "lamp capacity must be positive, got %d", c.Lamp.Capacity)
	check(c.Lamp.BreathAmp >= 0 && c.Lamp.BreathAmp < 1, "lamp breath amplitude must be in [0, 1), got %g", c.Lamp.BreathAmp)

	check(c.Doors.Rate > 0, "door rate must be positive, got %g", c.Doors.Rate)
	check(c.Chair.Speed > 0, "chair speed must be positive, got %g", c.Chair.Speed)

	check(c.Flush.Drain > 0 && c.Flush.Empty > 0 && c.Flush.Refill > 0,
		"flush durations must be positive, got %+v", c.Flush.FlushTimings)
	check(c.Flush.Cooldown >= c.Flush.Total(),
		"flush cooldown (%g) must cover the whole flush (%g)", c.Flush.Cooldown, c.Flush.Total())

	if err := c.Boot.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("boot: %w", err))
	}

	check(c.Tree.Bulbs >= 0, "tree bulb count must not be negative, got %d", c.Tree.Bulbs)
	check(c.Tree.MinSpeed <= c.Tree.MaxSpeed,
		"tree speed range invalid: min(%g) > max(%g)", c.Tree.MinSpeed, c.Tree.MaxSpeed)

	check(c.Turbine.Blades > 0, "turbine blade count must be positive, got %d", c.Turbine.Blades)
	check(c.Turbine.Floor >= 0 && c.Turbine.Floor <= 1, "turbine floor must be in [0, 1], got %g", c.Turbine.Floor)
	check(c.Turbine.FadeRate > 0 && c.Turbine.FadeRate <= 1, "turbine fade rate must be in (0, 1], got %g", c.Turbine.FadeRate)

	check(c.Audio.SampleRate > 0, "audio sample rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio volume must be in [0, 1], got %g", c.Audio.Volume)

	for _, hex := range []struct{ name, value string }{
		{"shower.color", c.Shower.Color},
		{"snow.color", c.Snow.Color},
		{"lamp.on_color", c.Lamp.OnColor},
		{"lamp.off_color", c.Lamp.OffColor},
	} {
		if _, err := ParseColor(hex.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hex.name, err))
		}
	}
	if err := c.Palette.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
