package config

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette 命名颜色表（十六进制字符串）
type Palette map[string]string

// 调色板中的常用颜色名
const (
	ColorBase      = "base"
	ColorFabric    = "fabric"
	ColorLightOff  = "light_off"
	ColorLightOn   = "light_on"
	ColorLightWarm = "light_warm"
	ColorCabinet   = "cabinet"
	ColorDarkGold  = "dark_gold"
	ColorWall      = "wall"
	ColorFloor     = "floor"
	ColorLabel     = "label"
	ColorBackdrop  = "backdrop"
)

// DefaultPalette 返回默认配色
func DefaultPalette() Palette {
	return Palette{
		ColorBase:      "#1a1a1a",
		ColorFabric:    "#0f0f0f",
		ColorLightOff:  "#111111",
		ColorLightOn:   "#00d2ff",
		ColorLightWarm: "#ffaa55",
		ColorCabinet:   "#3e2723",
		ColorDarkGold:  "#b8860b",
		ColorWall:      "#dddddd",
		ColorFloor:     "#222222",
		ColorLabel:     "#555555",
		ColorBackdrop:  "#050505",
	}
}

// ParseColor 解析 "#rrggbb" 或 "#rgb"
func ParseColor(hex string) (colorful.Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// MustColor 解析颜色，格式错误时 panic（仅用于代码中的常量）
func MustColor(hex string) colorful.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Color 返回命名颜色，不存在或无法解析时返回品红色以便发现问题
func (p Palette) Color(name string) colorful.Color {
	if c, err := ParseColor(p[name]); err == nil {
		return c
	}
	return colorful.Color{R: 1, G: 0, B: 1}
}

// Validate 检查所有颜色可以解析
func (p Palette) Validate() error {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := ParseColor(p[name]); err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
	}
	return nil
}
