package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDText 屏幕底部的操作提示
const HUDText = "Click & Drag to move • Click items to interact"

const (
	hudFontSize = 16
	hudPadding  = 10
	hudMargin   = 20
)

var hudBackground = color.RGBA{A: 140}

func newHUDFace() (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: hudFontSize}, nil
}

// drawHUD 底部居中的半透明提示条
func (s *ApartmentScene) drawHUD(screen *ebiten.Image) {
	w, h := text.Measure(HUDText, s.hudFace, 0)
	x := (float64(s.width) - w) / 2
	y := float64(s.height) - h - hudMargin

	vector.DrawFilledRect(screen,
		float32(x-hudPadding), float32(y-hudPadding/2),
		float32(w+2*hudPadding), float32(h+hudPadding),
		hudBackground, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, HUDText, s.hudFace, op)
}

// debugText F3 调试信息
func (s *ApartmentScene) debugText() string {
	active := s.state.ActiveKeys()
	on := "-"
	if len(active) > 0 {
		on = strings.Join(active, ", ")
	}
	proj := s.cameraSystem.Projection()
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nEntities: %d  Faces: %d  Particles: %d\nCamera: (%.1f, %.1f, %.1f)\nOn: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.entityManager.Count(), s.renderSystem.LastFaces, s.renderSystem.LastParticles,
		proj.Eye.X, proj.Eye.Y, proj.Eye.Z,
		on)
}

func (s *ApartmentScene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.debugText(), 10, 10)
}
