package systems

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

func TestGlowSystemModes(t *testing.T) {
	blue := colorful.Color{R: 0.2, G: 0.4, B: 0.8}
	grey := colorful.Color{R: 0.2, G: 0.2, B: 0.2}

	tests := []struct {
		name string
		glow components.GlowComponent
		t    float64
		want colorful.Color
	}{
		{
			name: "固定颜色",
			glow: components.GlowComponent{Mode: components.GlowFixed, OnColor: blue, OffColor: grey},
			want: blue,
		},
		{
			name: "RGB 循环",
			glow: components.GlowComponent{Mode: components.GlowRGB, OffColor: grey},
			want: colorful.Color{R: 0.5, G: (math.Sin(2) + 1) / 2, B: (math.Sin(4) + 1) / 2},
		},
		{
			name: "闪烁最亮",
			glow: components.GlowComponent{Mode: components.GlowFlicker, OnColor: blue, Depth: 0.15, Flicker: anim.Oscillator{Speed: 1}},
			t:    math.Pi / 2,
			want: blue,
		},
		{
			name: "闪烁最暗",
			glow: components.GlowComponent{Mode: components.GlowFlicker, OnColor: blue, Depth: 0.15, Flicker: anim.Oscillator{Speed: 1}},
			t:    3 * math.Pi / 2,
			want: colorful.Color{R: 0.17, G: 0.34, B: 0.68},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			state := game.NewApplianceState()
			id := newPart(em, 0, r3.Vector{}, game.KeyTV)
			mesh := &components.MeshComponent{Boxes: unitBoxes(2, grey)}
			glow := tt.glow
			ecs.AddComponent(em, id, mesh)
			ecs.AddComponent(em, id, &glow)
			sys := NewGlowSystem(em, state, &fakeClock{t: tt.t})

			sys.Update(0)
			if !sameColor(mesh.Boxes[0].Color, glow.OffColor) || mesh.Boxes[0].Emissive {
				t.Errorf("off color = %v, want %v", mesh.Boxes[0].Color, glow.OffColor)
			}

			state.Set(game.KeyTV, true)
			sys.Update(0)
			for i, b := range mesh.Boxes {
				if !sameColor(b.Color, tt.want) || !b.Emissive {
					t.Errorf("box %d = %v emissive=%v, want %v", i, b.Color, b.Emissive, tt.want)
				}
			}
		})
	}
}

func TestGlowSystemOffEmissive(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newPart(em, 0, r3.Vector{}, game.KeySpeaker)
	mesh := &components.MeshComponent{Boxes: unitBoxes(1, colorful.Color{})}
	ecs.AddComponent(em, id, mesh)
	ecs.AddComponent(em, id, &components.GlowComponent{OffColor: colorful.Color{R: 1}, OffEmissive: true})

	NewGlowSystem(em, game.NewApplianceState(), &fakeClock{}).Update(0)
	if !mesh.Boxes[0].Emissive {
		t.Error("icon should stay emissive while off")
	}
}

func TestGlowSystemVisibility(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()

	flame := newPart(em, 0, r3.Vector{}, game.BurnerKey(0))
	flameMesh := &components.MeshComponent{Boxes: unitBoxes(1, colorful.Color{}), Hidden: true}
	ecs.AddComponent(em, flame, flameMesh)
	ecs.AddComponent(em, flame, &components.VisibilityComponent{})

	cover := newPart(em, 0, r3.Vector{}, game.BurnerKey(0))
	coverMesh := &components.MeshComponent{Boxes: unitBoxes(1, colorful.Color{})}
	ecs.AddComponent(em, cover, coverMesh)
	ecs.AddComponent(em, cover, &components.VisibilityComponent{Invert: true})

	sys := NewGlowSystem(em, state, &fakeClock{})
	sys.Update(0)
	if !flameMesh.Hidden || coverMesh.Hidden {
		t.Errorf("off: flame hidden=%v cover hidden=%v, want true/false", flameMesh.Hidden, coverMesh.Hidden)
	}

	state.Set(game.BurnerKey(0), true)
	sys.Update(0)
	if flameMesh.Hidden || !coverMesh.Hidden {
		t.Errorf("on: flame hidden=%v cover hidden=%v, want false/true", flameMesh.Hidden, coverMesh.Hidden)
	}
}
