package systems

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

type renderFixture struct {
	em     *ecs.EntityManager
	state  *game.ApplianceState
	render *RenderSystem
	camera *CameraSystem
}

func newRenderFixture(t *testing.T) *renderFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	camera := NewCameraSystem(em, config.DefaultApartmentConfig().Camera, 800, 600)
	render, err := NewRenderSystem(em, state, camera, game.KeyFloorLamp, colorful.Color{})
	if err != nil {
		t.Fatalf("NewRenderSystem() error: %v", err)
	}
	return &renderFixture{em: em, state: state, render: render, camera: camera}
}

func (f *renderFixture) addBox(pos r3.Vector, c colorful.Color, emissive bool) *components.MeshComponent {
	id := newPart(f.em, 0, pos, "")
	mesh := &components.MeshComponent{Boxes: unitBoxes(1, c)}
	mesh.Boxes[0].Emissive = emissive
	ecs.AddComponent(f.em, id, mesh)
	return mesh
}

func TestRenderAmbient(t *testing.T) {
	f := newRenderFixture(t)
	if got := f.render.Ambient(); got != 0.5 {
		t.Errorf("Ambient() with lamp off = %v, want 0.5", got)
	}
	f.state.Set(game.KeyFloorLamp, true)
	if got := f.render.Ambient(); got != 0.8 {
		t.Errorf("Ambient() with lamp on = %v, want 0.8", got)
	}
}

func TestRenderCollectFaces(t *testing.T) {
	t.Run("背面剔除", func(t *testing.T) {
		f := newRenderFixture(t)
		f.addBox(r3.Vector{}, testGrey, false)
		f.render.collect(f.camera.Projection())
		// 相机在斜上方正前方，只能看到顶面和前面
		if f.render.LastFaces != 2 {
			t.Errorf("LastFaces = %d, want 2", f.render.LastFaces)
		}
	})

	t.Run("隐藏网格不绘制", func(t *testing.T) {
		f := newRenderFixture(t)
		f.addBox(r3.Vector{}, testGrey, false).Hidden = true
		f.render.collect(f.camera.Projection())
		if f.render.LastFaces != 0 || len(f.render.items) != 0 {
			t.Errorf("LastFaces = %d, items = %d, want 0", f.render.LastFaces, len(f.render.items))
		}
	})

	t.Run("相机背后的物体被裁掉", func(t *testing.T) {
		f := newRenderFixture(t)
		f.addBox(r3.Vector{Y: 30, Z: 50}, testGrey, false)
		f.render.collect(f.camera.Projection())
		if f.render.LastFaces != 0 {
			t.Errorf("LastFaces = %d, want 0", f.render.LastFaces)
		}
	})
}

// TestRenderPaintersOrder 远处的面先画
func TestRenderPaintersOrder(t *testing.T) {
	f := newRenderFixture(t)
	nearColor := colorful.Color{R: 1}
	farColor := colorful.Color{B: 1}
	f.addBox(r3.Vector{Z: 5}, nearColor, true)
	f.addBox(r3.Vector{Z: -10}, farColor, true)

	f.render.collect(f.camera.Projection())
	items := f.render.items
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].depth > items[i-1].depth {
			t.Fatalf("item %d depth %.2f is farther than item %d depth %.2f", i, items[i].depth, i-1, items[i-1].depth)
		}
	}
	if !sameColor(items[0].color, farColor) || !sameColor(items[len(items)-1].color, nearColor) {
		t.Errorf("first/last colors = %v/%v, want far then near", items[0].color, items[len(items)-1].color)
	}
}

func TestRenderShading(t *testing.T) {
	f := newRenderFixture(t)
	white := colorful.Color{R: 1, G: 1, B: 1}
	f.addBox(r3.Vector{}, white, false)
	f.addBox(r3.Vector{Z: -3}, white, true)

	f.render.collect(f.camera.Projection())
	lit, shaded := 0, 0
	for _, item := range f.render.items {
		if sameColor(item.color, white) {
			lit++
			continue
		}
		if item.color.R >= 1 {
			t.Errorf("shaded face %v should be darker than white", item.color)
		}
		shaded++
	}
	if lit != 2 || shaded != 2 {
		t.Errorf("emissive faces = %d, shaded faces = %d, want 2 and 2", lit, shaded)
	}
}

func TestRenderCollectParticles(t *testing.T) {
	f := newRenderFixture(t)
	field, err := anim.NewParticleField(anim.FieldConfig{
		Capacity: 50,
		Emitter:  anim.CylinderEmitter{Radius: 1, MinY: 0, MaxY: 2},
		Mode:     anim.FallWrap,
		Floor:    0,
		Ceiling:  2,
		Hidden:   -10,
		MaxSpeed: 0.1,
		Prefill:  true,
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewParticleField() error: %v", err)
	}
	id := newPart(f.em, 0, r3.Vector{}, game.KeyCrystalBall)
	pf := &components.ParticleFieldComponent{Field: field, Color: colorful.Color{R: 1, G: 1, B: 1}, Size: 0.05}
	ecs.AddComponent(f.em, id, pf)

	cloud := newPart(f.em, 0, r3.Vector{X: 2}, "")
	ecs.AddComponent(f.em, cloud, &components.PointCloudComponent{
		Points: []r3.Vector{{X: 0.5}, {Y: 0.5}, {Z: 0.5}},
		Size:   0.03,
	})

	f.render.collect(f.camera.Projection())
	if f.render.LastParticles != 3 {
		t.Errorf("LastParticles with field invisible = %d, want 3 (cloud only)", f.render.LastParticles)
	}

	pf.Visible = true
	f.render.collect(f.camera.Projection())
	if f.render.LastParticles != 53 {
		t.Errorf("LastParticles = %d, want 53", f.render.LastParticles)
	}
	for _, item := range f.render.items {
		if len(item.poly) != 4 {
			t.Fatalf("particle quad has %d corners, want 4", len(item.poly))
		}
	}
}
