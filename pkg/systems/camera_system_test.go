package systems

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
)

func newTestCamera(t *testing.T) (*ecs.EntityManager, *CameraSystem, *components.CameraComponent) {
	t.Helper()
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, config.DefaultApartmentConfig().Camera, 800, 600)
	cam, ok := ecs.GetComponent[*components.CameraComponent](em, cs.Entity())
	if !ok {
		t.Fatal("camera entity has no CameraComponent")
	}
	return em, cs, cam
}

func settle(cs *CameraSystem) {
	for i := 0; i < 600 && cs.Flying(); i++ {
		cs.Update(1.0 / 60)
	}
}

func polarOf(cam *components.CameraComponent) float64 {
	offset := cam.Position.Sub(cam.Target)
	return math.Acos(offset.Y / offset.Norm())
}

func TestNewCameraSystem(t *testing.T) {
	_, cs, cam := newTestCamera(t)

	if diff := cmp.Diff(r3.Vector{Y: 15, Z: 25}, cam.Position); diff != "" {
		t.Errorf("Position mismatch (-want +got):\n%s", diff)
	}
	proj := cs.Projection()
	if proj.Width != 800 || proj.Height != 600 || proj.FOV != 45 {
		t.Errorf("Projection() = %+v, want 800x600 fov 45", proj)
	}

	cs.SetViewport(1024, 768)
	if proj := cs.Projection(); proj.Width != 1024 || proj.Height != 768 {
		t.Errorf("after SetViewport: %vx%v, want 1024x768", proj.Width, proj.Height)
	}
}

func TestCameraOrbit(t *testing.T) {
	t.Run("保持距离", func(t *testing.T) {
		_, cs, cam := newTestCamera(t)
		before := cam.Position.Norm()
		cs.Orbit(120, 30)
		if math.Abs(cam.Position.Norm()-before) > 1e-9 {
			t.Errorf("distance = %v, want %v", cam.Position.Norm(), before)
		}
	})

	t.Run("向下拖拽不能看到地板下方", func(t *testing.T) {
		_, cs, cam := newTestCamera(t)
		cs.Orbit(0, -1e6)
		if math.Abs(polarOf(cam)-math.Pi/1.8) > 1e-9 {
			t.Errorf("polar = %v, want clamp at π/1.8", polarOf(cam))
		}
	})

	t.Run("向上拖拽停在正上方附近", func(t *testing.T) {
		_, cs, cam := newTestCamera(t)
		cs.Orbit(0, 1e6)
		if math.Abs(polarOf(cam)-minPolar) > 1e-9 {
			t.Errorf("polar = %v, want %v", polarOf(cam), minPolar)
		}
	})

	t.Run("拖拽打断飞行", func(t *testing.T) {
		_, cs, _ := newTestCamera(t)
		cs.FlyTo(r3.Vector{X: 5, Y: 5, Z: 5}, r3.Vector{})
		cs.Orbit(1, 0)
		if cs.Flying() {
			t.Error("Orbit should cancel the fly-to")
		}
	})
}

func TestCameraZoom(t *testing.T) {
	tests := []struct {
		name  string
		steps float64
		want  float64
	}{
		{"拉近到最小距离", 1000, 1},
		{"拉远到最大距离", -1000, 60},
		{"一格滚轮", 1, math.Hypot(15, 25) * 0.9},
		{"无滚动", 0, math.Hypot(15, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cs, cam := newTestCamera(t)
			cs.Zoom(tt.steps)
			if got := cam.Position.Sub(cam.Target).Norm(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraFlyTo(t *testing.T) {
	_, cs, cam := newTestCamera(t)
	goal := r3.Vector{X: -10, Y: 3, Z: 4}
	look := r3.Vector{X: -10, Y: 1, Z: 0}

	start := cam.Position
	cs.FlyTo(goal, look)
	cs.Update(1.0 / 60)
	if !cs.Flying() {
		t.Fatal("should still be flying after one frame")
	}
	if cam.Position.Distance(goal) >= start.Distance(goal) {
		t.Error("camera should move toward the goal")
	}

	settle(cs)
	if cs.Flying() {
		t.Fatal("fly-to did not settle")
	}
	if d := cam.Position.Distance(goal); d > 0.1 {
		t.Errorf("Position %v is %.3f from goal", cam.Position, d)
	}
	if d := cam.Target.Distance(look); d > 0.1 {
		t.Errorf("Target %v is %.3f from goal", cam.Target, d)
	}

	// 停止后位置不再变化
	pos := cam.Position
	cs.Update(1.0 / 60)
	if cam.Position != pos {
		t.Error("camera moved after settling")
	}
}

func TestCameraFlyToFloorPoint(t *testing.T) {
	_, cs, cam := newTestCamera(t)
	cs.FlyToFloorPoint(r3.Vector{X: 5, Y: -2, Z: 3})

	if diff := cmp.Diff(r3.Vector{X: 5, Y: 1.7, Z: 3}, cam.GoalPosition); diff != "" {
		t.Errorf("GoalPosition mismatch (-want +got):\n%s", diff)
	}
	if cam.GoalTarget.Y != 1.0 {
		t.Errorf("GoalTarget.Y = %v, want look height 1.0", cam.GoalTarget.Y)
	}
	// 保持原来的水平朝向（看向 -Z）
	if !(cam.GoalTarget.Z < 3) || math.Abs(cam.GoalTarget.X-5) > 1e-9 {
		t.Errorf("GoalTarget = %v, want straight ahead along -Z", cam.GoalTarget)
	}
}

func TestCameraReset(t *testing.T) {
	_, cs, cam := newTestCamera(t)
	cs.Orbit(300, 50)
	cs.Zoom(3)
	cs.Reset()
	settle(cs)

	if d := cam.Position.Distance(r3.Vector{Y: 15, Z: 25}); d > 0.1 {
		t.Errorf("Position after Reset %v is %.3f from initial", cam.Position, d)
	}
}

func TestCameraApplyConfig(t *testing.T) {
	_, cs, cam := newTestCamera(t)
	pos := cam.Position
	cfg := config.DefaultApartmentConfig().Camera
	cfg.FOV = 60
	cfg.Position = config.Vec3{X: 1, Y: 2, Z: 3}
	cs.ApplyConfig(cfg)

	if cam.FOV != 60 {
		t.Errorf("FOV = %v, want 60", cam.FOV)
	}
	if cam.Position != pos {
		t.Error("ApplyConfig should not move the camera")
	}
}
