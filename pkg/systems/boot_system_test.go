package systems

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

func TestBootSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	cfg := anim.DefaultBootConfig()
	seq, err := anim.NewBootSequence(cfg)
	if err != nil {
		t.Fatalf("NewBootSequence() error: %v", err)
	}

	off := colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	booting := colorful.Color{B: 0.13}
	desktop := colorful.Color{R: 0.16, G: 0.36, B: 0.67}

	taskbar := newPart(em, 0, r3.Vector{}, "")
	taskbarMesh := &components.MeshComponent{Boxes: unitBoxes(1, off), Hidden: true}
	ecs.AddComponent(em, taskbar, taskbarMesh)

	screen := newPart(em, 0, r3.Vector{}, game.KeyPC)
	mesh := &components.MeshComponent{Boxes: unitBoxes(1, off)}
	label := &components.LabelComponent{}
	ecs.AddComponent(em, screen, mesh)
	ecs.AddComponent(em, screen, label)
	ecs.AddComponent(em, screen, &components.BootComponent{
		Sequence:     seq,
		OffColor:     off,
		BootingColor: booting,
		OnColor:      desktop,
		Taskbar:      taskbar,
	})
	sys := NewBootSystem(em, state)

	t.Run("关机", func(t *testing.T) {
		sys.Update(0.1)
		if !sameColor(mesh.Boxes[0].Color, off) || mesh.Boxes[0].Emissive {
			t.Errorf("screen = %v emissive=%v, want dark off color", mesh.Boxes[0].Color, mesh.Boxes[0].Emissive)
		}
		if label.Text != "" {
			t.Errorf("label = %q, want empty", label.Text)
		}
	})

	t.Run("开机自检", func(t *testing.T) {
		state.Set(game.KeyPC, true)
		sys.Update(0.5)
		if seq.State() != anim.BootBooting {
			t.Fatalf("State() = %v, want booting", seq.State())
		}
		if !sameColor(mesh.Boxes[0].Color, booting) || !mesh.Boxes[0].Emissive {
			t.Errorf("screen = %v, want booting color", mesh.Boxes[0].Color)
		}
		if !strings.HasPrefix(label.Text, cfg.Lines[0]) {
			t.Errorf("label = %q, want first boot line", label.Text)
		}
		if !taskbarMesh.Hidden {
			t.Error("taskbar should stay hidden while booting")
		}
	})

	t.Run("进入桌面", func(t *testing.T) {
		for range 40 {
			sys.Update(0.1)
		}
		if seq.State() != anim.BootOn {
			t.Fatalf("State() = %v, want on", seq.State())
		}
		if !sameColor(mesh.Boxes[0].Color, desktop) {
			t.Errorf("screen = %v, want desktop color", mesh.Boxes[0].Color)
		}
		if label.Text != "" {
			t.Errorf("label = %q, want cleared on desktop", label.Text)
		}
		if taskbarMesh.Hidden {
			t.Error("taskbar should be shown on desktop")
		}
	})

	t.Run("再次关机", func(t *testing.T) {
		state.Set(game.KeyPC, false)
		sys.Update(0.1)
		if seq.State() != anim.BootOff {
			t.Errorf("State() = %v, want off", seq.State())
		}
		if !taskbarMesh.Hidden {
			t.Error("taskbar should hide again")
		}
	})
}
