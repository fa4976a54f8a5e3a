package entities

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/systems"
)

func buildTestApartment(t *testing.T, seed int64) (*ecs.EntityManager, *Apartment) {
	t.Helper()
	em := ecs.NewEntityManager()
	apt, err := BuildApartment(em, config.DefaultApartmentConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("BuildApartment() error: %v", err)
	}
	return em, apt
}

func TestBuildApartmentInvalidArgs(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultApartmentConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		em   *ecs.EntityManager
		cfg  *config.ApartmentConfig
		rng  *rand.Rand
	}{
		{"实体管理器为空", nil, cfg, rng},
		{"配置为空", em, nil, rng},
		{"随机源为空", em, cfg, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildApartment(tt.em, tt.cfg, tt.rng); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBuildApartmentInvalidFieldConfig(t *testing.T) {
	cfg := config.DefaultApartmentConfig()
	cfg.Shower.Capacity = 0
	_, err := BuildApartment(ecs.NewEntityManager(), cfg, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected error for zero shower capacity")
	}
}

// TestBuildApartmentClickables 每个开关都有且只有一个可点击入口
func TestBuildApartmentClickables(t *testing.T) {
	em, apt := buildTestApartment(t, 1)

	want := []string{
		game.KeyTV, game.KeySpeaker, game.KeyFloorLamp, game.KeyPC,
		game.KeyCrystalBall, game.KeyBedroomLamp, game.KeyTree,
		game.KeySink, game.KeyShower, game.KeyShowerDoor,
		game.KeyFridgeLeft, game.KeyFridgeRight, game.KeyFlush, game.KeyChair,
		game.BurnerKey(0), game.BurnerKey(1), game.BurnerKey(2), game.BurnerKey(3),
	}
	got := make([]string, 0, len(apt.Clickables))
	for key := range apt.Clickables {
		got = append(got, key)
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("clickable keys mismatch (-want +got):\n%s", diff)
	}

	var all []string
	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](em) {
		c, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if !c.IsEnabled {
			t.Errorf("clickable %q should be enabled", c.Key)
		}
		if c.Bounds.IsEmpty() {
			t.Errorf("clickable %q has empty bounds", c.Key)
		}
		if apt.Clickables[c.Key] != id {
			t.Errorf("clickable %q: map points to %d, entity is %d", c.Key, apt.Clickables[c.Key], id)
		}
		all = append(all, c.Key)
	}
	sort.Strings(all)
	if len(all) != len(want) {
		t.Errorf("clickable entity count = %d, want %d (%v)", len(all), len(want), all)
	}
}

func TestBuildApartmentTriggers(t *testing.T) {
	em, apt := buildTestApartment(t, 1)

	tests := []struct {
		key      string
		kind     components.ClickKind
		cooldown float64
	}{
		{game.KeyFlush, components.ClickTrigger, 3},
		{game.KeyChair, components.ClickTrigger, 2 * math.Pi / 8},
		{game.KeyTV, components.ClickToggle, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, ok := ecs.GetComponent[*components.ClickableComponent](em, apt.Clickables[tt.key])
			if !ok {
				t.Fatalf("no clickable for %q", tt.key)
			}
			if c.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", c.Kind, tt.kind)
			}
			if math.Abs(c.Cooldown-tt.cooldown) > 1e-9 {
				t.Errorf("Cooldown = %v, want %v", c.Cooldown, tt.cooldown)
			}
		})
	}
}

// TestClickablesInsideApartment 所有可点击物体的世界位置都在地板范围内、人能够到的高度
func TestClickablesInsideApartment(t *testing.T) {
	em, apt := buildTestApartment(t, 1)

	for key, id := range apt.Clickables {
		c, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		center := systems.WorldBounds(em, id, c.Bounds).Center()
		if center.X < apt.Floor.Min.X || center.X > apt.Floor.Max.X ||
			center.Z < apt.Floor.Min.Z || center.Z > apt.Floor.Max.Z {
			t.Errorf("%s: center %v outside floor %v", key, center, apt.Floor)
		}
		if center.Y < FloorY || center.Y > FloorY+wallHeight {
			t.Errorf("%s: center height %.2f outside room", key, center.Y)
		}
	}
}

func TestBuildApartmentParticleFields(t *testing.T) {
	em, _ := buildTestApartment(t, 1)

	frozen := map[string]bool{}
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleFieldComponent, *components.ToggleComponent](em) {
		field, _ := ecs.GetComponent[*components.ParticleFieldComponent](em, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](em, id)
		frozen[toggle.Key] = field.FreezeWhenOff
		if field.Visible {
			t.Errorf("%s: field should start invisible", toggle.Key)
		}
	}
	want := map[string]bool{game.KeyShower: false, game.KeyCrystalBall: true}
	if diff := cmp.Diff(want, frozen); diff != "" {
		t.Errorf("particle fields mismatch (-want +got):\n%s", diff)
	}

	clouds := ecs.GetEntitiesWith3[*components.PointCloudComponent, *components.BreathComponent, *components.ToggleComponent](em)
	if len(clouds) != 1 {
		t.Fatalf("expected 1 lamp point cloud, got %d", len(clouds))
	}
	cloud, _ := ecs.GetComponent[*components.PointCloudComponent](em, clouds[0])
	if len(cloud.Points) != config.DefaultApartmentConfig().Lamp.Capacity {
		t.Errorf("lamp points = %d, want %d", len(cloud.Points), config.DefaultApartmentConfig().Lamp.Capacity)
	}
}

func TestBuildApartmentTreeLights(t *testing.T) {
	em, _ := buildTestApartment(t, 7)

	ids := ecs.GetEntitiesWith2[*components.BlinkLightsComponent, *components.MeshComponent](em)
	if len(ids) != 1 {
		t.Fatalf("expected 1 tree light entity, got %d", len(ids))
	}
	lights, _ := ecs.GetComponent[*components.BlinkLightsComponent](em, ids[0])
	mesh, _ := ecs.GetComponent[*components.MeshComponent](em, ids[0])
	bulbs := config.DefaultApartmentConfig().Tree.Bulbs
	if len(mesh.Boxes) != bulbs || len(lights.Oscillators) != bulbs || len(lights.Colors) != bulbs {
		t.Fatalf("bulb counts: boxes=%d oscillators=%d colors=%d, want %d",
			len(mesh.Boxes), len(lights.Oscillators), len(lights.Colors), bulbs)
	}
	for i, o := range lights.Oscillators {
		if o.Speed < 2 || o.Speed >= 5 {
			t.Errorf("bulb %d speed %.2f outside [2, 5)", i, o.Speed)
		}
	}

	// 相同种子生成相同的彩灯
	em2, _ := buildTestApartment(t, 7)
	ids2 := ecs.GetEntitiesWith1[*components.BlinkLightsComponent](em2)
	lights2, _ := ecs.GetComponent[*components.BlinkLightsComponent](em2, ids2[0])
	if diff := cmp.Diff(lights.Oscillators, lights2.Oscillators); diff != "" {
		t.Errorf("same seed should give same oscillators (-first +second):\n%s", diff)
	}
}

func TestBuildApartmentHiddenParts(t *testing.T) {
	em, _ := buildTestApartment(t, 1)

	hidden := 0
	for _, id := range ecs.GetEntitiesWith2[*components.VisibilityComponent, *components.MeshComponent](em) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
		if !mesh.Hidden {
			t.Errorf("entity %d: parts shown only when on should start hidden", id)
		}
		hidden++
	}
	// 洗手台水流 + 4 个火焰
	if hidden != 5 {
		t.Errorf("visibility-controlled parts = %d, want 5", hidden)
	}

	boots := ecs.GetEntitiesWith1[*components.BootComponent](em)
	if len(boots) != 1 {
		t.Fatalf("expected 1 boot screen, got %d", len(boots))
	}
	boot, _ := ecs.GetComponent[*components.BootComponent](em, boots[0])
	taskbar, ok := ecs.GetComponent[*components.MeshComponent](em, boot.Taskbar)
	if !ok || !taskbar.Hidden {
		t.Error("taskbar should exist and start hidden")
	}
}
