package systems

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

func TestHingeSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	id := newPart(em, 0, r3.Vector{}, game.KeyFridgeLeft)
	ecs.AddComponent(em, id, &components.HingeComponent{
		Angle:     anim.SmoothedValue{Rate: 5},
		OpenAngle: -math.Pi / 2,
	})
	tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewHingeSystem(em, state)

	t.Run("关闭时保持原位", func(t *testing.T) {
		sys.Update(1.0 / 60)
		if tc.Pose.Yaw != 0 {
			t.Errorf("Yaw = %v, want 0", tc.Pose.Yaw)
		}
	})

	t.Run("打开后趋向开门角度", func(t *testing.T) {
		state.Set(game.KeyFridgeLeft, true)
		sys.Update(1.0 / 60)
		first := tc.Pose.Yaw
		if !(first < 0 && first > -math.Pi/2) {
			t.Fatalf("Yaw after one frame = %v, want between -π/2 and 0", first)
		}
		for range 300 {
			sys.Update(1.0 / 60)
		}
		if math.Abs(tc.Pose.Yaw+math.Pi/2) > 1e-3 {
			t.Errorf("Yaw = %v, want ≈ -π/2", tc.Pose.Yaw)
		}
	})

	t.Run("暂停帧不移动", func(t *testing.T) {
		state.Set(game.KeyFridgeLeft, false)
		before := tc.Pose.Yaw
		sys.Update(0)
		if tc.Pose.Yaw != before {
			t.Errorf("Yaw changed on dt=0: %v -> %v", before, tc.Pose.Yaw)
		}
	})

	t.Run("关门回到零度", func(t *testing.T) {
		for range 300 {
			sys.Update(1.0 / 60)
		}
		if math.Abs(tc.Pose.Yaw) > 1e-3 {
			t.Errorf("Yaw = %v, want ≈ 0", tc.Pose.Yaw)
		}
	})
}
