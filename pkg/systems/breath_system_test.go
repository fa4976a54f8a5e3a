package systems

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

func TestBreathSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	clock := &fakeClock{t: math.Pi / 2}
	on := colorful.Color{R: 1, G: 0.9, B: 0.6}
	off := colorful.Color{R: 0.27, G: 0.27, B: 0.27}

	id := newPart(em, 0, r3.Vector{}, game.KeyBedroomLamp)
	cloud := &components.PointCloudComponent{Points: []r3.Vector{{X: 1}}, Color: off}
	ecs.AddComponent(em, id, cloud)
	ecs.AddComponent(em, id, &components.BreathComponent{
		SpinY: 0.01, SpinZ: 0.002, Freq: 1, Amp: 0.05,
		OnColor: on, OffColor: off,
	})
	tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewBreathSystem(em, state, clock)

	t.Run("关闭时静止变暗", func(t *testing.T) {
		sys.Update(1.0 / 60)
		if tc.Pose.Yaw != 0 || tc.Pose.Roll != 0 || tc.Pose.Scale != 0 {
			t.Errorf("pose changed while off: %+v", tc.Pose)
		}
		if !sameColor(cloud.Color, off) {
			t.Errorf("cloud color = %v, want off", cloud.Color)
		}
	})

	t.Run("打开后旋转并呼吸", func(t *testing.T) {
		state.Set(game.KeyBedroomLamp, true)
		sys.Update(1.0 / 60)
		sys.Update(1.0 / 60)
		if math.Abs(tc.Pose.Yaw-0.02) > 1e-12 || math.Abs(tc.Pose.Roll-0.004) > 1e-12 {
			t.Errorf("Yaw/Roll = %v/%v, want 0.02/0.004", tc.Pose.Yaw, tc.Pose.Roll)
		}
		if math.Abs(tc.Pose.Scale-1.05) > 1e-12 {
			t.Errorf("Scale = %v, want 1.05", tc.Pose.Scale)
		}
		if !sameColor(cloud.Color, on) {
			t.Errorf("cloud color = %v, want on", cloud.Color)
		}
	})

	t.Run("暂停帧不旋转", func(t *testing.T) {
		yaw := tc.Pose.Yaw
		sys.Update(0)
		if tc.Pose.Yaw != yaw {
			t.Errorf("Yaw changed on dt=0: %v -> %v", yaw, tc.Pose.Yaw)
		}
	})

	t.Run("关闭后保持姿态", func(t *testing.T) {
		state.Set(game.KeyBedroomLamp, false)
		pose := tc.Pose
		sys.Update(1.0 / 60)
		if tc.Pose != pose {
			t.Errorf("pose changed after switching off: %+v -> %+v", pose, tc.Pose)
		}
		if !sameColor(cloud.Color, off) {
			t.Errorf("cloud color = %v, want off", cloud.Color)
		}
	})
}
