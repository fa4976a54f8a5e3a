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

func TestFlushSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	seq, err := anim.NewFlushSequence(anim.DefaultFlushTimings())
	if err != nil {
		t.Fatalf("NewFlushSequence() error: %v", err)
	}
	id := newPart(em, 0, r3.Vector{}, game.KeyFlush)
	ecs.AddComponent(em, id, &components.FlushComponent{Sequence: seq})
	tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewFlushSystem(em, state)

	step := func(dt float64) {
		sys.Update(dt)
		state.Update(dt)
	}

	step(0.5)
	if tc.Pose.Scale != 1 {
		t.Fatalf("idle Scale = %v, want 1", tc.Pose.Scale)
	}

	state.Trigger(game.KeyFlush, seq.Timings().Total())
	step(0.75)
	if math.Abs(tc.Pose.Scale-0.5) > 1e-9 {
		t.Errorf("Scale halfway through draining = %v, want 0.5", tc.Pose.Scale)
	}
	if !(tc.Pose.Yaw < 0) {
		t.Errorf("water should spin while draining, Yaw = %v", tc.Pose.Yaw)
	}

	step(1.0)
	if seq.Phase() != anim.PhaseEmpty {
		t.Errorf("Phase() = %q, want %q", seq.Phase(), anim.PhaseEmpty)
	}
	if tc.Pose.Scale >= 0.1 {
		t.Errorf("empty bowl Scale = %v, want near 0", tc.Pose.Scale)
	}

	// 冲水过程中再次按下按钮被冷却拦截
	if state.Trigger(game.KeyFlush, seq.Timings().Total()) {
		t.Error("second flush during cooldown should be rejected")
	}

	for range 4 {
		step(0.5)
	}
	if seq.Running() {
		t.Error("flush should have finished")
	}
	if tc.Pose.Scale != 1 {
		t.Errorf("Scale after refill = %v, want 1", tc.Pose.Scale)
	}
}

// TestFlushSystemClickRightAfterCooldown 冷却结束后的第一帧点击必须开始新的冲水
// 帧顺序与场景一致：输入、动画、冷却
func TestFlushSystemClickRightAfterCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewApplianceState()
	seq, err := anim.NewFlushSequence(anim.DefaultFlushTimings())
	if err != nil {
		t.Fatalf("NewFlushSequence() error: %v", err)
	}
	id := newPart(em, 0, r3.Vector{}, game.KeyFlush)
	ecs.AddComponent(em, id, &components.FlushComponent{Sequence: seq})
	tc, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	sys := NewFlushSystem(em, state)

	const frame = 1.0 / 60
	cooldown := seq.Timings().Total()
	accepted := 0
	for i := range 400 {
		clicked := state.Trigger(game.KeyFlush, cooldown)
		sys.Update(frame)
		state.Update(frame)
		if !clicked {
			continue
		}
		accepted++
		if !seq.Running() || seq.Phase() != anim.PhaseDraining {
			t.Fatalf("frame %d: accepted click left running=%v phase=%q", i, seq.Running(), seq.Phase())
		}
		if !(tc.Pose.Scale < 1) {
			t.Fatalf("frame %d: water Scale = %v, want draining", i, tc.Pose.Scale)
		}
	}
	// 每 3 秒接受一次：第 0、约 180、约 360 帧
	if accepted != 3 {
		t.Errorf("accepted clicks = %d, want 3", accepted)
	}
}
