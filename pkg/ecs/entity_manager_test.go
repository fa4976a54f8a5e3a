package ecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 测试组件类型定义
type testTransform struct {
	X, Y, Z float64
}

type testToggle struct {
	Key string
}

type testGlow struct {
	Level float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("entity IDs = %d, %d; want 1, 2", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testTransform{X: 1, Y: 2, Z: 3})

	got, ok := GetComponent[*testTransform](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if *got != (testTransform{X: 1, Y: 2, Z: 3}) {
		t.Errorf("component = %+v", *got)
	}

	// 指针组件可原地修改
	got.Y = 5
	again, _ := GetComponent[*testTransform](em, id)
	if again.Y != 5 {
		t.Errorf("mutation not visible: Y = %v", again.Y)
	}

	if _, ok := GetComponent[*testToggle](em, id); ok {
		t.Error("missing component reported as found")
	}
	if _, ok := GetComponent[*testTransform](em, 999); ok {
		t.Error("unknown entity reported a component")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testToggle](em, id) {
		t.Error("should not have component before adding")
	}
	AddComponent(em, id, &testToggle{Key: "tv"})
	if !HasComponent[*testToggle](em, id) {
		t.Error("should have component after adding")
	}
	RemoveComponent[*testToggle](em, id)
	if HasComponent[*testToggle](em, id) {
		t.Error("component still present after RemoveComponent")
	}
}

func TestDestroyEntity_Deferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTransform{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("entity should survive until RemoveMarkedEntities")
	}
	em.RemoveMarkedEntities()
	if em.Exists(id) || HasComponent[*testTransform](em, id) {
		t.Error("entity should be gone after RemoveMarkedEntities")
	}
}

func TestGetEntitiesWith_SortedAndFiltered(t *testing.T) {
	em := NewEntityManager()
	var withBoth []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testTransform{X: float64(i)})
		if i%3 == 0 {
			AddComponent(em, id, &testToggle{Key: "lamp"})
			withBoth = append(withBoth, id)
		}
		if i%6 == 0 {
			AddComponent(em, id, &testGlow{})
		}
	}

	if got := GetEntitiesWith1[*testTransform](em); len(got) != 50 {
		t.Errorf("GetEntitiesWith1 returned %d entities, want 50", len(got))
	}
	if diff := cmp.Diff(withBoth, GetEntitiesWith2[*testTransform, *testToggle](em)); diff != "" {
		t.Errorf("GetEntitiesWith2 mismatch (-want +got):\n%s", diff)
	}

	three := GetEntitiesWith3[*testTransform, *testToggle, *testGlow](em)
	want := []EntityID{1, 7, 13, 19, 25, 31, 37, 43, 49}
	if diff := cmp.Diff(want, three); diff != "" {
		t.Errorf("GetEntitiesWith3 mismatch (-want +got):\n%s", diff)
	}
}
