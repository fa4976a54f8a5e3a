// Package ecs 提供场景使用的最小实体-组件存储。
//
// 组件按具体类型存放（通常是指针类型），查询结果按 EntityID 升序返回，
// 保证每帧系统遍历顺序确定，便于测试复现。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体，在帧末统一清理
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除（不立即删除）
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Exists reports whether id refers to a live entity.
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count returns the number of live entities.
func (em *EntityManager) Count() int {
	return len(em.components)
}

func (em *EntityManager) lookup(id EntityID, t reflect.Type) (any, bool) {
	compMap, exists := em.components[id]
	if !exists {
		return nil, false
	}
	comp, found := compMap[t]
	return comp, found
}

// entitiesWith 返回拥有全部指定类型组件的实体（按 ID 升序）
func (em *EntityManager) entitiesWith(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range types {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// AddComponent 为实体添加组件，同类型组件会被替换
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, ok := em.lookup(id, typeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.lookup(id, typeOf[T]())
	return ok
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, typeOf[T]())
	}
}

// GetEntitiesWith1 查询拥有 A 组件的实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有 A、B 组件的实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有 A、B、C 组件的实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
