package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// Apartment 构建结果
type Apartment struct {
	// Root 所有房间的根实体
	Root ecs.EntityID
	// Floor 地板世界包围盒，右键飞行只接受落在其中的点
	Floor utils.AABB
	// Clickables 开关键 → 可点击实体
	Clickables map[string]ecs.EntityID
}

// BuildApartment 创建整个公寓
//
// 参数:
//   - em: 实体管理器
//   - cfg: 场景配置
//   - rng: 随机源（粒子初始位置、彩灯颜色和闪烁频率），固定种子可复现
//
// 返回:
//   - *Apartment: 根实体、地板范围和可点击实体表
//   - error: 粒子场或动画序列的参数无效时返回错误
func BuildApartment(em *ecs.EntityManager, cfg *config.ApartmentConfig, rng *rand.Rand) (*Apartment, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("apartment config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	b := newBuilder(em, cfg, rng)
	root := b.group(0, at(0, 0, 0))

	b.buildStructure(root)
	if err := b.buildBathroom(root); err != nil {
		return nil, fmt.Errorf("failed to build bathroom: %w", err)
	}
	b.buildKitchen(root)
	b.buildLivingRoom(root)
	if err := b.buildOffice(root); err != nil {
		return nil, fmt.Errorf("failed to build office: %w", err)
	}
	b.buildDining(root)
	if err := b.buildBedroom(root); err != nil {
		return nil, fmt.Errorf("failed to build bedroom: %w", err)
	}

	log.Printf("[Apartment] Built %d entities, %d interactive keys", em.Count(), len(b.clickables))
	return &Apartment{
		Root:       root,
		Floor:      FloorBounds(),
		Clickables: b.clickables,
	}, nil
}
