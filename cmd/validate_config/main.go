// Package main 校验公寓场景配置文件
//
// 用法:
//
//	go run ./cmd/validate_config [--config data/apartment.yaml] [--build]
//
// 先解析并验证 YAML；加 --build 时再用该配置完整创建一次场景实体，
// 打印实体数量和所有可点击的开关键。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/entities"
)

func main() {
	path := flag.String("config", config.DefaultConfigPath, "配置文件路径")
	build := flag.Bool("build", false, "用配置创建场景实体")
	flag.Parse()

	cfg, err := config.LoadApartmentConfig(*path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确\n", *path)
	fmt.Printf("   窗口 %dx%d, 彩灯 %d, 叶片 %d, 雪花 %d\n",
		cfg.Window.Width, cfg.Window.Height, cfg.Tree.Bulbs, cfg.Turbine.Blades, cfg.Snow.Capacity)

	if !*build {
		return
	}

	em := ecs.NewEntityManager()
	apartment, err := entities.BuildApartment(em, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		fmt.Printf("❌ 创建场景失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 创建 %d 个实体\n", em.Count())

	keys := make([]string, 0, len(apartment.Clickables))
	for key := range apartment.Clickables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("   - %s (entity %d)\n", key, apartment.Clickables[key])
	}
}
