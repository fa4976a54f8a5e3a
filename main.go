package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/apartment/pkg/app"
	"github.com/decker502/apartment/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "场景配置文件（默认使用内置 data/apartment.yaml）")
	watch      = flag.Bool("watch", false, "监听 --config 文件并热重载")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := ebiten.RunGame(a); err != nil {
		a.Close()
		log.Fatal(err)
	}
}
