package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/deadzone/pkg/app"
	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	level := flag.Int("level", 0, "start level index (0-based)")
	flag.Parse()

	// 嵌入资源必须先初始化，配置加载依赖它
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Dead Zone")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
