package main

import (
	"flag"
	"log"

	"github.com/gonewx/confetti/pkg/app"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	effectFlag  = flag.String("effect", config.ConfettiEffectPath, "Embedded confetti effect config")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	contactApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		EffectPath: *effectFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(contactApp)

	// 退出时卸载场景，取消挂起的帧回调和提交
	contactApp.GetSceneManager().Close()

	if err != nil {
		log.Fatal(err)
	}
}
