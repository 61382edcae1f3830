// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：安装插件、加载彩纸配置、
// 打开设置存储、创建联系页场景，并实现 ebiten.Game。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/game"
	"github.com/gonewx/confetti/pkg/scenes"
	"github.com/gonewx/confetti/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 设置存储使用的应用名
const AppName = "confetti"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// EffectPath 彩纸效果配置路径（嵌入文件系统内），为空使用默认路径
	EffectPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	frames                   *game.FrameScheduler
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 进程级插件只注册一次
	trigger := systems.DefaultScrollTrigger()
	if err := game.InstallPlugins(trigger); err != nil {
		return nil, fmt.Errorf("插件安装失败: %w", err)
	}

	effectPath := cfg.EffectPath
	if effectPath == "" {
		effectPath = config.ConfettiEffectPath
	}
	effect, err := particle.ParseEffectYAML(effectPath)
	if err != nil {
		return nil, fmt.Errorf("彩纸配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded effect %q (%d pieces, %v)", effect.Name, effect.Count, effect.Duration)

	// 设置存储不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	frames := game.NewFrameScheduler()
	contactScene, err := scenes.NewContactScene(scenes.ContactSceneConfig{
		Frames:         frames,
		Clock:          game.SystemClock{},
		Effect:         effect,
		Settings:       settings,
		Trigger:        trigger,
		ViewportWidth:  config.GameWindowWidth,
		ViewportHeight: config.GameWindowHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("联系页创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(contactScene)
	log.Printf("[App] Plugins installed: %v", game.InstalledPlugins())

	return &App{
		sceneManager: sceneManager,
		frames:       frames,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.step(1.0 / 60.0)
	return nil
}

// step 先执行本帧的帧回调（彩纸 tick），再更新场景
func (a *App) step(deltaTime float64) {
	a.frames.Pump()
	a.sceneManager.Update(deltaTime)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在应用关闭时卸载场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
