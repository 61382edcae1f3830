package scenes

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/components"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/ecs"
	"github.com/gonewx/confetti/pkg/entities"
	"github.com/gonewx/confetti/pkg/game"
	"github.com/gonewx/confetti/pkg/systems"
	"github.com/gonewx/confetti/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ContactSceneConfig 联系页依赖
type ContactSceneConfig struct {
	Frames    game.FrameRequester // 必填，彩纸逐帧回调
	Clock     game.Clock          // 为空时使用系统时钟
	Effect    *particle.Effect    // 为空时使用默认彩纸效果
	Settings  *game.SettingsManager
	Trigger   *systems.ScrollTriggerPlugin // 为空时入场动画直接播放
	Submitter Submitter                    // 为空时使用 LogSubmitter

	// ReadInput 每帧读取输入，为空时读取真实键盘鼠标
	ReadInput func() utils.PageInput

	ViewportWidth  float64
	ViewportHeight float64
}

// ContactScene 联系页
//
// 表单提交成功后拉高激活信号 5 秒，期间播放彩纸；
// 页面内容块随滚动触发入场动画。
type ContactScene struct {
	settings  *game.SettingsManager
	submitter Submitter
	readInput func() utils.PageInput

	confetti       *systems.ConfettiSystem
	confettiRender *systems.ConfettiRenderSystem
	signal         *systems.ActivationSignal

	entityManager *ecs.EntityManager
	revealSystem  *systems.RevealSystem

	viewportWidth  float64
	viewportHeight float64
	scrollY        float64

	form    ContactForm
	sending bool
	results chan error
	status  string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewContactScene 创建联系页并布置内容块
func NewContactScene(cfg ContactSceneConfig) (*ContactScene, error) {
	if cfg.Frames == nil {
		return nil, fmt.Errorf("contact scene: frame requester cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = game.SystemClock{}
	}
	if cfg.Settings == nil {
		cfg.Settings = game.NewSettingsManager(nil)
	}
	if cfg.Submitter == nil {
		cfg.Submitter = LogSubmitter{}
	}
	if cfg.ReadInput == nil {
		cfg.ReadInput = func() utils.PageInput { return utils.ReadPageInput(config.ScrollStep) }
	}
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		cfg.ViewportWidth, cfg.ViewportHeight = config.GameWindowWidth, config.GameWindowHeight
	}

	confetti := systems.NewConfettiSystem(cfg.Frames, cfg.Clock, cfg.Effect, nil)
	em := ecs.NewEntityManager()

	ctx, cancel := context.WithCancel(context.Background())
	s := &ContactScene{
		settings:       cfg.Settings,
		submitter:      cfg.Submitter,
		readInput:      cfg.ReadInput,
		confetti:       confetti,
		confettiRender: systems.NewConfettiRenderSystem(confetti),
		signal:         systems.NewActivationSignal(cfg.Clock, confetti),
		entityManager:  em,
		revealSystem:   systems.NewRevealSystem(em, cfg.Trigger, cfg.ViewportHeight),
		viewportWidth:  cfg.ViewportWidth,
		viewportHeight: cfg.ViewportHeight,
		form:           DefaultContactForm(),
		results:        make(chan error, 1),
		ctx:            ctx,
		cancel:         cancel,
	}
	s.signal.SetEnabled(cfg.Settings.GetSettings().EffectsEnabled)

	if err := buildContactPage(em, cfg.ViewportWidth); err != nil {
		cancel()
		return nil, fmt.Errorf("contact scene: %w", err)
	}

	log.Printf("[ContactScene] Created (%d blocks, theme=%s)", em.Count(), cfg.Settings.GetSettings().Theme)
	return s, nil
}

// sectionBlock 返回第 i 个内容块的页面布局
func sectionBlock(i int, viewportWidth float64) components.PageBlockComponent {
	return components.PageBlockComponent{
		X:      config.SectionMarginX,
		Y:      config.SectionTop + float64(i)*(config.SectionHeight+config.SectionGap),
		Width:  viewportWidth - 2*config.SectionMarginX,
		Height: config.SectionHeight,
		Title:  config.ContactSectionTitles[i],
		Lines:  config.ContactSectionLines[i],
	}
}

// buildContactPage 自上而下创建内容块及其入场动画
func buildContactPage(em *ecs.EntityManager, viewportWidth float64) error {
	if _, err := entities.NewFadeInUp(em, sectionBlock(0, viewportWidth), entities.RevealOptions{}); err != nil {
		return err
	}
	if _, err := entities.NewSlideInLeft(em, sectionBlock(1, viewportWidth), entities.RevealOptions{}); err != nil {
		return err
	}

	// 联系方式卡片：整组共用一个触发区间
	cards := []components.PageBlockComponent{
		sectionBlock(2, viewportWidth),
		sectionBlock(3, viewportWidth),
		sectionBlock(4, viewportWidth),
	}
	container := cards[0]
	container.Height = cards[2].Y + cards[2].Height - cards[0].Y
	if _, err := entities.NewStaggerFadeIn(em, container, cards, config.RevealDefaultStagger, entities.RevealOptions{}); err != nil {
		return err
	}

	if _, err := entities.NewSlideInRight(em, sectionBlock(5, viewportWidth), entities.RevealOptions{}); err != nil {
		return err
	}
	if _, err := entities.NewScaleIn(em, sectionBlock(6, viewportWidth), entities.RevealOptions{}); err != nil {
		return err
	}
	return nil
}

// Update 处理输入、提交结果、信号超时和入场动画
// 彩纸的逐帧推进由 App 泵动 FrameScheduler 完成
func (s *ContactScene) Update(deltaTime float64) {
	in := s.readInput()
	s.handleInput(in)
	s.pollSubmission()
	s.signal.Update()

	s.revealSystem.SetScroll(s.scrollY)
	s.revealSystem.Update(deltaTime)
}

func (s *ContactScene) handleInput(in utils.PageInput) {
	if in.Scroll != 0 {
		s.scrollY = utils.ClampScroll(s.scrollY+in.Scroll, config.PageHeight, s.viewportHeight)
	}

	if in.ToggleTheme {
		theme, err := s.settings.ToggleTheme()
		if err != nil {
			log.Printf("[ContactScene] Warning: failed to save theme: %v", err)
		}
		log.Printf("[ContactScene] Theme switched to %s", theme)
	}

	if in.ToggleEffects {
		enabled := !s.settings.GetSettings().EffectsEnabled
		s.settings.SetEffectsEnabled(enabled)
		if err := s.settings.Save(); err != nil {
			log.Printf("[ContactScene] Warning: failed to save settings: %v", err)
		}
		s.signal.SetEnabled(enabled)
		log.Printf("[ContactScene] Effects enabled: %v", enabled)
	}

	if in.Dismiss {
		s.signal.Lower()
	}

	if in.Submit || (in.Clicked && image.Pt(in.X, in.Y).In(s.sendButtonRect())) {
		s.submit()
	}
}

// submit 校验表单并在后台发送
func (s *ContactScene) submit() {
	if s.sending {
		return
	}
	if err := s.form.Validate(); err != nil {
		log.Printf("[ContactScene] Invalid form: %v", err)
		s.status = config.ContactInvalidMessage
		return
	}

	s.sending = true
	s.status = config.ContactSendingMessage

	form := s.form
	timeout := time.Duration(config.ContactSubmitTimeoutSeconds * float64(time.Second))
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, timeout)
		defer cancel()
		err := s.submitter.Submit(ctx, form)
		select {
		case s.results <- err:
		case <-s.ctx.Done():
		}
	}()
}

// pollSubmission 非阻塞地取回提交结果
func (s *ContactScene) pollSubmission() {
	select {
	case err := <-s.results:
		s.sending = false
		if err != nil {
			log.Printf("[ContactScene] Submit failed: %v", err)
			s.status = config.ContactFailureMessage
			return
		}
		s.status = config.ContactSuccessMessage
		s.form = DefaultContactForm()
		s.signal.Pulse(time.Duration(config.ContactSuccessDisplaySeconds * float64(time.Second)))
	default:
	}
}

// Teardown 离开场景时停止彩纸并取消进行中的提交
func (s *ContactScene) Teardown() {
	s.cancel()
	s.signal.Lower()
	s.confetti.Close()
	log.Printf("[ContactScene] Teardown")
}

// Status 返回当前提示文案
func (s *ContactScene) Status() string {
	return s.status
}

// Sending 是否有提交正在进行
func (s *ContactScene) Sending() bool {
	return s.sending
}

// ScrollY 返回当前滚动位置
func (s *ContactScene) ScrollY() float64 {
	return s.scrollY
}

// Confetti 返回场景持有的彩纸系统
func (s *ContactScene) Confetti() *systems.ConfettiSystem {
	return s.confetti
}

// Signal 返回驱动彩纸的激活信号
func (s *ContactScene) Signal() *systems.ActivationSignal {
	return s.signal
}

// SetForm 替换待提交的表单
func (s *ContactScene) SetForm(form ContactForm) {
	s.form = form
}

func (s *ContactScene) sendButtonRect() image.Rectangle {
	x := int(s.viewportWidth)/2 - config.ContactButtonWidth/2
	y := int(s.viewportHeight) - config.ContactButtonMarginBottom - config.ContactButtonHeight
	return image.Rect(x, y, x+config.ContactButtonWidth, y+config.ContactButtonHeight)
}

// Draw 绘制顺序：背景 → 内容块 → 彩纸 → 按钮与提示
func (s *ContactScene) Draw(screen *ebiten.Image) {
	th := themeFor(s.settings.IsDark())
	screen.Fill(th.background)

	for _, id := range ecs.GetEntitiesWith2[*components.PageBlockComponent, *components.RevealComponent](s.entityManager) {
		block, _ := ecs.GetComponent[*components.PageBlockComponent](s.entityManager, id)
		rc, _ := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		s.drawBlock(screen, th, block, rc)
	}

	s.confettiRender.Draw(screen)

	btn := s.sendButtonRect()
	btnColor := th.accent
	if s.sending {
		btnColor = th.muted
	}
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), btnColor, true)
	ebitenutil.DebugPrintAt(screen, "Send Message", btn.Min.X+36, btn.Min.Y+12)

	if s.status != "" {
		ebitenutil.DebugPrintAt(screen, s.status, btn.Min.X-120, btn.Max.Y+8)
	}
	ebitenutil.DebugPrintAt(screen, "[Enter] send  [Esc] stop  [T] theme  [E] effects  [Up/Down] scroll", 12, 12)
}

func (s *ContactScene) drawBlock(screen *ebiten.Image, th pageTheme, block *components.PageBlockComponent, rc *components.RevealComponent) {
	if rc.Opacity <= 0 {
		return
	}

	w := block.Width * rc.Scale
	h := block.Height * rc.Scale
	x := block.X + rc.OffsetX + (block.Width-w)/2
	y := block.Y - s.scrollY + rc.OffsetY + (block.Height-h)/2
	if y+h < 0 || y > s.viewportHeight {
		return
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fade(th.card, rc.Opacity), true)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 28, fade(th.accent, rc.Opacity), true)
	if rc.Opacity > 0.5 {
		ebitenutil.DebugPrintAt(screen, block.Title, int(x)+12, int(y)+6)
		for i, line := range block.Lines {
			ebitenutil.DebugPrintAt(screen, line, int(x)+12, int(y)+40+i*16)
		}
	}
}

// pageTheme 页面配色
type pageTheme struct {
	background color.Color
	card       color.NRGBA
	accent     color.NRGBA
	muted      color.NRGBA
}

func themeFor(dark bool) pageTheme {
	if dark {
		return pageTheme{
			background: color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
			card:       color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
			accent:     color.NRGBA{R: 0x3d, G: 0x8b, B: 0xfd, A: 0xff},
			muted:      color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		}
	}
	return pageTheme{
		background: color.NRGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff},
		card:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		accent:     color.NRGBA{R: 0x0d, G: 0x6e, B: 0xfd, A: 0xff},
		muted:      color.NRGBA{R: 0x9a, G: 0xa0, B: 0xa6, A: 0xff},
	}
}

// fade 按不透明度缩放 alpha
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * utils.Clamp01(opacity))
	return c
}
