package scenes

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/game"
	"github.com/gonewx/confetti/pkg/systems"
	"github.com/gonewx/confetti/pkg/utils"
)

// scriptedInput 按帧返回预设输入，用完后返回空输入
type scriptedInput struct {
	frames []utils.PageInput
}

func (s *scriptedInput) push(in utils.PageInput) {
	s.frames = append(s.frames, in)
}

func (s *scriptedInput) read() utils.PageInput {
	if len(s.frames) == 0 {
		return utils.PageInput{}
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in
}

type contactHarness struct {
	scene  *ContactScene
	frames *game.FrameScheduler
	clock  *game.ManualClock
	input  *scriptedInput
	calls  *atomic.Int32
}

func newContactHarness(t *testing.T, submitErr error, settings *game.SettingsManager) *contactHarness {
	t.Helper()

	effect := particle.DefaultEffect()
	effect.Count = 20

	h := &contactHarness{
		frames: game.NewFrameScheduler(),
		clock:  game.NewManualClock(time.Unix(0, 0)),
		input:  &scriptedInput{},
		calls:  &atomic.Int32{},
	}
	scene, err := NewContactScene(ContactSceneConfig{
		Frames:   h.frames,
		Clock:    h.clock,
		Effect:   effect,
		Settings: settings,
		Submitter: SubmitterFunc(func(ctx context.Context, form ContactForm) error {
			h.calls.Add(1)
			return submitErr
		}),
		ReadInput:      h.input.read,
		ViewportWidth:  1024,
		ViewportHeight: 768,
	})
	if err != nil {
		t.Fatalf("NewContactScene() error = %v", err)
	}
	h.scene = scene
	return h
}

// frame 模拟 App 的一帧：推进时钟、泵动帧回调、更新场景
func (h *contactHarness) frame() {
	h.clock.Advance(16 * time.Millisecond)
	h.frames.Pump()
	h.scene.Update(1.0 / 60)
}

// waitSubmission 等待后台提交完成并被场景取回
func (h *contactHarness) waitSubmission(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.scene.Sending() {
		if time.Now().After(deadline) {
			t.Fatal("submission did not finish")
		}
		time.Sleep(time.Millisecond)
		h.scene.Update(0)
	}
}

func TestContactScene_SuccessfulSubmitCelebrates(t *testing.T) {
	h := newContactHarness(t, nil, nil)

	h.input.push(utils.PageInput{Submit: true})
	h.frame()
	if h.scene.Status() != config.ContactSendingMessage {
		t.Errorf("status = %q, want %q", h.scene.Status(), config.ContactSendingMessage)
	}
	h.waitSubmission(t)

	if h.scene.Status() != config.ContactSuccessMessage {
		t.Errorf("status = %q, want %q", h.scene.Status(), config.ContactSuccessMessage)
	}
	if !h.scene.Signal().IsRaised() || h.scene.Confetti().State() != systems.ConfettiRunning {
		t.Fatalf("success should raise the signal and start confetti")
	}
	if h.scene.Confetti().Len() != 20 {
		t.Errorf("population = %d, want 20", h.scene.Confetti().Len())
	}

	// 5 秒后信号自动释放，彩纸也已超时结束
	for i := 0; i < 400 && h.scene.Signal().IsRaised(); i++ {
		h.frame()
	}
	if h.scene.Signal().IsRaised() {
		t.Error("signal still raised after the success display time")
	}
	if h.scene.Confetti().State() != systems.ConfettiIdle || h.frames.Pending() != 0 {
		t.Errorf("confetti state=%v pending=%d after celebration", h.scene.Confetti().State(), h.frames.Pending())
	}
	if got := h.calls.Load(); got != 1 {
		t.Errorf("submitter called %d times, want 1", got)
	}
}

func TestContactScene_FailedSubmitNoConfetti(t *testing.T) {
	h := newContactHarness(t, errors.New("smtp down"), nil)

	h.input.push(utils.PageInput{Submit: true})
	h.frame()
	h.waitSubmission(t)

	if h.scene.Status() != config.ContactFailureMessage {
		t.Errorf("status = %q, want %q", h.scene.Status(), config.ContactFailureMessage)
	}
	if h.scene.Signal().IsRaised() || h.scene.Confetti().State() != systems.ConfettiIdle {
		t.Error("failed submission must not celebrate")
	}
}

func TestContactScene_InvalidFormNotSubmitted(t *testing.T) {
	h := newContactHarness(t, nil, nil)
	h.scene.SetForm(ContactForm{Name: "A", Email: "not-an-email", Message: "hi"})

	h.input.push(utils.PageInput{Submit: true})
	h.frame()

	if h.scene.Sending() || h.scene.Status() != config.ContactInvalidMessage {
		t.Errorf("sending=%v status=%q, want invalid form message", h.scene.Sending(), h.scene.Status())
	}
	if got := h.calls.Load(); got != 0 {
		t.Errorf("submitter called %d times, want 0", got)
	}
}

func TestContactScene_ClickSendButton(t *testing.T) {
	h := newContactHarness(t, nil, nil)
	btn := h.scene.sendButtonRect()

	// 按钮外的点击无效
	h.input.push(utils.PageInput{Clicked: true, X: btn.Min.X - 10, Y: btn.Min.Y})
	h.frame()
	if h.scene.Sending() {
		t.Fatal("click outside the button should not submit")
	}

	h.input.push(utils.PageInput{Clicked: true, X: btn.Min.X + 5, Y: btn.Min.Y + 5})
	h.frame()
	h.waitSubmission(t)
	if h.scene.Status() != config.ContactSuccessMessage {
		t.Errorf("status = %q after clicking send", h.scene.Status())
	}
}

func TestContactScene_DismissStopsCelebration(t *testing.T) {
	h := newContactHarness(t, nil, nil)

	h.input.push(utils.PageInput{Submit: true})
	h.frame()
	h.waitSubmission(t)
	h.frame()

	h.input.push(utils.PageInput{Dismiss: true})
	h.frame()
	if h.scene.Confetti().State() != systems.ConfettiIdle || h.scene.Confetti().Len() != 0 {
		t.Error("Esc should stop the confetti immediately")
	}
}

func TestContactScene_EffectsDisabled(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	settings.SetEffectsEnabled(false)
	h := newContactHarness(t, nil, settings)

	h.input.push(utils.PageInput{Submit: true})
	h.frame()
	h.waitSubmission(t)

	if h.scene.Status() != config.ContactSuccessMessage {
		t.Errorf("status = %q, want success", h.scene.Status())
	}
	if h.scene.Confetti().State() != systems.ConfettiIdle {
		t.Error("confetti should stay idle while effects are disabled")
	}

	// 运行中切换开关
	h.input.push(utils.PageInput{ToggleEffects: true})
	h.frame()
	if !settings.GetSettings().EffectsEnabled {
		t.Error("E should enable effects")
	}
}

func TestContactScene_ScrollAndTheme(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	h := newContactHarness(t, nil, settings)

	h.input.push(utils.PageInput{Scroll: -100})
	h.frame()
	if h.scene.ScrollY() != 0 {
		t.Errorf("ScrollY = %v, want clamped to 0", h.scene.ScrollY())
	}

	h.input.push(utils.PageInput{Scroll: 1e6})
	h.frame()
	if want := config.PageHeight - 768.0; h.scene.ScrollY() != want {
		t.Errorf("ScrollY = %v, want clamped to %v", h.scene.ScrollY(), want)
	}

	h.input.push(utils.PageInput{ToggleTheme: true})
	h.frame()
	if !settings.IsDark() {
		t.Error("T should switch to the dark theme")
	}
}

func TestContactScene_TeardownCancelsConfetti(t *testing.T) {
	h := newContactHarness(t, nil, nil)

	h.input.push(utils.PageInput{Submit: true})
	h.frame()
	h.waitSubmission(t)
	h.frame()
	if h.frames.Pending() != 1 {
		t.Fatalf("pending frames = %d while running, want 1", h.frames.Pending())
	}

	sm := game.NewSceneManager()
	sm.SwitchTo(h.scene)
	sm.Close()

	if h.frames.Pending() != 0 {
		t.Errorf("pending frames = %d after teardown, want 0", h.frames.Pending())
	}
	if h.scene.Confetti().Len() != 0 {
		t.Errorf("population = %d after teardown, want 0", h.scene.Confetti().Len())
	}
}

func TestContactForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    ContactForm
		wantErr bool
	}{
		{name: "sample form", form: DefaultContactForm()},
		{name: "missing name", form: ContactForm{Email: "a@b", Message: "x"}, wantErr: true},
		{name: "email without at", form: ContactForm{Name: "a", Email: "ab", Message: "x"}, wantErr: true},
		{name: "email ending with at", form: ContactForm{Name: "a", Email: "ab@", Message: "x"}, wantErr: true},
		{name: "blank message", form: ContactForm{Name: "a", Email: "a@b", Message: "  "}, wantErr: true},
		{name: "subject optional", form: ContactForm{Name: "a", Email: "a@b", Message: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.form.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
