package systems

import (
	"log"
	"time"

	"github.com/gonewx/confetti/pkg/game"
)

// Activatable receives the boolean activation signal.
type Activatable interface {
	SetActive(active bool)
}

// ActivationSignal is the boolean input that drives a celebration.
//
// Raise and Lower forward the level to the target; the target does its own
// edge detection. Pulse raises the signal and lowers it automatically once the
// given duration has passed, checked on Update.
type ActivationSignal struct {
	clock  game.Clock
	target Activatable

	raised   bool
	deadline time.Time // 零值表示没有自动释放
	enabled  bool
}

// NewActivationSignal creates a lowered signal bound to target.
func NewActivationSignal(clock game.Clock, target Activatable) *ActivationSignal {
	return &ActivationSignal{
		clock:   clock,
		target:  target,
		enabled: true,
	}
}

// SetEnabled gates the signal. While disabled Raise and Pulse are ignored and
// a raised signal is lowered immediately.
func (a *ActivationSignal) SetEnabled(enabled bool) {
	a.enabled = enabled
	if !enabled && a.raised {
		a.Lower()
	}
}

// Raise sets the signal high with no auto-release.
func (a *ActivationSignal) Raise() {
	if !a.enabled {
		return
	}
	a.deadline = time.Time{}
	a.set(true)
}

// Pulse sets the signal high and schedules it to drop after d.
// Pulsing again while raised extends the deadline without a new edge.
func (a *ActivationSignal) Pulse(d time.Duration) {
	if !a.enabled {
		return
	}
	a.deadline = a.clock.Now().Add(d)
	a.set(true)
}

// Lower sets the signal low and clears any pending auto-release.
func (a *ActivationSignal) Lower() {
	a.deadline = time.Time{}
	a.set(false)
}

// Update lowers a pulsed signal whose deadline has passed. Called once per frame.
func (a *ActivationSignal) Update() {
	if !a.raised || a.deadline.IsZero() {
		return
	}
	if !a.clock.Now().Before(a.deadline) {
		log.Printf("[ActivationSignal] Pulse expired")
		a.Lower()
	}
}

// IsRaised reports the current level.
func (a *ActivationSignal) IsRaised() bool {
	return a.raised
}

func (a *ActivationSignal) set(v bool) {
	a.raised = v
	if a.target != nil {
		a.target.SetActive(v)
	}
}
