package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/components"
	"github.com/gonewx/confetti/pkg/game"
)

// ConfettiState is the state of the confetti animation loop.
type ConfettiState int

const (
	// ConfettiIdle: no population, nothing scheduled.
	ConfettiIdle ConfettiState = iota
	// ConfettiRunning: population exists and the next tick is scheduled.
	ConfettiRunning
)

func (s ConfettiState) String() string {
	if s == ConfettiRunning {
		return "running"
	}
	return "idle"
}

// ConfettiSystem runs the falling-confetti celebration.
//
// Activation creates the whole population at once. Every frame one tick moves
// each piece with constant gravity. After the effect duration has elapsed the
// population is discarded and the system goes back to Idle.
//
// The population is an owned buffer mutated in place. Each change bumps the
// snapshot version so renderers know when to refresh; Snapshot hands out a copy.
//
// Tick order per piece (semi-implicit Euler, position first):
//
//	X += VelocityX * TimeStep
//	Y += VelocityY * TimeStep   // velocity from before this tick's gravity
//	VelocityY += Gravity
//	Rotation += RotationStep
//	Scale *= ScaleDecay
//
// TimeStep is a fixed factor, not frame-time corrected.
//
// Not safe for concurrent use; everything runs on the game loop goroutine.
type ConfettiSystem struct {
	frames game.FrameRequester
	clock  game.Clock
	rng    *rand.Rand
	effect *particle.Effect

	pieces []components.ConfettiPiece
	state  ConfettiState
	signal bool // 最近一次 SetActive 的值，用于边沿检测

	handle     game.FrameHandle // 待执行的帧回调，0 表示没有
	generation uint64           // 每次激活/停用递增，旧回调据此识别自己已过期
	startedAt  time.Time
	ticks      int

	version   uint64
	onPublish func(version uint64)
}

// NewConfettiSystem creates an idle confetti loop.
// A nil effect uses particle.DefaultEffect(); a nil rng is seeded from the clock.
func NewConfettiSystem(frames game.FrameRequester, clock game.Clock, effect *particle.Effect, rng *rand.Rand) *ConfettiSystem {
	if effect == nil {
		effect = particle.DefaultEffect()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &ConfettiSystem{
		frames: frames,
		clock:  clock,
		rng:    rng,
		effect: effect,
		pieces: make([]components.ConfettiPiece, 0, effect.Count),
	}
}

// SetActive drives the loop from an external boolean signal.
// false→true activates, true→false deactivates, repeated values are ignored.
func (cs *ConfettiSystem) SetActive(active bool) {
	if active == cs.signal {
		return
	}
	cs.signal = active
	if active {
		cs.Activate()
	} else {
		cs.Deactivate()
	}
}

// Activate generates a fresh population and starts ticking.
// If a run is in progress its pending tick is cancelled and its population replaced.
func (cs *ConfettiSystem) Activate() {
	cs.cancelPending()
	cs.generation++

	cs.spawn()
	cs.startedAt = cs.clock.Now()
	cs.ticks = 0
	cs.state = ConfettiRunning
	cs.publish()

	cs.schedule()
	log.Printf("[ConfettiSystem] Activated %d pieces (run %d)", len(cs.pieces), cs.generation)
}

// Deactivate stops the loop and discards the population. Safe to call when idle.
func (cs *ConfettiSystem) Deactivate() {
	if cs.state == ConfettiIdle && cs.handle == 0 && len(cs.pieces) == 0 {
		return
	}
	cs.cancelPending()
	cs.generation++
	cs.clear()
	log.Printf("[ConfettiSystem] Deactivated")
}

// Close is the owner teardown: deactivate and forget the input signal.
func (cs *ConfettiSystem) Close() {
	cs.signal = false
	cs.Deactivate()
}

// State returns the current loop state.
func (cs *ConfettiSystem) State() ConfettiState {
	return cs.state
}

// Len returns the current population size.
func (cs *ConfettiSystem) Len() int {
	return len(cs.pieces)
}

// Ticks returns the number of physics ticks applied in the current (or last) run.
func (cs *ConfettiSystem) Ticks() int {
	return cs.ticks
}

// Version increases every time the population changes.
func (cs *ConfettiSystem) Version() uint64 {
	return cs.version
}

// Snapshot returns a copy of the current population for painting.
func (cs *ConfettiSystem) Snapshot() []components.ConfettiPiece {
	return cs.AppendSnapshot(nil)
}

// AppendSnapshot appends the current population to dst and returns it,
// letting renderers reuse their buffer between frames.
func (cs *ConfettiSystem) AppendSnapshot(dst []components.ConfettiPiece) []components.ConfettiPiece {
	return append(dst, cs.pieces...)
}

// OnPublish registers a hook called after each snapshot version bump.
func (cs *ConfettiSystem) OnPublish(fn func(version uint64)) {
	cs.onPublish = fn
}

// Effect returns the effect description the system was built with.
func (cs *ConfettiSystem) Effect() *particle.Effect {
	return cs.effect
}

// spawn 原地重建彩纸缓冲区（复用容量）
func (cs *ConfettiSystem) spawn() {
	e := cs.effect
	cs.pieces = cs.pieces[:0]
	for i := 0; i < e.Count; i++ {
		cs.pieces = append(cs.pieces, components.ConfettiPiece{
			ID:        i,
			X:         e.SpawnX.Sample(cs.rng),
			Y:         e.SpawnY.Sample(cs.rng),
			Rotation:  e.Rotation.Sample(cs.rng),
			Scale:     e.Scale.Sample(cs.rng),
			Color:     e.Palette[cs.rng.Intn(len(e.Palette))],
			VelocityX: e.VelocityX.Sample(cs.rng),
			VelocityY: e.VelocityY.Sample(cs.rng),
			Gravity:   e.Gravity.Sample(cs.rng),
		})
	}
}

func (cs *ConfettiSystem) schedule() {
	gen := cs.generation
	cs.handle = cs.frames.RequestFrame(func() { cs.tick(gen) })
}

func (cs *ConfettiSystem) cancelPending() {
	if cs.handle != 0 {
		cs.frames.CancelFrame(cs.handle)
		cs.handle = 0
	}
}

// tick 每帧执行一次；gen 不匹配说明回调属于已被替换或停止的运行
func (cs *ConfettiSystem) tick(gen uint64) {
	if gen != cs.generation || cs.state != ConfettiRunning {
		return
	}
	cs.handle = 0

	if cs.clock.Now().Sub(cs.startedAt) >= cs.effect.Duration {
		cs.clear()
		log.Printf("[ConfettiSystem] Run %d finished after %d ticks", gen, cs.ticks)
		return
	}

	step := cs.effect.TimeStep
	spin := cs.effect.RotationStep
	decay := cs.effect.ScaleDecay
	for i := range cs.pieces {
		p := &cs.pieces[i]
		p.X += p.VelocityX * step
		p.Y += p.VelocityY * step
		p.VelocityY += p.Gravity
		p.Rotation += spin
		p.Scale *= decay
	}
	cs.ticks++
	cs.publish()

	cs.schedule()
}

func (cs *ConfettiSystem) clear() {
	cs.pieces = cs.pieces[:0]
	cs.state = ConfettiIdle
	cs.publish()
}

func (cs *ConfettiSystem) publish() {
	cs.version++
	if cs.onPublish != nil {
		cs.onPublish(cs.version)
	}
}
