package game

// FrameHandle identifies one pending frame callback. The zero handle is never issued.
type FrameHandle uint64

// FrameRequester is the "run this before the next frame" primitive.
//
// A callback registered with RequestFrame fires at most once, on the next frame,
// unless it is cancelled first. CancelFrame on a handle that already fired, was
// already cancelled, or is zero is a no-op.
type FrameRequester interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameScheduler is the FrameRequester driven by the game loop.
//
// The App calls Pump once per ebiten Update. Only callbacks that were pending
// when Pump started run in that frame; a callback that requests another frame
// from inside Pump is deferred to the next Pump. Not safe for concurrent use:
// everything runs on the game loop goroutine.
type FrameScheduler struct {
	nextHandle FrameHandle
	pending    map[FrameHandle]func()
	order      []FrameHandle
	frame      uint64
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make(map[FrameHandle]func()),
	}
}

// RequestFrame registers fn for the next frame and returns its handle.
func (s *FrameScheduler) RequestFrame(fn func()) FrameHandle {
	s.nextHandle++
	h := s.nextHandle
	s.pending[h] = fn
	s.order = append(s.order, h)
	return h
}

// CancelFrame removes a pending callback.
func (s *FrameScheduler) CancelFrame(h FrameHandle) {
	delete(s.pending, h)
}

// Pump runs the callbacks due this frame in registration order and returns
// how many ran.
func (s *FrameScheduler) Pump() int {
	s.frame++
	batch := s.order
	s.order = nil

	ran := 0
	for _, h := range batch {
		fn, ok := s.pending[h]
		if !ok {
			// 已取消
			continue
		}
		delete(s.pending, h)
		fn()
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for a frame.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Frame returns how many times Pump has been called.
func (s *FrameScheduler) Frame() uint64 {
	return s.frame
}
