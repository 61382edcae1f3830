package game

import "time"

// Clock 墙钟时间来源
type Clock interface {
	Now() time.Time
}

// SystemClock 使用系统时间
type SystemClock struct{}

// Now 返回当前系统时间
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock 手动推进的时钟
// 用于无窗口模拟（cmd/confettisim）和测试；每帧由调用方 Advance 固定间隔
type ManualClock struct {
	now time.Time
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前模拟时间
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance 推进模拟时间
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
