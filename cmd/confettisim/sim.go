package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gonewx/confetti/internal/particle"
	"github.com/gonewx/confetti/pkg/components"
	"github.com/gonewx/confetti/pkg/game"
	"github.com/gonewx/confetti/pkg/systems"
)

// Options 控制一次无窗口模拟
type Options struct {
	Effect *particle.Effect
	FPS    int
	Seed   int64
	// MaxFrames 防止配置异常时无限循环，0 表示按效果时长推算
	MaxFrames int
}

// Report 汇总一次运行的结果
type Report struct {
	Effect     string
	Count      int
	FPS        int
	Frames     int // 泵动的帧数
	Ticks      int // 实际执行的物理步数
	Publishes  int
	Elapsed    time.Duration // 模拟时钟经过的时间
	FinalState systems.ConfettiState

	// 最后一次物理步后的种群统计（百分比坐标）
	LastVisible int
	LastMinY    float64
	LastMaxY    float64
	LastScale   float64 // 平均缩放
}

// Run 激活一次彩纸，用手动时钟逐帧推进直到超时清空
func Run(opts Options) (Report, error) {
	if opts.Effect == nil {
		return Report{}, errors.New("no effect")
	}
	if opts.FPS <= 0 {
		return Report{}, fmt.Errorf("invalid fps %d", opts.FPS)
	}

	frameDur := time.Second / time.Duration(opts.FPS)
	maxFrames := opts.MaxFrames
	if maxFrames <= 0 {
		maxFrames = int(opts.Effect.Duration/frameDur) + 2
	}

	frames := game.NewFrameScheduler()
	clock := game.NewManualClock(time.Unix(0, 0))
	cs := systems.NewConfettiSystem(frames, clock, opts.Effect, rand.New(rand.NewSource(opts.Seed)))

	report := Report{
		Effect: opts.Effect.Name,
		Count:  opts.Effect.Count,
		FPS:    opts.FPS,
	}
	var last []components.ConfettiPiece
	cs.OnPublish(func(uint64) {
		report.Publishes++
		if cs.Len() > 0 {
			last = cs.AppendSnapshot(last[:0])
		}
	})

	start := clock.Now()
	cs.SetActive(true)
	for report.Frames < maxFrames && cs.State() == systems.ConfettiRunning {
		clock.Advance(frameDur)
		frames.Pump()
		report.Frames++
	}
	// 外部信号仍为 true；模拟结束时释放
	cs.SetActive(false)

	report.Ticks = cs.Ticks()
	report.Elapsed = clock.Now().Sub(start)
	report.FinalState = cs.State()
	summarize(&report, last)
	return report, nil
}

func summarize(r *Report, pieces []components.ConfettiPiece) {
	if len(pieces) == 0 {
		return
	}
	r.LastMinY, r.LastMaxY = pieces[0].Y, pieces[0].Y
	var scale float64
	for _, p := range pieces {
		if p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100 {
			r.LastVisible++
		}
		r.LastMinY = min(r.LastMinY, p.Y)
		r.LastMaxY = max(r.LastMaxY, p.Y)
		scale += p.Scale
	}
	r.LastScale = scale / float64(len(pieces))
}
