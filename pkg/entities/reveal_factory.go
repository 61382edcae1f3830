package entities

import (
	"fmt"

	"github.com/gonewx/confetti/pkg/components"
	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/ecs"
)

// RevealOptions 入场动画的可调参数
type RevealOptions struct {
	Delay float64 // 秒
}

// newRevealBlock 创建内容块实体并挂上入场补间
// 补间初始输出为起始状态（透明、带偏移），等待 RevealSystem 推进
func newRevealBlock(em *ecs.EntityManager, block components.PageBlockComponent, rc components.RevealComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if block.Height <= 0 || block.Width <= 0 {
		return 0, fmt.Errorf("block %q has empty size %.0fx%.0f", block.Title, block.Width, block.Height)
	}

	rc.TriggerTop = block.Y
	rc.TriggerBottom = block.Y + block.Height
	if rc.FromScale == 0 {
		rc.FromScale = 1
	}
	rc.Opacity = 0
	rc.OffsetX = rc.FromOffsetX
	rc.OffsetY = rc.FromOffsetY
	rc.Scale = rc.FromScale

	id := em.CreateEntity()
	b := block
	em.AddComponent(id, &b)
	em.AddComponent(id, &rc)
	return id, nil
}

// NewFadeInUp 创建从下方淡入的内容块
func NewFadeInUp(em *ecs.EntityManager, block components.PageBlockComponent, opts RevealOptions) (ecs.EntityID, error) {
	return newRevealBlock(em, block, components.RevealComponent{
		Kind:        components.RevealFadeInUp,
		Delay:       opts.Delay,
		Duration:    config.RevealDuration,
		Ease:        "power3.out",
		FromOffsetY: config.RevealFadeOffsetY,
	})
}

// NewScaleIn 创建放大淡入的内容块
func NewScaleIn(em *ecs.EntityManager, block components.PageBlockComponent, opts RevealOptions) (ecs.EntityID, error) {
	return newRevealBlock(em, block, components.RevealComponent{
		Kind:      components.RevealScaleIn,
		Delay:     opts.Delay,
		Duration:  config.RevealDuration,
		Ease:      fmt.Sprintf("back.out(%g)", config.RevealBackOvershoot),
		FromScale: config.RevealScaleFrom,
	})
}

// NewSlideInLeft 创建从左侧滑入的内容块
func NewSlideInLeft(em *ecs.EntityManager, block components.PageBlockComponent, opts RevealOptions) (ecs.EntityID, error) {
	return newRevealBlock(em, block, components.RevealComponent{
		Kind:        components.RevealSlideInLeft,
		Delay:       opts.Delay,
		Duration:    config.RevealDuration,
		Ease:        "power3.out",
		FromOffsetX: -config.RevealSlideOffsetX,
	})
}

// NewSlideInRight 创建从右侧滑入的内容块
func NewSlideInRight(em *ecs.EntityManager, block components.PageBlockComponent, opts RevealOptions) (ecs.EntityID, error) {
	return newRevealBlock(em, block, components.RevealComponent{
		Kind:        components.RevealSlideInRight,
		Delay:       opts.Delay,
		Duration:    config.RevealDuration,
		Ease:        "power3.out",
		FromOffsetX: config.RevealSlideOffsetX,
	})
}

// NewStaggerFadeIn 创建一组交错淡入的内容块
//
// 所有元素共用容器的触发区间（container），第 i 个元素的 Delay 为 opts.Delay + i*stagger。
// stagger <= 0 时使用默认间隔。
func NewStaggerFadeIn(em *ecs.EntityManager, container components.PageBlockComponent, items []components.PageBlockComponent, stagger float64, opts RevealOptions) ([]ecs.EntityID, error) {
	if stagger <= 0 {
		stagger = config.RevealDefaultStagger
	}

	ids := make([]ecs.EntityID, 0, len(items))
	for i, item := range items {
		id, err := newRevealBlock(em, item, components.RevealComponent{
			Kind:        components.RevealStaggerFadeIn,
			Delay:       opts.Delay + float64(i)*stagger,
			Duration:    config.RevealStaggerDuration,
			Ease:        "power3.out",
			FromOffsetY: config.RevealStaggerOffsetY,
		})
		if err != nil {
			return ids, fmt.Errorf("stagger item %d: %w", i, err)
		}

		// 触发区间跟随容器，而不是元素自身
		rc, _ := ecs.GetComponent[*components.RevealComponent](em, id)
		rc.TriggerTop = container.Y
		rc.TriggerBottom = container.Y + container.Height
		ids = append(ids, id)
	}
	return ids, nil
}
