package systems

import (
	"log"

	"github.com/gonewx/confetti/pkg/components"
	"github.com/gonewx/confetti/pkg/ecs"
	"github.com/gonewx/confetti/pkg/game"
	"github.com/gonewx/confetti/pkg/utils"
)

// RevealSystem 滚动触发的入场动画系统
//
// 每个带 RevealComponent 的实体是一段从起始偏移到静止位置的补间。
// 滚动位置越过触发点时按 ToggleActions 播放或倒放。
// 滚动触发插件未安装时，所有补间直接播放，不依赖滚动位置。
type RevealSystem struct {
	entityManager  *ecs.EntityManager
	trigger        *ScrollTriggerPlugin
	viewportHeight float64
	scrollY        float64

	eases map[string]utils.EasingFunc
}

// NewRevealSystem 创建入场动画系统
func NewRevealSystem(em *ecs.EntityManager, trigger *ScrollTriggerPlugin, viewportHeight float64) *RevealSystem {
	return &RevealSystem{
		entityManager:  em,
		trigger:        trigger,
		viewportHeight: viewportHeight,
		eases:          make(map[string]utils.EasingFunc),
	}
}

// SetScroll 设置当前滚动位置（页面坐标，像素）
func (s *RevealSystem) SetScroll(y float64) {
	s.scrollY = y
}

// ScrollY 返回当前滚动位置
func (s *RevealSystem) ScrollY() float64 {
	return s.scrollY
}

// Update 检查触发点并推进所有补间
func (s *RevealSystem) Update(dt float64) {
	scrollDriven := s.trigger != nil && game.PluginInstalled(s.trigger.Name())

	for _, id := range ecs.GetEntitiesWith1[*components.RevealComponent](s.entityManager) {
		rc, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if scrollDriven {
			s.checkTrigger(rc)
		} else if !rc.Entered {
			rc.Entered = true
			rc.Direction = components.RevealForward
		}

		advanceReveal(rc, dt)
		s.applyReveal(rc)
	}
}

// checkTrigger 根据滚动位置触发 onEnter/onLeave/onEnterBack/onLeaveBack
func (s *RevealSystem) checkTrigger(rc *components.RevealComponent) {
	start := s.trigger.Start.ScrollOffset(rc.TriggerTop, rc.TriggerBottom, s.viewportHeight)
	end := s.trigger.End.ScrollOffset(rc.TriggerTop, rc.TriggerBottom, s.viewportHeight)
	acts := s.trigger.Actions

	if !rc.Entered && s.scrollY >= start {
		rc.Entered = true
		applyToggleAction(rc, acts.Enter)
	}
	if rc.Entered && !rc.Passed && s.scrollY > end {
		rc.Passed = true
		applyToggleAction(rc, acts.Leave)
	}
	if rc.Passed && s.scrollY <= end {
		rc.Passed = false
		applyToggleAction(rc, acts.EnterBack)
	}
	if rc.Entered && s.scrollY < start {
		rc.Entered = false
		applyToggleAction(rc, acts.LeaveBack)
	}
}

func applyToggleAction(rc *components.RevealComponent, action ToggleAction) {
	switch action {
	case ActionPlay:
		rc.Direction = components.RevealForward
	case ActionReverse:
		rc.Direction = components.RevealReverse
	case ActionRestart:
		rc.Elapsed = 0
		rc.Direction = components.RevealForward
	case ActionReset:
		rc.Elapsed = 0
		rc.Direction = components.RevealIdle
	}
}

// advanceReveal 按方向推进时间；Delay 只在正向播放时生效
func advanceReveal(rc *components.RevealComponent, dt float64) {
	total := rc.Delay + rc.Duration
	switch rc.Direction {
	case components.RevealForward:
		rc.Elapsed += dt
		if rc.Elapsed >= total {
			rc.Elapsed = total
			rc.Direction = components.RevealIdle
		}
	case components.RevealReverse:
		if rc.Elapsed > total {
			rc.Elapsed = total
		}
		rc.Elapsed -= dt
		if rc.Elapsed <= rc.Delay {
			rc.Elapsed = 0
			rc.Direction = components.RevealIdle
		}
	}

	// 时长为 0 时视为瞬间完成
	rc.Progress = utils.Clamp01((rc.Elapsed - rc.Delay) / max(rc.Duration, 1e-9))
}

func (s *RevealSystem) applyReveal(rc *components.RevealComponent) {
	eased := s.ease(rc.Ease)(rc.Progress)
	rc.Opacity = utils.Clamp01(eased)
	rc.OffsetX = utils.Lerp(rc.FromOffsetX, 0, eased)
	rc.OffsetY = utils.Lerp(rc.FromOffsetY, 0, eased)
	rc.Scale = utils.Lerp(rc.FromScale, 1, eased)
}

// ease 缓存解析过的缓动函数；未知名称退回线性
func (s *RevealSystem) ease(name string) utils.EasingFunc {
	if fn, ok := s.eases[name]; ok {
		return fn
	}
	fn, err := utils.EasingByName(name)
	if err != nil {
		log.Printf("[RevealSystem] 警告：%v，使用线性缓动", err)
		fn = utils.EaseLinear
	}
	s.eases[name] = fn
	return fn
}
