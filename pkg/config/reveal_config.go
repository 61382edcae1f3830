package config

// 滚动触发的入场动画参数

const (
	// RevealTriggerStart 元素顶部到达视口 80% 处时播放
	RevealTriggerStart = "top 80%"

	// RevealTriggerEnd 元素底部离开视口 20% 处（当前切换动作下不触发行为）
	RevealTriggerEnd = "bottom 20%"

	// RevealToggleActions 依次对应 onEnter / onLeave / onEnterBack / onLeaveBack
	RevealToggleActions = "play none none reverse"

	// RevealDuration 单个入场动画时长（秒）
	RevealDuration = 1.0

	// RevealStaggerDuration 交错入场中每个元素的时长（秒）
	RevealStaggerDuration = 0.8

	// RevealFadeOffsetY fadeInUp 的起始下移距离（像素）
	RevealFadeOffsetY = 50.0

	// RevealStaggerOffsetY 交错入场的起始下移距离（像素）
	RevealStaggerOffsetY = 30.0

	// RevealSlideOffsetX 左右滑入的起始水平偏移（像素）
	RevealSlideOffsetX = 50.0

	// RevealScaleFrom scaleIn 的起始缩放
	RevealScaleFrom = 0.8

	// RevealBackOvershoot back.out 缓动的过冲系数
	RevealBackOvershoot = 1.7

	// RevealDefaultStagger 交错入场默认间隔（秒）
	RevealDefaultStagger = 0.1
)

// ContactSuccessDisplaySeconds 提交成功后激活信号保持的时长（秒）
const ContactSuccessDisplaySeconds = 5.0
