package components

// RevealKind 入场动画类型
type RevealKind int

const (
	RevealFadeInUp      RevealKind = iota // 淡入并从下方上移
	RevealScaleIn                         // 淡入并从 0.8 放大到 1
	RevealSlideInLeft                     // 淡入并从左侧滑入
	RevealSlideInRight                    // 淡入并从右侧滑入
	RevealStaggerFadeIn                   // 交错淡入（每个元素一个实体，Delay 递增）
)

// RevealDirection 当前播放方向
type RevealDirection int

const (
	RevealIdle RevealDirection = iota
	RevealForward
	RevealReverse
)

// RevealComponent 滚动触发的入场动画状态
//
// TriggerTop/TriggerBottom 是元素在页面坐标中的上下边界，
// RevealSystem 根据当前滚动位置决定何时播放或倒放。
// Opacity/OffsetX/OffsetY/Scale 是每帧计算出的输出，供渲染读取。
type RevealComponent struct {
	Kind RevealKind

	// 元素页面坐标边界（像素）
	TriggerTop    float64
	TriggerBottom float64

	Delay    float64 // 秒
	Duration float64 // 秒
	Ease     string  // 缓动名称，如 "power3.out"、"back.out(1.7)"

	// 起始偏移（结束值总是 0 偏移、不透明、原始大小）
	FromOffsetX float64
	FromOffsetY float64
	FromScale   float64

	// 运行时状态
	Elapsed   float64 // 已播放时间（含 Delay），秒
	Direction RevealDirection
	Entered   bool // 滚动位置是否已越过起点
	Passed    bool // 滚动位置是否已越过终点

	// 输出
	Progress float64 // 缓动前的进度 0-1
	Opacity  float64
	OffsetX  float64
	OffsetY  float64
	Scale    float64
}

// PageBlockComponent 联系页上的一个内容块（页面坐标，像素）
type PageBlockComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Title  string
	Lines  []string
}
