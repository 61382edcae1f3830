package config

// 窗口与页面布局常量

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1024

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 768

	// WindowTitle 窗口标题
	WindowTitle = "Portfolio - Contact"

	// PageHeight 联系页可滚动内容总高度（像素）
	PageHeight = 2400.0

	// ScrollStep 每次按键滚动距离（像素）
	ScrollStep = 40.0

	// SectionMarginX 内容块左右边距
	SectionMarginX = 96.0

	// SectionHeight 每个内容块高度
	SectionHeight = 220.0

	// SectionGap 内容块之间的间距
	SectionGap = 120.0

	// SectionTop 第一个内容块的页面 Y 坐标
	SectionTop = 120.0
)
