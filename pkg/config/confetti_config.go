package config

// 彩纸雨效果默认参数
// data/confetti.yaml 缺失或字段为空时使用这些值
// 坐标单位为视口百分比（0-100），Y 轴向下

const (
	// ConfettiEffectPath 嵌入资源中的效果配置路径
	ConfettiEffectPath = "data/confetti.yaml"

	// ConfettiCount 每次激活生成的彩纸数量（固定，不会增长）
	ConfettiCount = 1000

	// ConfettiDurationMs 一次动画的墙钟时长（毫秒），超时后清空全部彩纸
	ConfettiDurationMs = 5000

	// ConfettiTimeStep 每帧位置积分的固定步长
	// 注意：不按实际帧间隔修正，帧率变化会改变模拟速度
	ConfettiTimeStep = 0.3

	// ConfettiRotationStep 每帧旋转增量（角度）
	ConfettiRotationStep = 2.0

	// ConfettiScaleDecay 每帧缩放衰减系数（< 1）
	ConfettiScaleDecay = 0.999
)

// 初始属性随机范围，格式与粒子配置的范围值相同
// SpawnX 覆盖并略超出视口宽度，SpawnY 起始于视口上方，
// VelocityX 为对称的水平漂移，VelocityY 与 Gravity 恒为正
const (
	ConfettiSpawnX    = "[-10 110]"
	ConfettiSpawnY    = "[-20 -50]"
	ConfettiRotation  = "[0 360]"
	ConfettiScale     = "[0.5 3]"
	ConfettiVelocityX = "[-1 1]"
	ConfettiVelocityY = "[2 8]"
	ConfettiGravity   = "[0.1 0.5]"
)

// ConfettiPalette 彩纸颜色表
var ConfettiPalette = []string{
	"#1a1a2e",
	"#16213e",
	"#0f3460",
	"#533483",
	"#2c3e50",
	"#34495e",
	"#2c3e50",
	"#8e44ad",
	"#2980b9",
	"#16a085",
	"#27ae60",
	"#f39c12",
}

// 彩纸形状尺寸（像素，乘以每片的 Scale）
// 形状在渲染时由 ID 推导，不存储在粒子数据中
const (
	ConfettiSquareWidth  = 4.0
	ConfettiSquareHeight = 4.0
	ConfettiStripWidth   = 6.0
	ConfettiStripHeight  = 3.0
)
