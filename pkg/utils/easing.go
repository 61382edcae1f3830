package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Easing Functions (缓动函数)
//
// 所有函数接受进度值 t ∈ [0, 1]，返回缓动后的值。
// EaseOutBack 会短暂超过 1（过冲），其余函数输出 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出（power2.out）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuart 四次方缓出（power3.out）
// 特点：开始很快，结束非常平缓，适合内容块入场
// 公式：f(t) = 1 - (1-t)⁴
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseOutBack 回弹缓出（back.out(s)）
// 特点：越过终点后回落，s 越大过冲越明显
// 公式：f(t) = 1 + (s+1)(t-1)³ + s(t-1)²
func EaseOutBack(t, overshoot float64) float64 {
	u := t - 1
	return 1 + (overshoot+1)*u*u*u + overshoot*u*u
}

// EasingByName 根据动画库风格的名称返回缓动函数
//
// 支持 "none"/"linear"、"power2.out"、"power3.out"、"back.out" 与 "back.out(1.7)"。
func EasingByName(name string) (EasingFunc, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "", "none", "linear":
		return EaseLinear, nil
	case "power2.out":
		return EaseOutCubic, nil
	case "power3.out":
		return EaseOutQuart, nil
	case "back.out":
		return func(t float64) float64 { return EaseOutBack(t, 1.70158) }, nil
	}

	if strings.HasPrefix(name, "back.out(") && strings.HasSuffix(name, ")") {
		arg := strings.TrimSuffix(strings.TrimPrefix(name, "back.out("), ")")
		s, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid back.out overshoot %q: %w", arg, err)
		}
		return func(t float64) float64 { return EaseOutBack(t, s) }, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
