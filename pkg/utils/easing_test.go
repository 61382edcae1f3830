package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数都必须从 0 开始、在 1 结束
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]EasingFunc{
		"linear":     EaseLinear,
		"outCubic":   EaseOutCubic,
		"outQuart":   EaseOutQuart,
		"outBack1.7": func(t float64) float64 { return EaseOutBack(t, 1.7) },
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if v := fn(0); math.Abs(v) > 1e-9 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := fn(1); math.Abs(v-1) > 1e-9 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
		})
	}
}

// TestEaseOutQuart 测试四次方缓出
func TestEaseOutQuart(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"中点", 0.5, 0.9375}, // 1 - 0.5^4
		{"四分之一", 0.25, 1 - math.Pow(0.75, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuart(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuart(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 开始快于三次方缓出
	if EaseOutQuart(0.3) <= EaseOutCubic(0.3) {
		t.Error("EaseOutQuart 应该比 EaseOutCubic 更早接近终点")
	}
}

// TestEaseOutBackOvershoots 回弹缓动应当过冲
func TestEaseOutBackOvershoots(t *testing.T) {
	maxV := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		if v := EaseOutBack(p, 1.7); v > maxV {
			maxV = v
		}
	}
	if maxV <= 1.0 {
		t.Errorf("EaseOutBack 最大值 = %v, 期望 > 1（过冲）", maxV)
	}
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		at      float64
		want    float64
		wantErr bool
	}{
		{"linear", "linear", 0.5, 0.5, false},
		{"empty", "", 0.5, 0.5, false},
		{"power3", "power3.out", 0.5, 0.9375, false},
		{"power2", "power2.out", 0.5, 0.875, false},
		{"back with arg", "back.out(1.7)", 0.5, EaseOutBack(0.5, 1.7), false},
		{"back default", "back.out", 1, 1, false},
		{"bad arg", "back.out(x)", 0, 0, true},
		{"unknown", "elastic.inOut", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := EasingByName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EasingByName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := fn(tt.at); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EasingByName(%q)(%v) = %v, 期望 %v", tt.input, tt.at, got, tt.want)
			}
		})
	}
}

func TestClamp01AndLerp(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.4) != 0.4 {
		t.Error("Clamp01 结果错误")
	}
	if Lerp(10, 20, 0.5) != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, 期望 15", Lerp(10, 20, 0.5))
	}
}
