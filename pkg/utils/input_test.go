package utils

import (
	"testing"
)

func TestScrollDelta(t *testing.T) {
	tests := []struct {
		name   string
		up     bool
		down   bool
		wheelY float64
		want   float64
	}{
		{name: "no input", want: 0},
		{name: "down key", down: true, want: 40},
		{name: "up key", up: true, want: -40},
		{name: "both keys cancel", up: true, down: true, want: 0},
		{name: "wheel up scrolls page up", wheelY: 1, want: -40},
		{name: "wheel down plus down key", wheelY: -0.5, down: true, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollDelta(tt.up, tt.down, tt.wheelY, 40); got != tt.want {
				t.Errorf("ScrollDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		page float64
		want float64
	}{
		{name: "negative", y: -10, page: 2000, want: 0},
		{name: "inside", y: 500, page: 2000, want: 500},
		{name: "past end", y: 5000, page: 2000, want: 1200},
		{name: "page shorter than viewport", y: 100, page: 400, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScroll(tt.y, tt.page, 800); got != tt.want {
				t.Errorf("ClampScroll(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}
