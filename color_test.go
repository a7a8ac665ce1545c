package splines

import (
	"image/color"
	"testing"
)

func TestRGBANRGBA(t *testing.T) {
	tests := []struct {
		in   RGBA
		want color.NRGBA
	}{
		{Black, color.NRGBA{0, 0, 0, 255}},
		{White, color.NRGBA{255, 255, 255, 255}},
		{RGBA{0, 0.4, 0, 1}, color.NRGBA{0, 102, 0, 255}},
		{RGBA{-1, 2, 0.5, 0}, color.NRGBA{0, 255, 128, 0}},
	}

	for _, tt := range tests {
		if got := tt.in.NRGBA(); got != tt.want {
			t.Errorf("%v.NRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
