package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallaxOffsetWrapsWithinSpacing(t *testing.T) {
	cases := []struct {
		name   string
		camX   float64
		factor float64
		want   float64
	}{
		{"at origin", 0, 0.2, 0},
		{"partial scroll", 100, 0.2, -20},
		{"exact wrap", 500, 0.2, 0},
		{"deep scroll", 1234, 0.3, -70.2},
		{"camera left of origin", -300, 0.2, -40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, parallaxOffset(tc.camX, tc.factor, 100), 0.001)
		})
	}
}

func TestParallaxOffsetStaysInRange(t *testing.T) {
	const spacing = 100.0
	for camX := -2000.0; camX <= 2000.0; camX += 37 {
		off := parallaxOffset(camX, 0.3, spacing)
		assert.LessOrEqual(t, off, 0.0, "camX=%.0f", camX)
		assert.Greater(t, off, -spacing, "camX=%.0f", camX)
	}
}
