package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
		notices       []string
	}{
		{"in range", 30, 40, 30, 40, nil},
		{"bounds are inclusive", MinWidth, MaxHeight, MinWidth, MaxHeight, nil},
		{"width too small", 2, 40, MinWidth, 40, []string{"Desired width too small. Reset to 8."}},
		{"width too great", 1000, 40, MaxWidth, 40, []string{"Desired width too great. Reset to 50."}},
		{"height too small", 30, 2, 30, MinHeight, []string{"Desired height too small. Reset to 8."}},
		{"height too great", 30, 1000, 30, MaxHeight, []string{"Desired height too great. Reset to 100."}},
		{
			"both out of range", -5, 101, MinWidth, MaxHeight,
			[]string{"Desired width too small. Reset to 8.", "Desired height too great. Reset to 100."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, notices := ClampDimensions(tt.width, tt.height)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.notices, notices)
		})
	}
}

func TestParseDimension(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		v, notice := ParseDimension("12", "width", DefaultWidth)
		assert.Equal(t, 12, v)
		assert.Empty(t, notice)
	})

	t.Run("out of range integers are left for clamping", func(t *testing.T) {
		v, notice := ParseDimension("1000", "height", DefaultHeight)
		assert.Equal(t, 1000, v)
		assert.Empty(t, notice)
	})

	t.Run("not a number", func(t *testing.T) {
		v, notice := ParseDimension("wide", "width", DefaultWidth)
		assert.Equal(t, DefaultWidth, v)
		assert.Equal(t, "wide is not an acceptable width. Using default: 30.", notice)
	})
}
