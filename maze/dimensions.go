package maze

import (
	"fmt"
	"strconv"
)

// Size limits applied to requested dimensions.
const (
	MinWidth  = 8
	MaxWidth  = 50
	MinHeight = 8
	MaxHeight = 100

	DefaultWidth  = 30
	DefaultHeight = 40
)

// ClampDimensions resets out-of-range dimensions to the nearest bound and
// returns one notice per adjustment.
func ClampDimensions(width, height int) (int, int, []string) {
	var notices []string

	if width < MinWidth {
		width = MinWidth
		notices = append(notices, fmt.Sprintf("Desired width too small. Reset to %d.", width))
	}
	if width > MaxWidth {
		width = MaxWidth
		notices = append(notices, fmt.Sprintf("Desired width too great. Reset to %d.", width))
	}
	if height < MinHeight {
		height = MinHeight
		notices = append(notices, fmt.Sprintf("Desired height too small. Reset to %d.", height))
	}
	if height > MaxHeight {
		height = MaxHeight
		notices = append(notices, fmt.Sprintf("Desired height too great. Reset to %d.", height))
	}

	return width, height, notices
}

// ParseDimension reads a user supplied dimension. Input that is not an
// integer yields def and a notice naming the rejected value.
func ParseDimension(raw, name string, def int) (int, string) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Sprintf("%s is not an acceptable %s. Using default: %d.", raw, name, def)
	}
	return value, ""
}
