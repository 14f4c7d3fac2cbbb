package ansi

import (
	"fmt"
	"math"
	"strings"
)

// baseColors are the 16 standard terminal colors, palette indices 0-15
var baseColors = [16]string{
	"000", "c00", "0c0", "cc0", "00c", "c0c", "0cc", "ccc",
	"888", "f00", "0f0", "ff0", "00f", "f0f", "0ff", "fff",
}

// cubeSteps are the per-channel hex digits of the 6x6x6 color cube
var cubeSteps = [6]string{"0", "6", "9", "a", "d", "f"}

// PaletteColor returns the hex color (without #) of a 256-color palette index.
// Indices outside 0-255 return an empty string.
func PaletteColor(n int) string {
	switch {
	case n < 0 || n > 255:
		return ""
	case n < 16:
		return baseColors[n]
	case n < 232:
		i := n - 16
		return cubeSteps[i/36] + cubeSteps[(i/6)%6] + cubeSteps[i%6]
	default:
		level := int(math.Round(float64(n-231) * 256 / 26))
		return fmt.Sprintf("%02x%02x%02x", level, level, level)
	}
}

// GenerateStyle returns the stylesheet for every class the interpreter emits,
// scoped under selector. The output is deterministic for a given selector.
func GenerateStyle(selector string) string {
	scope := ""
	if selector != "" {
		scope = selector + " "
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s.ansi1{font-weight:bold}\n", scope))
	b.WriteString(fmt.Sprintf("%s.ansi3{font-style:italic}\n", scope))
	b.WriteString(fmt.Sprintf("%s.ansi4{text-decoration:underline}\n", scope))

	for i := 0; i < 8; i++ {
		b.WriteString(fmt.Sprintf("%s.ansi%d{color:#%s}\n", scope, 30+i, baseColors[i]))
		b.WriteString(fmt.Sprintf("%s.ansi%d{background-color:#%s}\n", scope, 40+i, baseColors[i]))
		b.WriteString(fmt.Sprintf("%s.ansi%d{color:#%s}\n", scope, 90+i, baseColors[8+i]))
		b.WriteString(fmt.Sprintf("%s.ansi%d{background-color:#%s}\n", scope, 100+i, baseColors[8+i]))
	}

	for n := 0; n < 256; n++ {
		color := PaletteColor(n)
		b.WriteString(fmt.Sprintf("%s.ansifg-%d{color:#%s}\n", scope, n, color))
		b.WriteString(fmt.Sprintf("%s.ansibg-%d{background-color:#%s}\n", scope, n, color))
	}

	return b.String()
}
