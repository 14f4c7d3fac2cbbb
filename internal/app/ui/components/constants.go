package components

// Layout constants
const (
	HeaderHeight  = 1
	FooterHeight  = 2
	MinBodyHeight = 1
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Gutter layout constants
const (
	GutterDigits = 6
	GutterWidth  = GutterDigits + 2
)
