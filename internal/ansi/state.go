package ansi

import (
	"strconv"
	"strings"
)

// maxPaletteColor is the largest index of the 256-color palette
const maxPaletteColor = 255

// Color categories shared by the 30-37/90-97 and 40-47/100-107 code ranges.
// Every other SGR code is its own category.
const (
	categoryFg = "fg"
	categoryBg = "bg"
)

// attribute is one active style category and its value
type attribute struct {
	category string
	value    int
	palette  bool
}

// class renders the attribute as a CSS class token
func (a attribute) class() string {
	if a.palette {
		return "ansi" + a.category + "-" + strconv.Itoa(a.value)
	}

	return "ansi" + strconv.Itoa(a.value)
}

// styleState is an ordered association list of category -> value.
// Order matters: it is the order classes are rendered in.
type styleState []attribute

// render joins the classes of every attribute in state order
func (s styleState) render() string {
	if len(s) == 0 {
		return ""
	}

	classes := make([]string, len(s))
	for i, a := range s {
		classes[i] = a.class()
	}

	return strings.Join(classes, " ")
}

// instruction accumulates the effect of one SGR instruction on a prior state
type instruction struct {
	touched  styleState
	cleared  map[string]bool
	clearAll bool
}

// touch sets a category, keeping its first-touch position when already touched
func (in *instruction) touch(a attribute) {
	for i := range in.touched {
		if in.touched[i].category == a.category {
			in.touched[i] = a
			return
		}
	}

	in.touched = append(in.touched, a)
}

// clear removes a category from both the touched set and the carried-over state
func (in *instruction) clear(category string) {
	for i := range in.touched {
		if in.touched[i].category == category {
			in.touched = append(in.touched[:i:i], in.touched[i+1:]...)
			break
		}
	}

	if in.cleared == nil {
		in.cleared = make(map[string]bool)
	}

	in.cleared[category] = true
}

// reset clears every category
func (in *instruction) reset() {
	in.touched = in.touched[:0]
	in.clearAll = true
}

// apply builds the new state: touched categories first, then the untouched
// and uncleared categories of prior in their previous order
func (in *instruction) apply(prior styleState) styleState {
	next := make(styleState, 0, len(in.touched)+len(prior))
	next = append(next, in.touched...)

	if in.clearAll {
		return next
	}

	for _, a := range prior {
		if in.cleared[a.category] || in.touched.has(a.category) {
			continue
		}

		next = append(next, a)
	}

	return next
}

// has reports whether the category is present in the state
func (s styleState) has(category string) bool {
	for _, a := range s {
		if a.category == category {
			return true
		}
	}

	return false
}

// codeCategory maps a numeric SGR code to its category
func codeCategory(code int) string {
	switch {
	case code >= 30 && code <= 37, code >= 90 && code <= 97:
		return categoryFg
	case code >= 40 && code <= 47, code >= 100 && code <= 107:
		return categoryBg
	default:
		return strconv.Itoa(code)
	}
}

// applySGR interprets one SGR parameter list against the prior state.
// An empty list is the same as a single 0. A 38;5;N or 48;5;N triple with N
// outside the palette is read as three plain codes.
func applySGR(prior styleState, codes []int) styleState {
	if len(codes) == 0 {
		codes = []int{0}
	}

	var in instruction

	for i := 0; i < len(codes); i++ {
		code := codes[i]

		switch {
		case (code == 38 || code == 48) && i+2 < len(codes) && codes[i+1] == 5 && codes[i+2] <= maxPaletteColor:
			category := categoryFg
			if code == 48 {
				category = categoryBg
			}

			in.touch(attribute{category: category, value: codes[i+2], palette: true})
			i += 2
		case code == 0:
			in.reset()
		case code == 39:
			in.clear(categoryFg)
		case code == 49:
			in.clear(categoryBg)
		default:
			in.touch(attribute{category: codeCategory(code), value: code})
		}
	}

	return in.apply(prior)
}
