// Package ui draws the HUD and menu overlays. It consumes plain snapshot
// data so the simulation never depends on rendering.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color
	CooldownFill  rl.Color
	OverlayDim    rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		BarBg:         rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:    rl.Color{R: 200, G: 100, B: 100, A: 255},
		BarFillMedium: rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:   rl.Color{R: 100, G: 200, B: 100, A: 255},
		CooldownFill:  rl.Color{R: 100, G: 150, B: 200, A: 255},
		OverlayDim:    rl.Color{R: 0, G: 0, B: 0, A: 180},

		Padding:        10,
		LineHeight:     18,
		LabelWidth:     80,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 16,
		TitleFontSize:  40,
	}
}

// ParseHex converts a "#rrggbb" style string to a raylib color. Malformed
// input yields opaque gray rather than an error; style strings come from
// level data, not users.
func ParseHex(s string) rl.Color {
	if len(s) != 7 || s[0] != '#' {
		return rl.Gray
	}
	hex := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hex(s[1+i*2])
		lo, ok2 := hex(s[2+i*2])
		if !ok1 || !ok2 {
			return rl.Gray
		}
		out[i] = hi<<4 | lo
	}
	return rl.Color{R: out[0], G: out[1], B: out[2], A: 255}
}
