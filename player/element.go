package player

import "github.com/pthm-cable/chroma/chamber"

// Element identifies one of the four mutually exclusive elemental states.
type Element uint8

const (
	Fire Element = iota
	Water
	Earth
	Air
)

// elementInfo holds the fixed per-element data: the two absorbable essence
// colors, the movement speed multiplier, the special ability cooldown, and
// display styling.
var elementInfo = [...]struct {
	name      string
	colors    [2]chamber.Color
	speedMult float64
	cooldown  float64
	hex       string
}{
	{"Fire", [2]chamber.Color{chamber.Red, chamber.Orange}, 1.2, 5.0, "#ff4500"},
	{"Water", [2]chamber.Color{chamber.Blue, chamber.Cyan}, 1.0, 8.0, "#1e90ff"},
	{"Earth", [2]chamber.Color{chamber.Green, chamber.Brown}, 0.8, 10.0, "#8b4513"},
	{"Air", [2]chamber.Color{chamber.White, chamber.Yellow}, 1.4, 3.0, "#f0f8ff"},
}

func (e Element) String() string { return elementInfo[e].name }

// SpeedMultiplier returns the element's movement speed factor.
func (e Element) SpeedMultiplier() float64 { return elementInfo[e].speedMult }

// CooldownMax returns the special ability cooldown in seconds.
func (e Element) CooldownMax() float64 { return elementInfo[e].cooldown }

// Hex returns the element's display color.
func (e Element) Hex() string { return elementInfo[e].hex }

// CanAbsorb reports whether the element is compatible with an essence color.
func (e Element) CanAbsorb(c chamber.Color) bool {
	return c == elementInfo[e].colors[0] || c == elementInfo[e].colors[1]
}

// Colors returns the element's two compatible essence colors.
func (e Element) Colors() [2]chamber.Color { return elementInfo[e].colors }

// ElementByName maps a display name back to an element. The boolean is
// false for unknown names.
func ElementByName(name string) (Element, bool) {
	for e := Fire; e <= Air; e++ {
		if elementInfo[e].name == name {
			return e, true
		}
	}
	return Fire, false
}

// Special ability effect parameters.
const (
	fireBurstMult     = 2.0
	fireBurstDuration = 2.0
	waterPhaseTime    = 3.0
	earthShieldTime   = 4.0
	airDashDistance   = 200.0
)
