package game

import (
	"math/rand"

	"github.com/pthm-cable/chroma/chamber"
)

// Level bundles a built chamber tree with its objectives and spawn point.
type Level struct {
	Number int
	Name   string
	Root   *chamber.Chamber

	Recipes []*Recipe

	SpawnX, SpawnY float64
}

// Update advances everything in the chamber tree.
func (l *Level) Update(dt float64) { l.Root.Update(dt) }

// Completed reports whether every essence in the level is collected.
func (l *Level) Completed() bool { return l.Root.Complete() }

// CompletionPercent returns the collected fraction of the level.
func (l *Level) CompletionPercent() float64 { return l.Root.CompletionPercent() }

// GenerateLevels builds the five level layouts for one session. Layouts are
// handcrafted; the rng only jitters object placement, so a fixed seed gives
// a reproducible session.
func GenerateLevels(w, h float64, difficulty int, rng *rand.Rand) []*Level {
	return []*Level{
		buildLevel1(w, h, difficulty, rng),
		buildLevel2(w, h, difficulty, rng),
		buildLevel3(w, h, difficulty, rng),
		buildLevel4(w, h, difficulty, rng),
		buildLevel5(w, h, difficulty, rng),
	}
}

// Level 1: a single chamber of fire essences, no hazards.
func buildLevel1(w, h float64, difficulty int, rng *rand.Rand) *Level {
	root := chamber.NewLeaf("Initiation Chamber", chamber.Rect{X: 50, Y: 50, W: w - 100, H: h - 100})
	root.SetStyle(chamber.Style{Background: "#1a1a2e", Border: "#4a4aff"})

	scatterEssences(root, 8+difficulty*2, []chamber.Color{chamber.Red, chamber.Orange}, 10, rng)
	root.AddPowerUp(chamber.NewPowerUp(chamber.PowerSpeedBoost, root.Bounds().CenterX(), root.Bounds().CenterY(), 10))

	lvl := &Level{
		Number: 1,
		Name:   "Initiation Chamber",
		Root:   root,
		SpawnX: root.Bounds().X + 100,
		SpawnY: root.Bounds().CenterY(),
	}
	lvl.Recipes = append(lvl.Recipes,
		NewRecipe("First Spark", "Collect 5 fire essences", 100).
			Require(chamber.Red, 3).
			Require(chamber.Orange, 2))
	return lvl
}

// Level 2: two sanctums under one compound root.
func buildLevel2(w, h float64, difficulty int, rng *rand.Rand) *Level {
	root := chamber.NewCompound("Elemental Duality", chamber.Rect{X: 30, Y: 30, W: w - 60, H: h - 60})
	root.SetStyle(chamber.Style{Background: "#0f0f1e", Border: "#6a6aff"})

	cw := (root.Bounds().W - 60) / 2
	ch := root.Bounds().H - 40

	fire := chamber.NewLeaf("Fire Sanctum", chamber.Rect{X: root.Bounds().X + 20, Y: root.Bounds().Y + 20, W: cw, H: ch})
	fire.SetStyle(chamber.Style{Background: "#2a1a1a", Border: "#ff4444"})
	scatterEssences(fire, 6+difficulty, []chamber.Color{chamber.Red, chamber.Orange}, 15, rng)
	fire.AddPowerUp(chamber.NewPowerUp(chamber.PowerShield, fire.Bounds().CenterX(), fire.Bounds().CenterY(), 15))

	water := chamber.NewLeaf("Water Sanctum", chamber.Rect{X: root.Bounds().X + cw + 40, Y: root.Bounds().Y + 20, W: cw, H: ch})
	water.SetStyle(chamber.Style{Background: "#1a1a2a", Border: "#4444ff"})
	scatterEssences(water, 6+difficulty, []chamber.Color{chamber.Blue, chamber.Cyan}, 15, rng)
	water.AddPowerUp(chamber.NewPowerUp(chamber.PowerMagnet, water.Bounds().CenterX(), water.Bounds().CenterY(), 12))

	mustAdd(root, fire)
	mustAdd(root, water)

	lvl := &Level{
		Number: 2,
		Name:   "Elemental Duality",
		Root:   root,
		SpawnX: root.Bounds().CenterX(),
		SpawnY: root.Bounds().CenterY(),
	}
	lvl.Recipes = append(lvl.Recipes,
		NewRecipe("Fire & Ice", "Master both fire and water", 200).
			Require(chamber.Red, 4).
			Require(chamber.Blue, 4))
	return lvl
}

// Level 3: one quadrant per element, static barriers appear.
func buildLevel3(w, h float64, difficulty int, rng *rand.Rand) *Level {
	root := chamber.NewCompound("Quadrant of Elements", chamber.Rect{X: 20, Y: 20, W: w - 40, H: h - 40})
	root.SetStyle(chamber.Style{Background: "#0a0a15", Border: "#8888ff"})

	qw := (root.Bounds().W - 30) / 2
	qh := (root.Bounds().H - 30) / 2
	const pad = 10.0
	rx, ry := root.Bounds().X, root.Bounds().Y

	quads := []struct {
		name     string
		bounds   chamber.Rect
		style    chamber.Style
		colors   []chamber.Color
		power    chamber.PowerUpKind
		powerDur float64
	}{
		{"Fire Quadrant", chamber.Rect{X: rx + pad, Y: ry + pad, W: qw, H: qh},
			chamber.Style{Background: "#2a1515", Border: "#ff6600"},
			[]chamber.Color{chamber.Red, chamber.Orange}, chamber.PowerScoreMultiplier, 15},
		{"Water Quadrant", chamber.Rect{X: rx + qw + pad*2, Y: ry + pad, W: qw, H: qh},
			chamber.Style{Background: "#151525", Border: "#0066ff"},
			[]chamber.Color{chamber.Blue, chamber.Cyan}, chamber.PowerRangeBoost, 12},
		{"Earth Quadrant", chamber.Rect{X: rx + pad, Y: ry + qh + pad*2, W: qw, H: qh},
			chamber.Style{Background: "#1a2a15", Border: "#00aa00"},
			[]chamber.Color{chamber.Green, chamber.Brown}, chamber.PowerShield, 15},
		{"Air Quadrant", chamber.Rect{X: rx + qw + pad*2, Y: ry + qh + pad*2, W: qw, H: qh},
			chamber.Style{Background: "#252525", Border: "#ffff00"},
			[]chamber.Color{chamber.White, chamber.Yellow}, chamber.PowerSpeedBoost, 10},
	}
	for _, q := range quads {
		c := chamber.NewLeaf(q.name, q.bounds)
		c.SetStyle(q.style)
		scatterEssences(c, 5+difficulty, q.colors, 20, rng)
		scatterStaticHazards(c, 2, rng)
		c.AddPowerUp(chamber.NewPowerUp(q.power, q.bounds.CenterX(), q.bounds.Y+50, q.powerDur))
		mustAdd(root, c)
	}

	lvl := &Level{
		Number: 3,
		Name:   "Quadrant of Elements",
		Root:   root,
		SpawnX: root.Bounds().CenterX(),
		SpawnY: root.Bounds().CenterY(),
	}
	lvl.Recipes = append(lvl.Recipes,
		NewRecipe("Elemental Mastery", "Collect from all elements", 300).
			Require(chamber.Red, 3).
			Require(chamber.Blue, 3).
			Require(chamber.Green, 3).
			Require(chamber.White, 3))
	return lvl
}

// Level 4: nested compounds with patrolling hazards.
func buildLevel4(w, h float64, difficulty int, rng *rand.Rand) *Level {
	root := chamber.NewCompound("Alchemical Depths", chamber.Rect{X: 15, Y: 15, W: w - 30, H: h - 30})
	root.SetStyle(chamber.Style{Background: "#050510", Border: "#aa88ff"})

	inner := chamber.NewCompound("Inner Sanctum", chamber.Rect{
		X: root.Bounds().X + 50, Y: root.Bounds().Y + 50,
		W: root.Bounds().W - 100, H: root.Bounds().H - 100,
	})
	inner.SetStyle(chamber.Style{Background: "#0a0a1a", Border: "#6666aa"})

	iw := (inner.Bounds().W - 40) / 3
	ih := inner.Bounds().H - 40
	ix, iy := inner.Bounds().X, inner.Bounds().Y

	labs := []struct {
		name   string
		x      float64
		style  chamber.Style
		colors []chamber.Color
		power  chamber.PowerUpKind
		dur    float64
	}{
		{"Transmutation Lab", ix + 10, chamber.Style{Background: "#1a1020", Border: "#ff00ff"},
			[]chamber.Color{chamber.Red, chamber.Blue}, chamber.PowerMultiAbsorb, 8},
		{"Fusion Core", ix + iw + 20, chamber.Style{Background: "#102010", Border: "#00ff00"},
			[]chamber.Color{chamber.Green, chamber.Orange}, chamber.PowerMagnet, 12},
		{"Ethereal Void", ix + iw*2 + 30, chamber.Style{Background: "#202020", Border: "#ffffff"},
			[]chamber.Color{chamber.White, chamber.Cyan}, chamber.PowerShield, 15},
	}
	for _, lab := range labs {
		c := chamber.NewLeaf(lab.name, chamber.Rect{X: lab.x, Y: iy + 20, W: iw, H: ih})
		c.SetStyle(lab.style)
		scatterEssences(c, 6+difficulty, lab.colors, 25, rng)
		scatterPatrolHazards(c, 1+difficulty, rng)
		c.AddPowerUp(chamber.NewPowerUp(lab.power, c.Bounds().CenterX(), c.Bounds().CenterY(), lab.dur))
		mustAdd(inner, c)
	}
	mustAdd(root, inner)

	scatterEssences(root, 4, []chamber.Color{chamber.Yellow, chamber.Brown}, 30, rng)

	lvl := &Level{
		Number: 4,
		Name:   "Alchemical Depths",
		Root:   root,
		SpawnX: root.Bounds().X + 100,
		SpawnY: root.Bounds().CenterY(),
	}
	lvl.Recipes = append(lvl.Recipes,
		NewRecipe("Deep Transmutation", "Complete the alchemical sequence", 400).
			Require(chamber.Red, 4).
			Require(chamber.Green, 4).
			Require(chamber.White, 4))
	return lvl
}

// Level 5: the full nesting depth with every hazard kind.
func buildLevel5(w, h float64, difficulty int, rng *rand.Rand) *Level {
	root := chamber.NewCompound("Philosopher's Nexus", chamber.Rect{X: 10, Y: 10, W: w - 20, H: h - 20})
	root.SetStyle(chamber.Style{Background: "#000005", Border: "#ffcc00"})
	rb := root.Bounds()

	central := chamber.NewCompound("Grand Athanor", chamber.Rect{
		X: rb.X + rb.W/4, Y: rb.Y + rb.H/4, W: rb.W / 2, H: rb.H / 2,
	})
	central.SetStyle(chamber.Style{Background: "#100510", Border: "#ff8800"})
	cb := central.Bounds()

	sanctum := chamber.NewLeaf("Philosopher's Stone", chamber.Rect{
		X: cb.X + cb.W/4, Y: cb.Y + cb.H/4, W: cb.W / 2, H: cb.H / 2,
	})
	sanctum.SetStyle(chamber.Style{Background: "#201010", Border: "#ffff00"})
	scatterEssences(sanctum, 5+difficulty*2, []chamber.Color{chamber.Yellow, chamber.Orange}, 50, rng)
	scatterPulsingHazards(sanctum, difficulty, rng)
	sanctum.AddPowerUp(chamber.NewPowerUp(chamber.PowerScoreMultiplier, sanctum.Bounds().CenterX(), sanctum.Bounds().CenterY(), 20))
	mustAdd(central, sanctum)

	scatterEssences(central, 8+difficulty, []chamber.Color{chamber.Red, chamber.Blue, chamber.Green, chamber.White}, 30, rng)
	scatterRotatingHazards(central, difficulty, rng)
	mustAdd(root, central)

	corner := rb.W / 5
	alcoves := []struct {
		name   string
		bounds chamber.Rect
		style  chamber.Style
		color  chamber.Color
		power  chamber.PowerUpKind
		dur    float64
	}{
		{"Fire Alcove", chamber.Rect{X: rb.X + 20, Y: rb.Y + 20, W: corner, H: corner},
			chamber.Style{Background: "#200505", Border: "#ff0000"}, chamber.Red, chamber.PowerSpeedBoost, 10},
		{"Water Alcove", chamber.Rect{X: rb.X + rb.W - corner - 20, Y: rb.Y + 20, W: corner, H: corner},
			chamber.Style{Background: "#050520", Border: "#0000ff"}, chamber.Blue, chamber.PowerMagnet, 12},
		{"Earth Alcove", chamber.Rect{X: rb.X + 20, Y: rb.Y + rb.H - corner - 20, W: corner, H: corner},
			chamber.Style{Background: "#052005", Border: "#00ff00"}, chamber.Green, chamber.PowerShield, 15},
		{"Air Alcove", chamber.Rect{X: rb.X + rb.W - corner - 20, Y: rb.Y + rb.H - corner - 20, W: corner, H: corner},
			chamber.Style{Background: "#202020", Border: "#ffffff"}, chamber.White, chamber.PowerMultiAbsorb, 8},
	}
	for _, a := range alcoves {
		c := chamber.NewLeaf(a.name, a.bounds)
		c.SetStyle(a.style)
		scatterEssences(c, 4, []chamber.Color{a.color}, 25, rng)
		scatterStaticHazards(c, 1, rng)
		c.AddPowerUp(chamber.NewPowerUp(a.power, a.bounds.CenterX(), a.bounds.CenterY(), a.dur))
		mustAdd(root, c)
	}

	scatterEssences(root, 6, []chamber.Color{chamber.Cyan, chamber.Brown, chamber.Yellow}, 35, rng)

	lvl := &Level{
		Number: 5,
		Name:   "Philosopher's Nexus",
		Root:   root,
		SpawnX: rb.X + 80,
		SpawnY: rb.CenterY(),
	}
	lvl.Recipes = append(lvl.Recipes,
		NewRecipe("Philosopher's Stone", "Complete the ultimate transmutation", 1000).
			Require(chamber.Red, 5).
			Require(chamber.Blue, 5).
			Require(chamber.Green, 5).
			Require(chamber.White, 5).
			Require(chamber.Yellow, 5))
	return lvl
}

// mustAdd panics on a leaf-child error. Layouts are static, so this only
// fires on a programming mistake in this file.
func mustAdd(parent, child *chamber.Chamber) {
	if err := parent.AddChild(child); err != nil {
		panic(err)
	}
}

func scatterEssences(c *chamber.Chamber, count int, colors []chamber.Color, pointValue int, rng *rand.Rand) {
	const margin = 40.0
	b := c.Bounds()
	for i := 0; i < count; i++ {
		color := colors[rng.Intn(len(colors))]
		x := b.X + margin + rng.Float64()*(b.W-margin*2)
		y := b.Y + margin + rng.Float64()*(b.H-margin*2)
		c.AddEssence(chamber.NewEssence(color, x, y, pointValue))
	}
}

func scatterStaticHazards(c *chamber.Chamber, count int, rng *rand.Rand) {
	const margin = 60.0
	b := c.Bounds()
	for i := 0; i < count; i++ {
		x := b.X + margin + rng.Float64()*(b.W-margin*2-60)
		y := b.Y + margin + rng.Float64()*(b.H-margin*2-30)
		c.AddHazard(chamber.NewHazard(chamber.HazardStatic, x, y, 60, 30))
	}
}

func scatterPatrolHazards(c *chamber.Chamber, count int, rng *rand.Rand) {
	const margin = 80.0
	b := c.Bounds()
	for i := 0; i < count; i++ {
		x := b.X + margin
		y := b.Y + margin + rng.Float64()*(b.H-margin*2)
		h := chamber.NewHazard(chamber.HazardPatrol, x, y, 40, 40)
		h.SetPatrolPath(b.X+b.W-margin-40, y, 80+rng.Float64()*60)
		c.AddHazard(h)
	}
}

func scatterRotatingHazards(c *chamber.Chamber, count int, rng *rand.Rand) {
	const margin = 80.0
	b := c.Bounds()
	for i := 0; i < count; i++ {
		x := b.X + margin + rng.Float64()*(b.W-margin*2-50)
		y := b.Y + margin + rng.Float64()*(b.H-margin*2-50)
		h := chamber.NewHazard(chamber.HazardRotating, x, y, 50, 15)
		h.SetRotationSpeed(60 + rng.Float64()*60)
		c.AddHazard(h)
	}
}

func scatterPulsingHazards(c *chamber.Chamber, count int, rng *rand.Rand) {
	const margin = 60.0
	b := c.Bounds()
	for i := 0; i < count; i++ {
		x := b.X + margin + rng.Float64()*(b.W-margin*2-40)
		y := b.Y + margin + rng.Float64()*(b.H-margin*2-40)
		c.AddHazard(chamber.NewHazard(chamber.HazardPulsing, x, y, 40, 40))
	}
}
