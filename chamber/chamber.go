package chamber

import "errors"

// ErrLeafChildren is returned when a child chamber is added to a leaf.
// A leaf holding children would break the recursive aggregation contract,
// so this always indicates a level-construction bug.
var ErrLeafChildren = errors.New("chamber: leaf chamber cannot contain child chambers")

// Style holds the render hints for a chamber.
type Style struct {
	Background string // Hex color, e.g. "#1a1a2e"
	Border     string
}

// Chamber is a node in the level tree. A leaf holds only game objects; a
// compound chamber additionally holds an ordered list of child chambers.
// Topology is fixed after level construction; only object state mutates.
//
// All aggregate queries (counts, completion, object unions) are defined
// recursively: direct content first, then children in order (pre-order).
type Chamber struct {
	id       string
	name     string
	bounds   Rect
	style    Style
	compound bool

	essences []*Essence
	hazards  []*Hazard
	powerUps []*PowerUp
	children []*Chamber
}

// NewLeaf creates a leaf chamber. AddChild on the result always fails.
func NewLeaf(name string, bounds Rect) *Chamber {
	return &Chamber{
		id:     newID("chamber"),
		name:   name,
		bounds: bounds,
		style:  Style{Background: "#1a1a2e", Border: "#4a4a6e"},
	}
}

// NewCompound creates a chamber that may contain child chambers.
func NewCompound(name string, bounds Rect) *Chamber {
	return &Chamber{
		id:       newID("chamber"),
		name:     name,
		bounds:   bounds,
		style:    Style{Background: "#0f0f1e", Border: "#6a6a9e"},
		compound: true,
	}
}

func (c *Chamber) ID() string     { return c.id }
func (c *Chamber) Name() string   { return c.name }
func (c *Chamber) Bounds() Rect   { return c.bounds }
func (c *Chamber) Style() Style   { return c.style }
func (c *Chamber) Compound() bool { return c.compound }

// SetStyle overrides the render hints.
func (c *Chamber) SetStyle(s Style) { c.style = s }

// Contains reports whether a point lies inside the chamber bounds.
func (c *Chamber) Contains(px, py float64) bool {
	return c.bounds.Contains(px, py)
}

// AddChild appends a child chamber. Returns ErrLeafChildren on a leaf.
func (c *Chamber) AddChild(child *Chamber) error {
	if !c.compound {
		return ErrLeafChildren
	}
	c.children = append(c.children, child)
	return nil
}

// Children returns the child chambers in order. The returned slice is the
// chamber's own; callers must not modify it.
func (c *Chamber) Children() []*Chamber { return c.children }

// AddEssence adds an essence to the chamber's direct content.
func (c *Chamber) AddEssence(e *Essence) { c.essences = append(c.essences, e) }

// AddHazard adds a hazard to the chamber's direct content.
func (c *Chamber) AddHazard(h *Hazard) { c.hazards = append(c.hazards, h) }

// AddPowerUp adds a power-up to the chamber's direct content.
func (c *Chamber) AddPowerUp(p *PowerUp) { c.powerUps = append(c.powerUps, p) }

// Update advances the animation of direct content, then recurses into
// children. Collected objects stop animating.
func (c *Chamber) Update(dt float64) {
	for _, e := range c.essences {
		if !e.Collected {
			e.Update(dt)
		}
	}
	for _, h := range c.hazards {
		h.Update(dt)
	}
	for _, p := range c.powerUps {
		if !p.Collected {
			p.Update(dt)
		}
	}
	for _, child := range c.children {
		child.Update(dt)
	}
}

// TotalEssences returns the essence count of the whole subtree.
func (c *Chamber) TotalEssences() int {
	n := len(c.essences)
	for _, child := range c.children {
		n += child.TotalEssences()
	}
	return n
}

// RemainingEssences returns the uncollected essence count of the subtree.
func (c *Chamber) RemainingEssences() int {
	n := 0
	for _, e := range c.essences {
		if !e.Collected {
			n++
		}
	}
	for _, child := range c.children {
		n += child.RemainingEssences()
	}
	return n
}

// CollectedEssences returns the collected essence count of the subtree.
func (c *Chamber) CollectedEssences() int {
	return c.TotalEssences() - c.RemainingEssences()
}

// Complete reports whether every essence in the subtree is collected.
// A subtree with no essences is complete.
func (c *Chamber) Complete() bool {
	for _, e := range c.essences {
		if !e.Collected {
			return false
		}
	}
	for _, child := range c.children {
		if !child.Complete() {
			return false
		}
	}
	return true
}

// CompletionPercent returns the collected fraction of the subtree as a
// percentage. A subtree with no essences reports 100.
func (c *Chamber) CompletionPercent() float64 {
	total := c.TotalEssences()
	if total == 0 {
		return 100.0
	}
	collected := total - c.RemainingEssences()
	return float64(collected) * 100.0 / float64(total)
}

// Essences returns the subtree's essences in pre-order: direct content
// before child subtrees. The order is what makes collision scanning and
// render traversal deterministic.
func (c *Chamber) Essences() []*Essence {
	all := make([]*Essence, 0, len(c.essences))
	all = append(all, c.essences...)
	for _, child := range c.children {
		all = append(all, child.Essences()...)
	}
	return all
}

// Hazards returns the subtree's hazards in pre-order.
func (c *Chamber) Hazards() []*Hazard {
	all := make([]*Hazard, 0, len(c.hazards))
	all = append(all, c.hazards...)
	for _, child := range c.children {
		all = append(all, child.Hazards()...)
	}
	return all
}

// PowerUps returns the subtree's power-ups in pre-order.
func (c *Chamber) PowerUps() []*PowerUp {
	all := make([]*PowerUp, 0, len(c.powerUps))
	all = append(all, c.powerUps...)
	for _, child := range c.children {
		all = append(all, child.PowerUps()...)
	}
	return all
}

// RemoveEssence removes an essence by identity anywhere in the subtree.
// A chamber does not know which descendant owns an item, so removal is
// attempted at every level. Reports whether anything was removed.
func (c *Chamber) RemoveEssence(id string) bool {
	removed := false
	for i, e := range c.essences {
		if e.ID == id {
			c.essences = append(c.essences[:i], c.essences[i+1:]...)
			removed = true
			break
		}
	}
	for _, child := range c.children {
		if child.RemoveEssence(id) {
			removed = true
		}
	}
	return removed
}

// RemovePowerUp removes a power-up by identity anywhere in the subtree.
func (c *Chamber) RemovePowerUp(id string) bool {
	removed := false
	for i, p := range c.powerUps {
		if p.ID == id {
			c.powerUps = append(c.powerUps[:i], c.powerUps[i+1:]...)
			removed = true
			break
		}
	}
	for _, child := range c.children {
		if child.RemovePowerUp(id) {
			removed = true
		}
	}
	return removed
}

// FindDeepestAt returns the innermost chamber containing the point, or nil
// if the point is outside this chamber.
func (c *Chamber) FindDeepestAt(px, py float64) *Chamber {
	if !c.Contains(px, py) {
		return nil
	}
	for _, child := range c.children {
		if deeper := child.FindDeepestAt(px, py); deeper != nil {
			return deeper
		}
	}
	return c
}

// Walk visits the chamber and every descendant in pre-order.
func (c *Chamber) Walk(visit func(*Chamber)) {
	visit(c)
	for _, child := range c.children {
		child.Walk(visit)
	}
}
