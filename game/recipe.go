package game

import "github.com/pthm-cable/chroma/chamber"

// Recipe is a level objective: a named combination of essences worth a
// bonus score once met.
type Recipe struct {
	Name         string
	Description  string
	Requirements map[chamber.Color]int
	Bonus        int
	Completed    bool
}

// NewRecipe creates an objective with no requirements yet.
func NewRecipe(name, description string, bonus int) *Recipe {
	return &Recipe{
		Name:         name,
		Description:  description,
		Requirements: make(map[chamber.Color]int),
		Bonus:        bonus,
	}
}

// Require adds a per-color requirement and returns the recipe for chaining.
func (r *Recipe) Require(c chamber.Color, count int) *Recipe {
	r.Requirements[c] = count
	return r
}

// TotalRequired returns the sum of all per-color requirements.
func (r *Recipe) TotalRequired() int {
	total := 0
	for _, n := range r.Requirements {
		total += n
	}
	return total
}

// Satisfied reports whether the objective is met for a given collection
// total. Completion checks only the aggregate count against the summed
// requirements; the per-color breakdown is display-only. Tests pin this
// behavior, see TestRecipeAggregateCount.
func (r *Recipe) Satisfied(collected int) bool {
	return collected >= r.TotalRequired()
}
