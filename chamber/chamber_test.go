package chamber

import (
	"errors"
	"math"
	"testing"
)

// buildNestedLevel builds a compound chamber with one leaf child and one
// compound child that itself holds a leaf. Essence counts: 2 direct, 1 in
// the first leaf, 3 in the nested leaf.
func buildNestedLevel() (root, leafA, inner, leafB *Chamber) {
	root = NewCompound("root", Rect{X: 0, Y: 0, W: 1000, H: 1000})
	root.AddEssence(NewEssence(Red, 50, 50, 10))
	root.AddEssence(NewEssence(Blue, 60, 60, 10))

	leafA = NewLeaf("leaf-a", Rect{X: 100, Y: 100, W: 200, H: 200})
	leafA.AddEssence(NewEssence(Green, 150, 150, 10))

	inner = NewCompound("inner", Rect{X: 400, Y: 400, W: 400, H: 400})
	leafB = NewLeaf("leaf-b", Rect{X: 450, Y: 450, W: 100, H: 100})
	leafB.AddEssence(NewEssence(Orange, 460, 460, 10))
	leafB.AddEssence(NewEssence(Cyan, 470, 470, 10))
	leafB.AddEssence(NewEssence(White, 480, 480, 10))

	if err := inner.AddChild(leafB); err != nil {
		panic(err)
	}
	if err := root.AddChild(leafA); err != nil {
		panic(err)
	}
	if err := root.AddChild(inner); err != nil {
		panic(err)
	}
	return root, leafA, inner, leafB
}

func TestLeafRejectsChildren(t *testing.T) {
	leaf := NewLeaf("leaf", Rect{W: 100, H: 100})
	err := leaf.AddChild(NewLeaf("child", Rect{W: 10, H: 10}))
	if !errors.Is(err, ErrLeafChildren) {
		t.Fatalf("AddChild on leaf = %v, want ErrLeafChildren", err)
	}
	if len(leaf.Children()) != 0 {
		t.Errorf("leaf has %d children after failed add", len(leaf.Children()))
	}
}

func TestRecursiveCounts(t *testing.T) {
	root, leafA, inner, leafB := buildNestedLevel()

	if got := root.TotalEssences(); got != 6 {
		t.Errorf("root.TotalEssences() = %d, want 6", got)
	}
	if got := inner.TotalEssences(); got != 3 {
		t.Errorf("inner.TotalEssences() = %d, want 3", got)
	}
	if got := root.RemainingEssences(); got != 6 {
		t.Errorf("root.RemainingEssences() = %d, want 6", got)
	}

	// Collect one direct essence and one nested essence.
	root.Essences()[0].Collected = true
	leafB.Essences()[0].Collected = true

	if got := root.RemainingEssences(); got != 4 {
		t.Errorf("after two collections RemainingEssences() = %d, want 4", got)
	}
	if got := root.CollectedEssences(); got != 2 {
		t.Errorf("CollectedEssences() = %d, want 2", got)
	}
	if got := leafA.RemainingEssences(); got != 1 {
		t.Errorf("untouched leaf RemainingEssences() = %d, want 1", got)
	}
}

func TestCompletionPercent(t *testing.T) {
	root, _, _, _ := buildNestedLevel()

	if got := root.CompletionPercent(); got != 0 {
		t.Errorf("fresh level CompletionPercent() = %f, want 0", got)
	}

	all := root.Essences()
	for i := 0; i < 4; i++ {
		all[i].Collected = true
	}
	if got := root.CompletionPercent(); math.Abs(got-66.666666) > 0.001 {
		t.Errorf("4/6 collected CompletionPercent() = %f, want 66.67", got)
	}
	if root.Complete() {
		t.Error("Complete() = true with essences remaining")
	}

	for _, e := range all {
		e.Collected = true
	}
	if !root.Complete() {
		t.Error("Complete() = false with everything collected")
	}
	if got := root.CompletionPercent(); got != 100 {
		t.Errorf("fully collected CompletionPercent() = %f, want 100", got)
	}
}

func TestEmptyChamberIsComplete(t *testing.T) {
	// Decoration-only regions must not block level completion.
	empty := NewLeaf("decoration", Rect{W: 50, H: 50})
	empty.AddHazard(NewHazard(HazardStatic, 10, 10, 20, 20))

	if !empty.Complete() {
		t.Error("essence-free chamber should be complete")
	}
	if got := empty.CompletionPercent(); got != 100 {
		t.Errorf("essence-free CompletionPercent() = %f, want 100", got)
	}
}

func TestPreOrderAggregation(t *testing.T) {
	root, leafA, _, leafB := buildNestedLevel()

	all := root.Essences()
	if len(all) != 6 {
		t.Fatalf("Essences() returned %d, want 6", len(all))
	}
	// Direct content first, then children in insertion order.
	wantColors := []Color{Red, Blue, Green, Orange, Cyan, White}
	for i, e := range all {
		if e.Color != wantColors[i] {
			t.Errorf("Essences()[%d].Color = %s, want %s", i, e.Color, wantColors[i])
		}
	}

	leafA.AddHazard(NewHazard(HazardPatrol, 120, 120, 30, 30))
	leafB.AddHazard(NewHazard(HazardRotating, 460, 500, 30, 30))
	root.AddHazard(NewHazard(HazardStatic, 10, 10, 40, 40))

	hazards := root.Hazards()
	if len(hazards) != 3 {
		t.Fatalf("Hazards() returned %d, want 3", len(hazards))
	}
	if hazards[0].Kind != HazardStatic || hazards[1].Kind != HazardPatrol || hazards[2].Kind != HazardRotating {
		t.Errorf("hazard order = %v, %v, %v; want static, patrol, rotating",
			hazards[0].Kind, hazards[1].Kind, hazards[2].Kind)
	}
}

func TestRemoveByIDAtAnyDepth(t *testing.T) {
	root, _, _, leafB := buildNestedLevel()

	nested := leafB.Essences()[1]
	if !root.RemoveEssence(nested.ID) {
		t.Fatal("RemoveEssence() = false for nested essence")
	}
	if got := root.TotalEssences(); got != 5 {
		t.Errorf("TotalEssences() after removal = %d, want 5", got)
	}
	for _, e := range root.Essences() {
		if e.ID == nested.ID {
			t.Error("removed essence still reachable from root")
		}
	}

	if root.RemoveEssence("essence-9999") {
		t.Error("RemoveEssence() = true for unknown id")
	}

	p := NewPowerUp(PowerMagnet, 500, 500, 12)
	leafB.AddPowerUp(p)
	if !root.RemovePowerUp(p.ID) {
		t.Error("RemovePowerUp() = false for nested power-up")
	}
	if len(root.PowerUps()) != 0 {
		t.Error("power-up still present after removal")
	}
}

func TestFindDeepestAt(t *testing.T) {
	root, leafA, inner, leafB := buildNestedLevel()

	tests := []struct {
		name string
		x, y float64
		want *Chamber
	}{
		{"outside everything", -5, -5, nil},
		{"root only", 900, 50, root},
		{"inside first leaf", 150, 150, leafA},
		{"inside inner but not its leaf", 700, 700, inner},
		{"deepest leaf", 470, 470, leafB},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := root.FindDeepestAt(tc.x, tc.y)
			if got != tc.want {
				gotName, wantName := "nil", "nil"
				if got != nil {
					gotName = got.Name()
				}
				if tc.want != nil {
					wantName = tc.want.Name()
				}
				t.Errorf("FindDeepestAt(%v, %v) = %s, want %s", tc.x, tc.y, gotName, wantName)
			}
		})
	}
}

func TestUpdateSkipsCollected(t *testing.T) {
	root := NewCompound("root", Rect{W: 500, H: 500})
	leaf := NewLeaf("leaf", Rect{W: 500, H: 500})
	if err := root.AddChild(leaf); err != nil {
		t.Fatal(err)
	}

	active := NewEssence(Red, 100, 100, 10)
	collected := NewEssence(Blue, 200, 200, 10)
	collected.Collected = true
	leaf.AddEssence(active)
	leaf.AddEssence(collected)

	activeBefore := active.pulsePhase
	collectedBefore := collected.pulsePhase
	root.Update(0.5)

	if active.pulsePhase == activeBefore {
		t.Error("active essence did not animate")
	}
	if collected.pulsePhase != collectedBefore {
		t.Error("collected essence kept animating")
	}
}

func TestWalkOrder(t *testing.T) {
	root, leafA, inner, leafB := buildNestedLevel()

	var visited []string
	root.Walk(func(c *Chamber) { visited = append(visited, c.Name()) })

	want := []string{root.Name(), leafA.Name(), inner.Name(), leafB.Name()}
	if len(visited) != len(want) {
		t.Fatalf("Walk visited %d chambers, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Walk order[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}
