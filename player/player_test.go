package player

import (
	"math"
	"testing"

	"github.com/pthm-cable/chroma/chamber"
	"github.com/pthm-cable/chroma/config"
)

func newTestPlayer() *Player {
	config.MustInit("")
	return New(500, 500)
}

func TestSpawnAtFullHealth(t *testing.T) {
	p := newTestPlayer()
	if p.Health != config.Cfg().Player.MaxHealth {
		t.Errorf("Health = %f, want %f", p.Health, config.Cfg().Player.MaxHealth)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("Health = %f, MaxHealth = %f, want equal", p.Health, p.MaxHealth)
	}
}

func TestMovementNormalized(t *testing.T) {
	p := newTestPlayer()

	// Straight right for one second at base speed 200 and Fire (x1.2).
	p.SetMove(false, false, false, true)
	p.Update(1)
	if math.Abs(p.X-740) > 0.001 || p.Y != 500 {
		t.Errorf("after 1s right, at (%f, %f), want (740, 500)", p.X, p.Y)
	}

	// Diagonal must cover the same distance, not sqrt(2) more.
	q := newTestPlayer()
	q.SetMove(false, true, false, true)
	q.Update(1)
	dx, dy := q.X-500, q.Y-500
	dist := math.Sqrt(dx*dx + dy*dy)
	if math.Abs(dist-240) > 0.001 {
		t.Errorf("diagonal distance = %f, want 240", dist)
	}
}

func TestElementSpeedMultipliers(t *testing.T) {
	tests := []struct {
		element Element
		want    float64
	}{
		{Fire, 240},
		{Water, 200},
		{Earth, 160},
		{Air, 280},
	}
	for _, tc := range tests {
		t.Run(tc.element.String(), func(t *testing.T) {
			p := newTestPlayer()
			p.SwitchElement(tc.element)
			p.SetMove(false, false, false, true)
			p.Update(1)
			if math.Abs(p.X-500-tc.want) > 0.001 {
				t.Errorf("%s moved %f, want %f", tc.element, p.X-500, tc.want)
			}
		})
	}
}

func TestSwitchElementNoOpOnSame(t *testing.T) {
	p := newTestPlayer()
	p.SwitchElement(Water)
	p.UseSpecial()
	cd := p.Cooldown()

	if p.SwitchElement(Water) {
		t.Error("switching to the active element reported a transition")
	}
	if p.Cooldown() != cd {
		t.Errorf("no-op switch changed cooldown: %f -> %f", cd, p.Cooldown())
	}
	if p.PreviousElement() != "Fire" {
		t.Errorf("PreviousElement() = %q, want Fire", p.PreviousElement())
	}

	// A real switch resets the cooldown and records the outgoing state.
	if !p.SwitchElement(Earth) {
		t.Fatal("switch to a different element reported no-op")
	}
	if p.Cooldown() != 0 {
		t.Errorf("cooldown after switch = %f, want 0", p.Cooldown())
	}
	if p.PreviousElement() != "Water" {
		t.Errorf("PreviousElement() = %q, want Water", p.PreviousElement())
	}
}

func TestSpecialCooldownGate(t *testing.T) {
	p := newTestPlayer()

	if !p.UseSpecial() {
		t.Fatal("special off cooldown reported not-ready")
	}
	if p.Cooldown() != Fire.CooldownMax() {
		t.Errorf("cooldown after use = %f, want %f", p.Cooldown(), Fire.CooldownMax())
	}
	if p.UseSpecial() {
		t.Error("special on cooldown fired anyway")
	}

	// Cooldown runs down with updates.
	for i := 0; i < 301; i++ {
		p.Update(1.0 / 60.0)
	}
	if !p.UseSpecial() {
		t.Error("special still gated after cooldown elapsed")
	}
}

func TestFireBurst(t *testing.T) {
	p := newTestPlayer()
	p.UseSpecial()
	if p.SpeedBurstMult() != 2.0 {
		t.Fatalf("burst multiplier = %f, want 2.0", p.SpeedBurstMult())
	}

	p.SetMove(false, false, false, true)
	p.Update(1)
	if math.Abs(p.X-500-480) > 0.001 {
		t.Errorf("burst movement = %f, want 480 (200 * 1.2 * 2)", p.X-500)
	}

	// Burst expires after 2s.
	p.SetMove(false, false, false, false)
	p.Update(1.5)
	if p.SpeedBurstMult() != 1.0 {
		t.Errorf("burst multiplier after expiry = %f, want 1.0", p.SpeedBurstMult())
	}
}

func TestAirDashOverridesMovement(t *testing.T) {
	p := newTestPlayer()
	p.SwitchElement(Air)

	// Establish an upward movement direction.
	p.SetMove(true, false, false, false)
	p.Update(1.0 / 60.0)
	startY := p.Y

	if !p.UseSpecial() {
		t.Fatal("dash not ready after element switch")
	}
	if !p.Dashing() {
		t.Fatal("Dashing() = false after air special")
	}

	// Dash covers 200 units at 800 u/s regardless of held input.
	p.SetMove(false, false, false, true)
	p.Update(0.25)
	if math.Abs((startY-p.Y)-200) > 0.001 {
		t.Errorf("dash covered %f, want 200", startY-p.Y)
	}
	if p.Dashing() {
		t.Error("dash still in progress after full distance")
	}
	if p.X != 500 {
		t.Errorf("held input moved player during dash: X = %f", p.X)
	}
}

func TestDashDefaultsToPlusX(t *testing.T) {
	p := newTestPlayer()
	p.SwitchElement(Air)
	p.UseSpecial()
	p.Update(0.25)
	if math.Abs(p.X-700) > 0.001 || p.Y != 500 {
		t.Errorf("stationary dash ended at (%f, %f), want (700, 500)", p.X, p.Y)
	}

	// Moving, then stopping, must not leave a stale dash direction behind.
	q := newTestPlayer()
	q.SwitchElement(Air)
	q.SetMove(true, false, false, false)
	q.Update(1.0 / 60.0)
	q.SetMove(false, false, false, false)
	q.Update(1.0 / 60.0)
	startX, startY := q.X, q.Y

	q.UseSpecial()
	q.Update(0.25)
	if math.Abs((q.X-startX)-200) > 0.001 || q.Y != startY {
		t.Errorf("dash after stopping moved (%f, %f), want (+200, 0)",
			q.X-startX, q.Y-startY)
	}
}

func TestTakeDamageAndInvincibility(t *testing.T) {
	p := newTestPlayer()

	if died := p.TakeDamage(20); died {
		t.Error("20 damage at full health reported death")
	}
	if p.Health != 80 {
		t.Errorf("Health = %f, want 80", p.Health)
	}
	if !p.Invincible() {
		t.Fatal("no invincibility window after a hit")
	}

	// A second hit inside the window is a no-op.
	p.TakeDamage(100)
	if p.Health != 80 {
		t.Errorf("Health changed during invincibility: %f", p.Health)
	}

	// Window lasts 1.5s.
	p.Update(1.4)
	if !p.Invincible() {
		t.Error("invincibility ended early")
	}
	p.Update(0.2)
	if p.Invincible() {
		t.Error("invincibility outlasted its window")
	}
}

func TestMitigationReducesDamage(t *testing.T) {
	p := newTestPlayer()
	p.ApplyPowerUp(chamber.PowerShield, 15)

	p.TakeDamage(20)
	if p.Health != 90 {
		t.Errorf("Health with 50%% mitigation = %f, want 90", p.Health)
	}
}

func TestEarthShieldBlocksEverything(t *testing.T) {
	p := newTestPlayer()
	p.SwitchElement(Earth)
	p.UseSpecial()

	p.TakeDamage(50)
	if p.Health != 100 {
		t.Errorf("Health behind earth shield = %f, want 100", p.Health)
	}
	if p.Invincible() {
		t.Error("blocked hit started an invincibility window")
	}

	// Shield lasts 4s, then damage lands again.
	p.Update(4.1)
	p.TakeDamage(50)
	if p.Health != 50 {
		t.Errorf("Health after shield expiry = %f, want 50", p.Health)
	}
}

func TestDeathFloorsAtZero(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage(60)
	p.Update(2) // clear invincibility
	if died := p.TakeDamage(500); !died {
		t.Error("lethal hit did not report death")
	}
	if p.Health != 0 {
		t.Errorf("Health = %f, want floor 0", p.Health)
	}
	if p.Alive() {
		t.Error("Alive() = true at zero health")
	}
}

func TestScoreMultiplierFloors(t *testing.T) {
	p := newTestPlayer()
	p.ApplyPowerUp(chamber.PowerScoreMultiplier, 15)

	if got := p.AddScore(15); got != 30 {
		t.Errorf("AddScore(15) awarded %d, want 30", got)
	}

	e := chamber.NewEssence(chamber.Red, 0, 0, 10)
	if got := p.Absorb(e); got != 20 {
		t.Errorf("Absorb awarded %d, want 20", got)
	}
	if p.Collected != 1 {
		t.Errorf("Collected = %d, want 1", p.Collected)
	}
	if p.Score != 50 {
		t.Errorf("Score = %d, want 50", p.Score)
	}
}

func TestClampKeepsOrbInside(t *testing.T) {
	p := newTestPlayer()
	p.X, p.Y = -50, 9999
	p.Clamp(chamber.Rect{X: 0, Y: 0, W: 1280, H: 720})
	if p.X != 20 || p.Y != 700 {
		t.Errorf("clamped to (%f, %f), want (20, 700)", p.X, p.Y)
	}
}

func TestElementCompatibility(t *testing.T) {
	tests := []struct {
		element Element
		yes     [2]chamber.Color
		no      chamber.Color
	}{
		{Fire, [2]chamber.Color{chamber.Red, chamber.Orange}, chamber.Blue},
		{Water, [2]chamber.Color{chamber.Blue, chamber.Cyan}, chamber.Green},
		{Earth, [2]chamber.Color{chamber.Green, chamber.Brown}, chamber.White},
		{Air, [2]chamber.Color{chamber.White, chamber.Yellow}, chamber.Red},
	}
	for _, tc := range tests {
		for _, c := range tc.yes {
			if !tc.element.CanAbsorb(c) {
				t.Errorf("%s cannot absorb %s", tc.element, c)
			}
		}
		if tc.element.CanAbsorb(tc.no) {
			t.Errorf("%s absorbs incompatible %s", tc.element, tc.no)
		}
	}
}

func TestElementByName(t *testing.T) {
	if e, ok := ElementByName("Water"); !ok || e != Water {
		t.Errorf("ElementByName(Water) = %v, %v", e, ok)
	}
	if _, ok := ElementByName("Aether"); ok {
		t.Error("unknown element name resolved")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	config.MustInit("")
	p := New(100, 100)
	p.TakeDamage(30)

	p.Heal(10)
	if p.Health != 80 {
		t.Errorf("Health = %f, want 80", p.Health)
	}

	p.Heal(500)
	if p.Health != p.MaxHealth {
		t.Errorf("Health = %f, want clamped to %f", p.Health, p.MaxHealth)
	}
}
