package game

import "testing"

func newTestUnit(health float64) *Unit {
	return &Unit{
		Health:    health,
		MaxHealth: health,
		FireRate:  2,
		Alive:     true,
	}
}

func TestTakeDamage_ClampsAndKillsOnce(t *testing.T) {
	u := newTestUnit(100)

	if died := u.TakeDamage(40); died {
		t.Fatal("40 damage on 100 health must not kill")
	}
	if u.Health != 60 {
		t.Fatalf("expected 60 health, got %v", u.Health)
	}

	if died := u.TakeDamage(80); !died {
		t.Fatal("lethal damage must report the death transition")
	}
	if u.Health != 0 {
		t.Fatalf("health must clamp at 0, got %v", u.Health)
	}
	if u.Alive {
		t.Fatal("unit must be dead")
	}
}

func TestTakeDamage_DeadUnitIdempotent(t *testing.T) {
	u := newTestUnit(10)
	if died := u.TakeDamage(10); !died {
		t.Fatal("expected death")
	}
	// Further damage clamps harmlessly and never re-triggers death.
	if died := u.TakeDamage(10); died {
		t.Fatal("dead unit must not die twice")
	}
	if u.Health != 0 {
		t.Fatalf("health must stay 0, got %v", u.Health)
	}
}

func TestAliveMatchesHealth(t *testing.T) {
	u := newTestUnit(30)
	u.TakeDamage(29)
	if !u.Alive || u.Health <= 0 {
		t.Fatal("unit with positive health must be alive")
	}
	u.TakeDamage(1)
	if u.Alive || u.Health != 0 {
		t.Fatal("unit at zero health must be dead")
	}
}

func TestHeal_ClampsAtMaxAndSkipsDead(t *testing.T) {
	u := newTestUnit(100)
	u.TakeDamage(30)
	u.Heal(500)
	if u.Health != 100 {
		t.Fatalf("heal must clamp at max, got %v", u.Health)
	}

	u.TakeDamage(100)
	u.Heal(50)
	if u.Health != 0 || u.Alive {
		t.Fatal("healing a dead unit must do nothing")
	}
}

func TestFireCooldown(t *testing.T) {
	u := newTestUnit(100)
	if !u.CanFire() {
		t.Fatal("fresh unit must be able to fire")
	}
	u.ResetFireCooldown(0)
	if u.Cooldown != 0.5 {
		t.Fatalf("fire rate 2 must give 0.5s cooldown, got %v", u.Cooldown)
	}
	if u.CanFire() {
		t.Fatal("cooling unit must not fire")
	}
	u.TickCooldown(0.3)
	if u.CanFire() {
		t.Fatal("cooldown not yet elapsed")
	}
	u.TickCooldown(0.3)
	if !u.CanFire() {
		t.Fatal("cooldown elapsed, unit must fire")
	}
	if u.Cooldown != 0 {
		t.Fatalf("cooldown must clamp at 0, got %v", u.Cooldown)
	}
}

func TestFireCooldown_Jitter(t *testing.T) {
	u := newTestUnit(100)
	u.ResetFireCooldown(0.15)
	if u.Cooldown != 0.65 {
		t.Fatalf("expected 0.5 + 0.15 jitter, got %v", u.Cooldown)
	}
}
