package systems

import (
	"testing"

	"github.com/pthm-cable/vinopet/components"
)

func TestDecayThresholds(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Health: 80, Happiness: 80, Energy: 80}

	tests := []struct {
		hours  float64
		hungry bool
		sleepy bool
	}{
		{10, false, false},
		{24, false, false},
		{25, true, false},
		{48, true, false},
		{49, true, true},
	}
	for _, tt := range tests {
		u := e.Decay(pet, tt.hours)
		if u.IsHungry != tt.hungry || u.IsSleepy != tt.sleepy {
			t.Errorf("Decay(%vh) hungry/sleepy = %v/%v, want %v/%v", tt.hours, u.IsHungry, u.IsSleepy, tt.hungry, tt.sleepy)
		}
	}
}

func TestDecayRates(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Health: 80, Happiness: 80, Energy: 80}

	// 36h = 1.5 days: health floor(7.5)=7, happiness 15, energy floor(22.5)=22
	u := e.Decay(pet, 36)
	if u.Health != 73 || u.Happiness != 65 || u.Energy != 58 {
		t.Errorf("vitals = %d/%d/%d, want 73/65/58", u.Health, u.Happiness, u.Energy)
	}
	if u.Mood != components.MoodHappy {
		t.Errorf("mood = %s, want happy", u.Mood)
	}

	// Short absences round down: 1h decays nothing, 2h costs 1 energy
	u = e.Decay(pet, 1)
	if u.Health != 80 || u.Happiness != 80 || u.Energy != 80 {
		t.Errorf("vitals after 1h = %d/%d/%d, want unchanged", u.Health, u.Happiness, u.Energy)
	}
	u = e.Decay(pet, 2)
	if u.Health != 80 || u.Happiness != 80 || u.Energy != 79 {
		t.Errorf("vitals after 2h = %d/%d/%d, want 80/80/79", u.Health, u.Happiness, u.Energy)
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Health: 10, Happiness: 15, Energy: 3}

	u := e.Decay(pet, 24*30)
	if u.Health != 0 || u.Happiness != 0 || u.Energy != 0 {
		t.Errorf("vitals = %d/%d/%d, want 0/0/0", u.Health, u.Happiness, u.Energy)
	}
	if u.Mood != components.MoodVerySad {
		t.Errorf("mood = %s, want very_sad", u.Mood)
	}
}

func TestDecayIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Health: 90, Happiness: 90, Energy: 90}

	a := e.Decay(pet, 60)
	b := e.Decay(pet, 60)
	if a != b {
		t.Errorf("decay not deterministic: %+v vs %+v", a, b)
	}
}

func TestDecayNegativeHours(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Health: 50, Happiness: 50, Energy: 50}

	u := e.Decay(pet, -12)
	if u.Health != 50 || u.IsHungry || u.IsSleepy {
		t.Errorf("negative hours should not decay: %+v", u)
	}
}

func TestDecayUpdateApply(t *testing.T) {
	e := newTestEngine(t)
	pet := components.Pet{Name: "Merlo", Health: 80, Happiness: 80, Energy: 80, TotalExperience: 300}

	out := e.Decay(pet, 49).Apply(pet)
	if out.Name != "Merlo" || out.TotalExperience != 300 {
		t.Errorf("apply should keep unrelated fields: %+v", out)
	}
	if !out.IsHungry || !out.IsSleepy || out.Happiness >= 80 {
		t.Errorf("apply should merge decay: %+v", out)
	}
	if pet.Happiness != 80 {
		t.Error("apply mutated input")
	}
}
