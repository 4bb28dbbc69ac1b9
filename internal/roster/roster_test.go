package roster

import (
	"strings"
	"testing"
)

func TestEmbeddedCatalogParses(t *testing.T) {
	c, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded catalog: %v", err)
	}
	if len(c.fighters) != 6 {
		t.Errorf("expected 6 fighters, got %d", len(c.fighters))
	}
	if len(c.weapons) != 6 {
		t.Errorf("expected 6 weapons, got %d", len(c.weapons))
	}
}

func TestFighterDataSanity(t *testing.T) {
	c, err := parse(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}

	for id, f := range c.fighters {
		moves := []Move{
			f.Moves.Light, f.Moves.Heavy, f.Moves.Special,
			f.Moves.MidKick, f.Moves.LowKick, f.Moves.Aerial,
			f.Moves.ComboFinisher, f.Moves.Super,
		}
		for _, m := range moves {
			if m.Name == "" {
				t.Errorf("%s: move with empty name", id)
			}
			if m.TotalFrames() == 0 {
				t.Errorf("%s/%s: zero duration move", id, m.Name)
			}
			if m.DamageMultiplier <= 0 {
				t.Errorf("%s/%s: non-positive damage multiplier", id, m.Name)
			}
		}
		if f.HurtboxMin.Y() != 0 {
			t.Errorf("%s: hurtbox must start at the feet, got min.y=%v", id, f.HurtboxMin.Y())
		}
		if f.HurtboxMax.Y() <= f.HurtboxMin.Y() {
			t.Errorf("%s: degenerate hurtbox", id)
		}
	}
}

func TestKnownFighterStats(t *testing.T) {
	c, err := parse(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}

	kenzo := c.fighters["kenzo"]
	if kenzo == nil {
		t.Fatal("kenzo missing from catalog")
	}
	if kenzo.MaxHealth != 100 || kenzo.Defense != 1.0 {
		t.Errorf("kenzo stats changed: health=%v defense=%v", kenzo.MaxHealth, kenzo.Defense)
	}
	if kenzo.Moves.Light.Startup != 4 || kenzo.Moves.Light.Active != 3 || kenzo.Moves.Light.Recovery != 6 {
		t.Errorf("kenzo light timing changed: %+v", kenzo.Moves.Light)
	}

	katana := c.weapons["katana"]
	if katana.BaseDamage != 12 || katana.AttackSpeed != 1.2 {
		t.Errorf("katana stats changed: %+v", katana)
	}
	hammer := c.weapons["warhammer"]
	if hammer.BaseDamage != 25 || hammer.AttackSpeed != 0.5 {
		t.Errorf("warhammer stats changed: %+v", hammer)
	}
}

func TestLookupUnknownFighter(t *testing.T) {
	SetConfigPath("")
	_, err := Lookup("nobody")
	if err == nil {
		t.Fatal("expected error for unknown fighter")
	}
	if !strings.Contains(err.Error(), `unknown fighter "nobody"`) {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "kenzo") {
		t.Errorf("error should list valid ids: %v", err)
	}
}

func TestLookupAndList(t *testing.T) {
	SetConfigPath("")

	f, err := Lookup("mira")
	if err != nil {
		t.Fatalf("Lookup(mira): %v", err)
	}
	if f.Name != "Mira" || f.WeaponID != "daggers" {
		t.Errorf("unexpected fighter: %+v", f)
	}

	infos, err := List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(infos))
	}
	// File order is preserved.
	if infos[0].ID != "kenzo" || infos[5].ID != "sage" {
		t.Errorf("unexpected order: %v", infos)
	}
	if infos[1].Weapon != "Dual Daggers" {
		t.Errorf("weapon name not resolved: %+v", infos[1])
	}
}

func TestParseRejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown weapon reference",
			yaml: `
weapons:
  - {id: stick, name: Stick, base_damage: 1, attack_speed: 1}
fighters:
  - {id: bob, name: Bob, max_health: 10, max_stamina: 10, weapon: sword}
`,
		},
		{
			name: "duplicate fighter",
			yaml: `
weapons:
  - {id: stick, name: Stick, base_damage: 1, attack_speed: 1}
fighters:
  - {id: bob, name: Bob, max_health: 10, max_stamina: 10, weapon: stick}
  - {id: bob, name: Bob2, max_health: 10, max_stamina: 10, weapon: stick}
`,
		},
		{
			name: "zero attack speed",
			yaml: `
weapons:
  - {id: stick, name: Stick, base_damage: 1, attack_speed: 0}
fighters:
  - {id: bob, name: Bob, max_health: 10, max_stamina: 10, weapon: stick}
`,
		},
		{
			name: "no fighters",
			yaml: `
weapons:
  - {id: stick, name: Stick, base_damage: 1, attack_speed: 1}
fighters: []
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.yaml)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
