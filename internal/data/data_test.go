package data

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseFireMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FireMode
		wantErr bool
	}{
		{"semi_auto", FireMode{Kind: SemiAuto}, false},
		{"full_auto", FireMode{Kind: FullAuto}, false},
		{"burst-3", BurstOf(3), false},
		{" Burst-5 ", BurstOf(5), false},
		{"burst-0", FireMode{}, true},
		{"burst-x", FireMode{}, true},
		{"laser", FireMode{}, true},
	}

	for _, tt := range tests {
		got, err := ParseFireMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ParseFireMode(%q) err = %v, expected ErrInvalidValue", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFireMode(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFireMode(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestTablesDecodeYAML(t *testing.T) {
	src := `
weapons:
  pistol:
    name: Pistol
    ammo: light
    magazine_size: 10
    fire_mode: semi_auto
    fire_interval: 250ms
    projectile_speed: 200
    damage: 10
    range: 25
  rifle:
    name: Rifle
    ammo: light
    magazine_size: 24
    fire_mode: burst-3
    fire_interval: 80ms
    projectile_speed: 260
    damage: 14
    range: 40
ammo:
  light:
    name: Light
    loot_size: 20
    stack_size: 50
`
	var tables Tables
	if err := yaml.Unmarshal([]byte(src), &tables); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if err := tables.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	pistol, ok := tables.Weapon(Pistol)
	if !ok {
		t.Fatal("pistol row missing")
	}
	if pistol.FireInterval != 250*time.Millisecond {
		t.Errorf("FireInterval = %v, expected 250ms", pistol.FireInterval)
	}
	if pistol.FireMode.Kind != SemiAuto {
		t.Errorf("FireMode = %v, expected semi_auto", pistol.FireMode)
	}
	if rifle, _ := tables.Weapon(Rifle); rifle.FireMode != BurstOf(3) {
		t.Errorf("rifle FireMode = %v, expected burst-3", rifle.FireMode)
	}
}

func TestTablesDecodeRejectsBadFireMode(t *testing.T) {
	src := "weapons:\n  pistol:\n    fire_mode: sideways\n"
	var tables Tables
	if err := yaml.Unmarshal([]byte(src), &tables); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestFireModeMarshalRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Mode FireMode `yaml:"mode"`
	}{BurstOf(4)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "mode: burst-4\n" {
		t.Errorf("Marshal = %q", out)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tables invalid: %v", err)
	}

	missingAmmo := Default()
	w := missingAmmo.Weapons[Pistol]
	w.Ammo = "plasma"
	missingAmmo.Weapons[Pistol] = w
	if err := missingAmmo.Validate(); !errors.Is(err, ErrUnknownAmmo) {
		t.Errorf("expected ErrUnknownAmmo, got %v", err)
	}

	badLoot := Default()
	badLoot.Ammo[LightAmmo] = AmmoData{Name: "Light", LootSize: 60, StackSize: 50}
	if err := badLoot.Validate(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestParseWeapon(t *testing.T) {
	tables := Default()

	if wt, err := tables.ParseWeapon("Pistol"); err != nil || wt != Pistol {
		t.Errorf("ParseWeapon(Pistol) = %v, %v", wt, err)
	}
	if wt, err := tables.ParseWeapon("smg"); err != nil || wt != SMG {
		t.Errorf("ParseWeapon(smg) = %v, %v", wt, err)
	}
	if _, err := tables.ParseWeapon("bow"); !errors.Is(err, ErrUnknownWeapon) {
		t.Errorf("expected ErrUnknownWeapon, got %v", err)
	}
}

func TestStackLimitAndLootPool(t *testing.T) {
	tables := Default()

	if n, ok := tables.StackLimit(StackKey{Kind: KindAmmo, ID: string(LightAmmo)}); !ok || n != 50 {
		t.Errorf("light ammo limit = %d, %v", n, ok)
	}
	if _, ok := tables.StackLimit(StackKey{Kind: KindWeapon, ID: string(Pistol)}); ok {
		t.Error("weapons have no stack limit")
	}

	pool := tables.LootPool()
	if len(pool) != 3+2+1+1 {
		t.Fatalf("LootPool has %d entries", len(pool))
	}
	if pool[0] != WeaponItem(Pistol) {
		t.Errorf("pool[0] = %v, expected sorted weapons first", pool[0])
	}
	for _, item := range pool[3:] {
		if item.Amount != tables.LootSize(item.Key()) {
			t.Errorf("%v amount should equal loot size", item)
		}
	}
}
