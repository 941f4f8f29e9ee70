package world

import (
	"errors"
	"testing"
)

func TestNewBiomeSetDefaults(t *testing.T) {
	set, err := NewBiomeSet(DefaultBiomes())
	if err != nil {
		t.Fatalf("default biomes invalid: %v", err)
	}
	if set.Ocean().Name != "ocean" || set.Lake().Name != "lake" || set.Beach().Name != "beach" {
		t.Fatalf("unexpected water/beach roles")
	}
	pools := set.Pools()
	want := []string{"forest", "desert", "ashland", "jungle"}
	if len(pools) != len(want) {
		t.Fatalf("pools got=%v want=%v", pools, want)
	}
	for i := range want {
		if pools[i] != want[i] {
			t.Fatalf("pools got=%v want=%v", pools, want)
		}
	}
}

func TestNewBiomeSetRejectsBadTables(t *testing.T) {
	dup := append(DefaultBiomes(), BiomePreset{Name: "forest", Type: "forest", Role: RoleLand})
	noLake := []BiomePreset{
		{Name: "ocean", Type: "ocean", Role: RoleOcean},
		{Name: "beach", Type: "beach", Role: RoleBeach},
		{Name: "forest", Type: "forest", Role: RoleLand},
	}
	badRole := append(DefaultBiomes(), BiomePreset{Name: "x", Type: "x", Role: "sky"})
	for name, presets := range map[string][]BiomePreset{"duplicate": dup, "no lake": noLake, "bad role": badRole} {
		if _, err := NewBiomeSet(presets); !errors.Is(err, ErrInvalidBiomeSet) {
			t.Fatalf("%s: expected ErrInvalidBiomeSet, got %v", name, err)
		}
	}
}
