package world

import (
	"errors"
	"fmt"
)

type BiomeRole string

const (
	RoleLand  BiomeRole = "land"
	RoleOcean BiomeRole = "ocean"
	RoleLake  BiomeRole = "lake"
	RoleBeach BiomeRole = "beach"
)

type BiomePreset struct {
	Name          string    `json:"name" yaml:"name"`
	Type          string    `json:"type" yaml:"type"`
	Role          BiomeRole `json:"role" yaml:"role"`
	Temperature   float64   `json:"temperature" yaml:"temperature"`
	Precipitation float64   `json:"precipitation" yaml:"precipitation"`
	TreeRadius    float64   `json:"tree_radius" yaml:"tree_radius"`
	TreeSprite    string    `json:"tree_sprite,omitempty" yaml:"tree_sprite"`
	Pool          string    `json:"pool,omitempty" yaml:"pool"`
}

func (b *BiomePreset) IsWater() bool {
	return b != nil && (b.Role == RoleOcean || b.Role == RoleLake)
}

var ErrInvalidBiomeSet = errors.New("invalid biome set")

// BiomeSet is the ordered biome table. Order is significant: it breaks ties
// in nearest-prototype classification.
type BiomeSet struct {
	presets []*BiomePreset
	ocean   *BiomePreset
	lake    *BiomePreset
	beach   *BiomePreset
}

func NewBiomeSet(presets []BiomePreset) (*BiomeSet, error) {
	s := &BiomeSet{presets: make([]*BiomePreset, 0, len(presets))}
	names := map[string]bool{}
	land := 0
	for i := range presets {
		p := presets[i]
		if p.Name == "" || p.Type == "" {
			return nil, fmt.Errorf("%w: preset %d missing name or type", ErrInvalidBiomeSet, i)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("%w: duplicate preset %q", ErrInvalidBiomeSet, p.Name)
		}
		names[p.Name] = true
		ptr := &p
		switch p.Role {
		case RoleOcean:
			s.ocean = ptr
		case RoleLake:
			s.lake = ptr
		case RoleBeach:
			s.beach = ptr
		case RoleLand:
			land++
		default:
			return nil, fmt.Errorf("%w: preset %q has unknown role %q", ErrInvalidBiomeSet, p.Name, p.Role)
		}
		s.presets = append(s.presets, ptr)
	}
	if s.ocean == nil || s.lake == nil || s.beach == nil || land == 0 {
		return nil, fmt.Errorf("%w: need ocean, lake, beach and at least one land preset", ErrInvalidBiomeSet)
	}
	return s, nil
}

func (s *BiomeSet) Presets() []*BiomePreset { return s.presets }
func (s *BiomeSet) Ocean() *BiomePreset     { return s.ocean }
func (s *BiomeSet) Lake() *BiomePreset      { return s.lake }
func (s *BiomeSet) Beach() *BiomePreset     { return s.beach }

func (s *BiomeSet) ByName(name string) (*BiomePreset, bool) {
	for _, p := range s.presets {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Pools lists distinct key-object pool names in declaration order.
func (s *BiomeSet) Pools() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range s.presets {
		if p.Pool == "" || seen[p.Pool] {
			continue
		}
		seen[p.Pool] = true
		out = append(out, p.Pool)
	}
	return out
}

func DefaultBiomes() []BiomePreset {
	return []BiomePreset{
		{Name: "forest", Type: "forest", Role: RoleLand, Temperature: 0.5, Precipitation: 0.6, TreeRadius: 2, TreeSprite: "oak", Pool: "forest"},
		{Name: "desert", Type: "desert", Role: RoleLand, Temperature: 0.9, Precipitation: 0.1, TreeRadius: 6, TreeSprite: "cactus", Pool: "desert"},
		{Name: "ashland", Type: "ashland", Role: RoleLand, Temperature: 0.75, Precipitation: 0.35, TreeRadius: 5, TreeSprite: "deadwood", Pool: "ashland"},
		{Name: "rainforest", Type: "rainforest", Role: RoleLand, Temperature: 0.85, Precipitation: 0.9, TreeRadius: 1, TreeSprite: "palm", Pool: "jungle"},
		{Name: "ocean", Type: "ocean", Role: RoleOcean},
		{Name: "beach", Type: "beach", Role: RoleBeach},
		{Name: "lake", Type: "lake", Role: RoleLake},
		{Name: "tundra", Type: "tundra", Role: RoleLand, Temperature: 0.15, Precipitation: 0.4, TreeRadius: 4, TreeSprite: "pine"},
		{Name: "plains", Type: "plains", Role: RoleLand, Temperature: 0.45, Precipitation: 0.25, TreeRadius: 7, TreeSprite: "birch"},
	}
}
