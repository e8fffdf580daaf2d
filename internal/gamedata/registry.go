package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// PresetRegistry holds loaded presets and provides lookup utilities.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	for _, p := range presets {
		if p.Width <= 0 || p.Height <= 0 || p.Mines < 0 || p.Mines >= p.Width*p.Height {
			return nil, fmt.Errorf("preset %q has an unplayable size: %s", p.ID, p)
		}
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID (case-insensitive), or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[strings.ToLower(id)]
}

// IDs returns the preset IDs in file order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, len(r.all))
	for i, p := range r.all {
		ids[i] = p.ID
	}
	return ids
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
