package gamedata

import "fmt"

// PresetDef is a named board size.
type PresetDef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mines  int    `json:"mines"`
}

// String formats the preset as "Name (WxH, N mines)".
func (p PresetDef) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", p.Name, p.Width, p.Height, p.Mines)
}

// LoadPresets loads the preset definitions from presets.json.
func LoadPresets() ([]PresetDef, error) {
	return Load[[]PresetDef]("presets.json")
}
