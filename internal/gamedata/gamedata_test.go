package gamedata

import (
	"testing"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 3 {
		t.Errorf("Expected 3 presets, got %d", len(presets))
	}

	expectedIDs := map[string]bool{"beginner": false, "intermediate": false, "expert": false}
	for _, p := range presets {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected preset %q not found", id)
		}
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 presets, got %d", registry.Count())
	}

	tests := []struct {
		id                   string
		width, height, mines int
	}{
		{"beginner", 9, 9, 10},
		{"intermediate", 16, 16, 40},
		{"expert", 30, 16, 99},
		{"EXPERT", 30, 16, 99},
	}

	for _, tt := range tests {
		p := registry.GetByID(tt.id)
		if p == nil {
			t.Errorf("Preset %q not found by ID", tt.id)
			continue
		}
		if p.Width != tt.width || p.Height != tt.height || p.Mines != tt.mines {
			t.Errorf("Preset %q = %dx%d/%d, want %dx%d/%d",
				tt.id, p.Width, p.Height, p.Mines, tt.width, tt.height, tt.mines)
		}
	}

	if registry.GetByID("nightmare") != nil {
		t.Error("Unknown preset should return nil")
	}

	ids := registry.IDs()
	if len(ids) != 3 || ids[0] != "beginner" || ids[2] != "expert" {
		t.Errorf("IDs() = %v, want file order", ids)
	}
}

func TestPresetString(t *testing.T) {
	p := PresetDef{ID: "beginner", Name: "Beginner", Width: 9, Height: 9, Mines: 10}
	if got := p.String(); got != "Beginner (9x9, 10 mines)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	if theme.Hidden == theme.Revealed {
		t.Error("Hidden and revealed cells should use different colours")
	}
	for n := 1; n <= 8; n++ {
		if theme.NumberColor(n) == 0 {
			t.Errorf("NumberColor(%d) returned zero colour", n)
		}
	}
	if theme.NumberColor(0) != theme.Mine {
		t.Error("NumberColor outside 1..8 should fall back to the mine colour")
	}
}

func TestThemeParseErrors(t *testing.T) {
	def := ThemeDef{
		Hidden: "#000000", Revealed: "#000000", Cursor: "#000000", Flag: "#000000",
		Mine: "#000000", Exploded: "#000000", WrongFlag: "#000000",
		Numbers: []string{"#000000"},
	}
	if _, err := def.Parse(); err == nil {
		t.Error("Theme with one number colour should fail")
	}

	def.Numbers = []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8"}
	if _, err := def.Parse(); err == nil {
		t.Error("Theme with bad hex should fail")
	}
}
