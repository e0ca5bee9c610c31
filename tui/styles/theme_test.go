package styles

import (
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	if got := Resolve("nonexistent"); got.Name != "Solarized Dark" {
		t.Errorf("expected default theme, got %q", got.Name)
	}
	if got := Resolve("nord"); got.Name != "Nord" {
		t.Errorf("expected Nord, got %q", got.Name)
	}
}

func TestListThemesSorted(t *testing.T) {
	themes := ListThemes()
	if len(themes) != len(Themes) {
		t.Fatalf("expected %d themes, got %d", len(Themes), len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("themes not sorted: %v", themes)
		}
	}
}

func TestThemesHaveNames(t *testing.T) {
	for slug, theme := range Themes {
		if theme.Name == "" || theme.Base00 == "" || theme.Base0F == "" {
			t.Errorf("theme %q is incomplete", slug)
		}
	}
}
