package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetplot/jetplot/pkg/colors"
)

func TestSampleHex(t *testing.T) {
	got, err := sampleHex("blue", 2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != colors.Blue.V1() || got[1] != colors.Blue.V9() {
		t.Errorf("sampleHex(blue) = %v", got)
	}

	if _, err := sampleHex("nope", 2, 0, 1); err == nil {
		t.Error("unknown colormap should fail")
	}
}

func TestShadeTable(t *testing.T) {
	out := shadeTable(colors.Teal)
	for i := 1; i <= colors.Shades; i++ {
		if !strings.Contains(out, colors.Teal.Shade(i)) {
			t.Errorf("shade table missing %s", colors.Teal.Shade(i))
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPaletteModelNavigation(t *testing.T) {
	var m tea.Model = newPaletteModel([]string{"blue", "red", "green"})

	m, _ = m.Update(key("up"))
	if got := m.(paletteModel).cursor; got != 0 {
		t.Errorf("cursor moved above the top: %d", got)
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("down"))
	if got := m.(paletteModel).cursor; got != 2 {
		t.Errorf("cursor = %d, want 2 (clamped)", got)
	}

	m, cmd := m.Update(key("enter"))
	if got := m.(paletteModel).selected; got != "green" {
		t.Errorf("selected = %q, want green", got)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestPaletteModelScrolls(t *testing.T) {
	var m tea.Model = newPaletteModel(colors.Colormaps())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	pm := m.(paletteModel)
	if pm.height != 5 {
		t.Fatalf("height = %d, want minimum 5", pm.height)
	}

	for i := 0; i < 7; i++ {
		m, _ = m.Update(key("down"))
	}
	pm = m.(paletteModel)
	if pm.offset != 3 {
		t.Errorf("offset = %d, want 3", pm.offset)
	}

	view := pm.View()
	if !strings.Contains(view, pm.names[pm.cursor]) {
		t.Error("view should show the selected colormap")
	}
}
