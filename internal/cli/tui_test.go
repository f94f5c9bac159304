package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/slidegrid/pkg/layout"
)

func inspectFixture(t *testing.T) InspectModel {
	t.Helper()
	root, err := layout.NewRoot(layout.Widescreen.Width, layout.Widescreen.Height, nil)
	if err != nil {
		t.Fatal(err)
	}
	cols, err := root.SplitVertical(layout.Inch(3), layout.Auto())
	if err != nil {
		t.Fatal(err)
	}
	rows, err := cols[1].SplitHorizontal(layout.MustRatio(0.2), layout.Auto())
	if err != nil {
		t.Fatal(err)
	}
	if err := rows[0].SetName("header"); err != nil {
		t.Fatal(err)
	}
	if err := root.Resolve(); err != nil {
		t.Fatal(err)
	}
	return NewInspectModel("Quarterly", root)
}

func press(m InspectModel, keys ...tea.KeyMsg) InspectModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(InspectModel)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInspectModelNavigation(t *testing.T) {
	m := inspectFixture(t)
	if len(m.Areas) != 5 {
		t.Fatalf("NewInspectModel() listed %d areas, want 5", len(m.Areas))
	}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}, runeKey("j")}, 2},
		{"up stops at top", []tea.KeyMsg{runeKey("k"), {Type: tea.KeyUp}}, 0},
		{"end", []tea.KeyMsg{runeKey("G")}, 4},
		{"down stops at bottom", []tea.KeyMsg{runeKey("G"), runeKey("j")}, 4},
		{"home", []tea.KeyMsg{runeKey("G"), runeKey("g")}, 0},
		{"parent", []tea.KeyMsg{runeKey("G"), runeKey("p")}, 2},
		{"parent of top", []tea.KeyMsg{runeKey("p")}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := press(m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := inspectFixture(t)
	if _, cmd := m.Update(runeKey("q")); cmd == nil {
		t.Error("Update(q) returned no command, want tea.Quit")
	}
}

func TestInspectModelScroll(t *testing.T) {
	m := inspectFixture(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(InspectModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want minimum 5", m.Height)
	}
	m.Height = 2
	m = press(m, runeKey("G"))
	if m.Offset != 3 {
		t.Errorf("Offset = %d, want 3", m.Offset)
	}
}

func TestInspectModelView(t *testing.T) {
	m := press(inspectFixture(t), runeKey("G"), runeKey("k"))
	view := m.View()
	for _, want := range []string{"Quarterly", "header", "20%", "[4/5]", "[1 0]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	emu := m.details(m.Areas[m.Cursor])
	m = press(m, runeKey("u"))
	if !m.Inches {
		t.Fatal("u did not switch to inches")
	}
	if inches := m.details(m.Areas[m.Cursor]); inches == emu {
		t.Error("details unchanged after switching units")
	}
}
