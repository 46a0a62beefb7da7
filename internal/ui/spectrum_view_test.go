package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-blackbody/internal/config"
	"github.com/litescript/ls-blackbody/internal/state"
)

func testSnapshot(t *testing.T, tempK float64) state.Snapshot {
	t.Helper()
	mgr := state.NewManager(config.Default())
	mgr.SetTemperature(tempK)
	return mgr.Snapshot()
}

func TestSpectrumModelInit(t *testing.T) {
	m := NewSpectrumModel()

	if m.zoomIdx != defaultZoomIdx {
		t.Errorf("zoomIdx = %d, want %d", m.zoomIdx, defaultZoomIdx)
	}
	if m.MaxWavelength() != 3000 {
		t.Errorf("MaxWavelength = %g, want 3000", m.MaxWavelength())
	}
	if !m.showOverlays {
		t.Error("overlays should default to on")
	}
}

func TestSpectrumModelZoom(t *testing.T) {
	m := NewSpectrumModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if m.MaxWavelength() != 1500 {
		t.Errorf("MaxWavelength after zoom in = %g, want 1500", m.MaxWavelength())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if m.MaxWavelength() != 6000 {
		t.Errorf("MaxWavelength after zoom out = %g, want 6000", m.MaxWavelength())
	}

	// Zoom stops at the ends of the level list.
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	}
	if m.MaxWavelength() != wavelengthZoomLevels[len(wavelengthZoomLevels)-1] {
		t.Errorf("MaxWavelength at far end = %g, want %g",
			m.MaxWavelength(), wavelengthZoomLevels[len(wavelengthZoomLevels)-1])
	}
}

func TestSpectrumModelOverlayToggle(t *testing.T) {
	m := NewSpectrumModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if m.showOverlays {
		t.Error("overlays should toggle off")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if !m.showOverlays {
		t.Error("overlays should toggle back on")
	}
}

func TestSpectrumModelView(t *testing.T) {
	m := NewSpectrumModel()
	m = m.SetSize(100, 30)
	m = m.UpdateData(testSnapshot(t, 5778))

	out := m.View()
	if !strings.Contains(out, "Spectral Radiance") {
		t.Errorf("view missing title:\n%s", out)
	}
	if !strings.Contains(out, "▲") {
		t.Errorf("view missing peak marker:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("view has no curve columns:\n%s", out)
	}
}

func TestSpectrumModelView_ColdBody(t *testing.T) {
	// The display floor is 270 K; radiance there is tiny but nonzero, so
	// force a zero-emission snapshot through the model's own floor.
	mgr := state.NewManager(config.Default())
	snap := mgr.Snapshot()
	snap.Live.SetTemperature(0)

	m := NewSpectrumModel().SetSize(100, 30).UpdateData(snap)
	if !strings.Contains(m.View(), "No emission") {
		t.Error("expected no-emission placeholder at 0 K")
	}
}

func TestSpectrumModelView_Overlays(t *testing.T) {
	mgr := state.NewManager(config.Default())
	mgr.SetTemperature(3000)
	mgr.Save()
	mgr.SetTemperature(5778)

	m := NewSpectrumModel().SetSize(100, 30).UpdateData(mgr.Snapshot())
	out := m.View()
	if !strings.Contains(out, "overlay") {
		t.Errorf("view missing overlay count:\n%s", out)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if strings.Contains(m.View(), "overlay") {
		t.Error("overlay count shown with overlays off")
	}
}

func TestSpectralColor(t *testing.T) {
	tests := []struct {
		name string
		nm   float64
		want string // exact hex or "" for just-parses
	}{
		{"UV is dim violet-gray", 200, "#6B6B8E"},
		{"IR is dim red-gray", 1500, "#8E6B6B"},
		{"deep red", 680, "#FF0000"},
		{"green", 510, "#00FF00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spectralColor(tt.nm)
			if tt.want != "" && got != tt.want {
				t.Errorf("spectralColor(%g) = %s, want %s", tt.nm, got, tt.want)
			}
			if len(got) != 7 || got[0] != '#' {
				t.Errorf("spectralColor(%g) = %q, want #rrggbb", tt.nm, got)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(5, 10, 20); got != 10 {
		t.Errorf("clampInt(5,10,20) = %d, want 10", got)
	}
	if got := clampInt(50, 10, 20); got != 20 {
		t.Errorf("clampInt(50,10,20) = %d, want 20", got)
	}
	if got := clampInt(15, 10, 20); got != 15 {
		t.Errorf("clampInt(15,10,20) = %d, want 15", got)
	}
}
