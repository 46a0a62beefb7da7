package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-blackbody/internal/config"
	"github.com/litescript/ls-blackbody/internal/state"
)

func TestCompareModelView_Empty(t *testing.T) {
	m := NewCompareModel().SetSize(100, 30).UpdateData(testSnapshot(t, 5778))

	out := m.View()
	if !strings.Contains(out, "Saved Spectra") {
		t.Errorf("view missing title:\n%s", out)
	}
	if !strings.Contains(out, "0 of 2 slots") {
		t.Errorf("view missing slot count:\n%s", out)
	}
	if !strings.Contains(out, "press [s]") {
		t.Errorf("view missing empty-state hint:\n%s", out)
	}
	if !strings.Contains(out, "live") {
		t.Errorf("view missing live row:\n%s", out)
	}
}

func TestCompareModelView_WithSaved(t *testing.T) {
	mgr := state.NewManager(config.Default())
	mgr.SetTemperature(3000)
	mgr.Save()
	mgr.SetTemperature(5778)
	mgr.Save()

	m := NewCompareModel().SetSize(100, 30).UpdateData(mgr.Snapshot())
	out := m.View()

	if !strings.Contains(out, "2 of 2 slots") {
		t.Errorf("view missing slot count:\n%s", out)
	}
	for _, want := range []string{"saved 1", "saved 2", "3000 K", "5778 K"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "press [s]") {
		t.Error("empty-state hint shown with saved rows present")
	}
}
