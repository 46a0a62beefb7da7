package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-blackbody/internal/config"
)

func TestStarModelView(t *testing.T) {
	m := NewStarModel()
	m = m.SetSize(100, 30)
	m = m.UpdateData(testSnapshot(t, 5778))

	out := m.View()
	for _, want := range []string{"Blackbody", "Temperature", "5778 K", "Peak λ", "Intensity", "Presets"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	// Hot body: disc blocks present
	if !strings.Contains(out, "█") {
		t.Error("view has no star disc")
	}
}

func TestStarModelView_ColdBodyHasNoHalo(t *testing.T) {
	// 300 K is below the glow turn-on: halo alpha is 0, so no halo shade
	// characters should render.
	m := NewStarModel().SetSize(100, 30).UpdateData(testSnapshot(t, 300))

	star := m.renderStar(m.snapshot.Live)
	if strings.Contains(star, "░") {
		t.Error("cold body should render without a halo")
	}
}

func TestStarModelView_HotBodyHasHalo(t *testing.T) {
	m := NewStarModel().SetSize(100, 30).UpdateData(testSnapshot(t, 5778))

	star := m.renderStar(m.snapshot.Live)
	if !strings.Contains(star, "░") {
		t.Error("hot body should render a halo")
	}
}

func TestRenderChannelBar(t *testing.T) {
	m := NewStarModel()

	tests := []struct {
		name       string
		intensity  int
		wantFilled int
	}{
		{"zero", 0, 0},
		{"full", 255, channelBarW},
		{"half", 128, 128 * channelBarW / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := m.renderChannelBar("R", tt.intensity, "196")
			if got := strings.Count(bar, "█"); got != tt.wantFilled {
				t.Errorf("filled count = %d, want %d", got, tt.wantFilled)
			}
		})
	}
}

func TestRenderTemperatureSlider(t *testing.T) {
	display := config.Default().Display

	tests := []struct {
		name  string
		tempK float64
	}{
		{"minimum", display.TempMinK},
		{"middle", (display.TempMinK + display.TempMaxK) / 2},
		{"maximum", display.TempMaxK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStarModel().UpdateData(testSnapshot(t, tt.tempK))
			out := m.renderTemperatureSlider(m.snapshot.Live)

			if got := strings.Count(out, "█"); got != 1 {
				t.Errorf("marker count = %d, want 1", got)
			}
			if !strings.Contains(out, "270 K") || !strings.Contains(out, "11000 K") {
				t.Errorf("slider missing range labels: %q", out)
			}
		})
	}
}

func TestStarModel_AnimTickChangesHalo(t *testing.T) {
	snap := testSnapshot(t, 5778)
	a := NewStarModel().UpdateData(snap).SetAnimTick(0)
	b := NewStarModel().UpdateData(snap).SetAnimTick(7)

	// The pulse modulates the halo radius over ticks; two ticks a quarter
	// period apart should not render identically.
	if a.renderStar(snap.Live) == b.renderStar(snap.Live) {
		t.Error("halo pulse has no effect on rendering")
	}
}
