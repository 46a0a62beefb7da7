package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/blackbody"
	"github.com/litescript/ls-blackbody/internal/state"
)

// Star rendering geometry. Terminal cells are roughly twice as tall as
// wide, so the x axis is compressed by 2 when testing the disc equation.
const (
	starDiscRadius = 4.0  // rows
	starCanvasW    = 36   // columns
	starCanvasH    = 17   // rows
	channelBarW    = 26   // columns
	sliderBarW     = 40   // columns
)

// StarModel renders the glowing star disc with its halo plus the numeric
// readouts and channel bars.
type StarModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	animTick int
}

// NewStarModel creates a new star view model.
func NewStarModel() StarModel {
	return StarModel{}
}

// SetSize updates the viewport size.
func (m StarModel) SetSize(width, height int) StarModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new session snapshot.
func (m StarModel) UpdateData(snapshot state.Snapshot) StarModel {
	m.snapshot = snapshot
	return m
}

// SetAnimTick advances the halo pulse animation.
func (m StarModel) SetAnimTick(tick int) StarModel {
	m.animTick = tick
	return m
}

// Update handles input messages. Temperature keys are global; nothing
// view-specific yet.
func (m StarModel) Update(msg tea.Msg) (StarModel, tea.Cmd) {
	return m, nil
}

// View renders the star and readouts side by side.
func (m StarModel) View() string {
	live := m.snapshot.Live
	if live == nil {
		return "No body yet\n"
	}

	star := m.renderStar(live)
	readouts := m.renderReadouts(live)

	return lipgloss.JoinHorizontal(lipgloss.Top, star, "   ", readouts)
}

// renderStar draws the disc and halo on a character canvas.
func (m StarModel) renderStar(live *blackbody.Body) string {
	halo := live.Halo()
	starHex := live.StarColor().Hex()

	// Halo radius in rows: interpolate the configured pixel range onto
	// the canvas, with a subtle pulse.
	cal := live.Calibration()
	var haloRows float64
	if cal.HaloRadiusMax > cal.HaloRadiusMin {
		frac := (halo.Radius - cal.HaloRadiusMin) / (cal.HaloRadiusMax - cal.HaloRadiusMin)
		pulse := 1 + 0.06*math.Sin(float64(m.animTick)/4)
		haloRows = (starDiscRadius + 0.5 + frac*3.5) * pulse
	} else {
		haloRows = starDiscRadius
	}

	// Halo color: star color scaled by its opacity over the black sky.
	haloColor := halo.Color
	haloHex := rgbHex(haloColor.R*255*halo.Alpha, haloColor.G*255*halo.Alpha, haloColor.B*255*halo.Alpha)

	discStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(starHex))
	haloStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(haloHex))

	cx := float64(starCanvasW) / 2
	cy := float64(starCanvasH) / 2

	var b strings.Builder
	for y := 0; y < starCanvasH; y++ {
		for x := 0; x < starCanvasW; x++ {
			// Compress x for the cell aspect ratio.
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case dist <= starDiscRadius:
				b.WriteString(discStyle.Render("█"))
			case dist <= haloRows && halo.Alpha > 0:
				b.WriteString(haloStyle.Render("░"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m StarModel) renderReadouts(live *blackbody.Body) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Blackbody"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTemperatureSlider(live))
	b.WriteString("\n\n")

	peak := live.PeakWavelength()
	peakStr := "—"
	if !math.IsInf(peak, 1) {
		peakStr = blackbody.FormatWavelength(peak)
	}

	rows := []struct{ label, value string }{
		{"Temperature", blackbody.FormatTemperature(live.Temperature())},
		{"Peak λ", peakStr},
		{"Intensity", blackbody.FormatIntensity(live.TotalIntensity())},
		{"Star color", live.StarColor().Hex()},
	}
	for _, r := range rows {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-12s", r.label)))
		b.WriteString(labelStyle.Render(r.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderChannelBar("R", live.ColorIntensity(blackbody.RedWavelength), "196"))
	b.WriteString(m.renderChannelBar("G", live.ColorIntensity(blackbody.GreenWavelength), "46"))
	b.WriteString(m.renderChannelBar("B", live.ColorIntensity(blackbody.BlueWavelength), "33"))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("Presets: [e]arth  [b]ulb  s[u]n  s[i]rius"))
	b.WriteString("\n")

	return b.String()
}

// renderTemperatureSlider draws the display-range slider with a marker at
// the current temperature.
func (m StarModel) renderTemperatureSlider(live *blackbody.Body) string {
	min := m.snapshot.Display.TempMinK
	max := m.snapshot.Display.TempMaxK
	if max <= min {
		return ""
	}

	frac := (live.Temperature() - min) / (max - min)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	marker := int(frac * float64(sliderBarW-1))

	var bar strings.Builder
	for i := 0; i < sliderBarW; i++ {
		if i == marker {
			bar.WriteString(peakStyle.Render("█"))
		} else {
			bar.WriteString(axisStyle.Render("─"))
		}
	}

	return dimStyle.Render(fmt.Sprintf("%.0f K ", min)) + bar.String() +
		dimStyle.Render(fmt.Sprintf(" %.0f K", max))
}

// renderChannelBar draws one RGB channel intensity bar out of 255.
func (m StarModel) renderChannelBar(label string, intensity int, color string) string {
	filled := intensity * channelBarW / 255
	if filled > channelBarW {
		filled = channelBarW
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", channelBarW-filled)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	return fmt.Sprintf("%s [%s] %3d\n",
		labelStyle.Render(label), style.Render(bar), intensity)
}
