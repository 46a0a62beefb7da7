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

// Discrete wavelength-axis zoom levels (nm at the right edge).
var wavelengthZoomLevels = []float64{750, 1500, 3000, 6000, 12000, 24000, 48000}

const defaultZoomIdx = 2 // 3000 nm, covers the visible band with context

// Overlay glyphs/colors for saved snapshot curves.
var overlayStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("110")), // steel blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("180")), // tan
}

// SpectrumModel renders the Planck curve for the live body with optional
// saved-snapshot overlays.
type SpectrumModel struct {
	width  int
	height int

	snapshot     state.Snapshot
	zoomIdx      int
	showOverlays bool
}

// NewSpectrumModel creates a new spectrum view model.
func NewSpectrumModel() SpectrumModel {
	return SpectrumModel{
		zoomIdx:      defaultZoomIdx,
		showOverlays: true,
	}
}

// SetSize updates the viewport size.
func (m SpectrumModel) SetSize(width, height int) SpectrumModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new session snapshot.
func (m SpectrumModel) UpdateData(snapshot state.Snapshot) SpectrumModel {
	m.snapshot = snapshot
	return m
}

// MaxWavelength returns the current right edge of the wavelength axis.
func (m SpectrumModel) MaxWavelength() float64 {
	return wavelengthZoomLevels[m.zoomIdx]
}

// Update handles input messages.
func (m SpectrumModel) Update(msg tea.Msg) (SpectrumModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			// Zoom in: shorter axis
			if m.zoomIdx > 0 {
				m.zoomIdx--
			}
		case "-":
			if m.zoomIdx < len(wavelengthZoomLevels)-1 {
				m.zoomIdx++
			}
		case "o":
			m.showOverlays = !m.showOverlays
		}
	}
	return m, nil
}

// View renders the spectrum chart.
func (m SpectrumModel) View() string {
	live := m.snapshot.Live
	if live == nil {
		return "No body yet\n"
	}

	chartW := clampInt(m.width-8, 24, 110)
	chartH := clampInt(m.height-4, 8, 26)
	maxWl := m.MaxWavelength()

	liveCurve := blackbody.SampleCurve(live, maxWl, chartW)

	var overlays [][]blackbody.CurveSample
	if m.showOverlays {
		for _, s := range m.snapshot.Saved {
			overlays = append(overlays, blackbody.SampleCurve(s, maxWl, chartW))
		}
	}

	// Normalize against the tallest curve in the window so overlays are
	// directly comparable to the live spectrum.
	norm := blackbody.MaxRadiance(liveCurve)
	for _, o := range overlays {
		if v := blackbody.MaxRadiance(o); v > norm {
			norm = v
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Spectral Radiance"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   0–%s", blackbody.FormatWavelength(maxWl))))
	if m.showOverlays && len(m.snapshot.Saved) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("   (%d overlay)", len(m.snapshot.Saved))))
	}
	b.WriteString("\n")

	if norm == 0 {
		b.WriteString(dimStyle.Render("  No emission at this temperature\n"))
		return b.String()
	}

	liveHeights := curveHeights(liveCurve, norm, chartH)
	overlayHeights := make([][]float64, len(overlays))
	for i, o := range overlays {
		overlayHeights[i] = curveHeights(o, norm, chartH)
	}

	for row := chartH; row >= 1; row-- {
		b.WriteString("  │")
		for col := 0; col < chartW; col++ {
			cell := " "
			h := liveHeights[col]
			switch {
			case h >= float64(row):
				wl := liveCurve[col].WavelengthNm
				cell = lipgloss.NewStyle().
					Foreground(lipgloss.Color(spectralColor(wl))).
					Render("█")
			case h >= float64(row)-0.5:
				wl := liveCurve[col].WavelengthNm
				cell = lipgloss.NewStyle().
					Foreground(lipgloss.Color(spectralColor(wl))).
					Render("▄")
			default:
				// Overlay dots only where the live curve is absent.
				for i, oh := range overlayHeights {
					if oh[col] >= float64(row)-0.5 && oh[col] < float64(row)+0.5 {
						cell = overlayStyles[i%len(overlayStyles)].Render("·")
						break
					}
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("  └")
	b.WriteString(m.renderAxis(live, chartW, maxWl))
	b.WriteString("\n")
	b.WriteString(m.renderAxisLegend(live, maxWl))
	b.WriteString("\n")

	return b.String()
}

func (m SpectrumModel) renderAxis(live *blackbody.Body, chartW int, maxWl float64) string {
	axis := make([]rune, chartW)
	for i := range axis {
		axis[i] = '─'
	}

	place := func(wl float64, r rune) int {
		if math.IsInf(wl, 1) || wl < 0 || wl > maxWl {
			return -1
		}
		col := int(wl / maxWl * float64(chartW-1))
		axis[col] = r
		return col
	}

	place(blackbody.VisibleMinWavelength, '┬')
	place(blackbody.VisibleMaxWavelength, '┬')
	peakCol := place(live.PeakWavelength(), '▲')

	var b strings.Builder
	for i, r := range axis {
		switch {
		case i == peakCol:
			b.WriteString(peakStyle.Render(string(r)))
		case r == '┬':
			b.WriteString(dimStyle.Render(string(r)))
		default:
			b.WriteString(axisStyle.Render(string(r)))
		}
	}
	return b.String()
}

func (m SpectrumModel) renderAxisLegend(live *blackbody.Body, maxWl float64) string {
	peak := live.PeakWavelength()
	peakStr := "—"
	if !math.IsInf(peak, 1) {
		peakStr = blackbody.FormatWavelength(peak)
	}
	return "   " + dimStyle.Render(fmt.Sprintf("▲ peak %s   ┬ visible %.0f–%.0f nm",
		peakStr, blackbody.VisibleMinWavelength, blackbody.VisibleMaxWavelength))
}

// curveHeights converts sampled radiances to fractional row heights.
func curveHeights(samples []blackbody.CurveSample, norm float64, chartH int) []float64 {
	heights := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Radiance / norm * float64(chartH)
	}
	return heights
}

// spectralColor approximates the perceived color of a visible wavelength,
// fading to dim gray tones outside the visible band.
func spectralColor(nm float64) string {
	switch {
	case nm < blackbody.VisibleMinWavelength:
		return "#6B6B8E" // UV: dim violet-gray
	case nm > blackbody.VisibleMaxWavelength:
		return "#8E6B6B" // IR: dim red-gray
	}

	var r, g, b float64
	switch {
	case nm < 440:
		r = -(nm - 440) / 60
		b = 1
	case nm < 490:
		g = (nm - 440) / 50
		b = 1
	case nm < 510:
		g = 1
		b = -(nm - 510) / 20
	case nm < 580:
		r = (nm - 510) / 70
		g = 1
	case nm < 645:
		r = 1
		g = -(nm - 645) / 65
	default:
		r = 1
	}

	return rgbHex(r*255, g*255, b*255)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
