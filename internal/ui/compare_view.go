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

const swatchW = 6

// CompareModel renders the live body against the saved snapshots.
type CompareModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewCompareModel creates a new compare view model.
func NewCompareModel() CompareModel {
	return CompareModel{}
}

// SetSize updates the viewport size.
func (m CompareModel) SetSize(width, height int) CompareModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new session snapshot.
func (m CompareModel) UpdateData(snapshot state.Snapshot) CompareModel {
	m.snapshot = snapshot
	return m
}

// Update handles input messages. Save/clear/reset are global keys.
func (m CompareModel) Update(msg tea.Msg) (CompareModel, tea.Cmd) {
	return m, nil
}

// View renders the comparison table.
func (m CompareModel) View() string {
	live := m.snapshot.Live
	if live == nil {
		return "No body yet\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved Spectra"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   %d of %d slots used",
		len(m.snapshot.Saved), historyCapacity(m.snapshot))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-9s %-10s %-12s %-14s %-5s %-5s %-5s %-8s",
		"", "Temp", "Peak λ", "Intensity", "R", "G", "B", "Color")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 74)))
	b.WriteString("\n")

	b.WriteString(m.renderBodyRow("live", live, true))
	for i, s := range m.snapshot.Saved {
		b.WriteString(m.renderBodyRow(fmt.Sprintf("saved %d", i+1), s, false))
	}

	if len(m.snapshot.Saved) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  No saved spectra yet — press [s] to freeze the current temperature"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m CompareModel) renderBodyRow(label string, body *blackbody.Body, isLive bool) string {
	peak := body.PeakWavelength()
	peakStr := "—"
	if !math.IsInf(peak, 1) {
		peakStr = blackbody.FormatWavelength(peak)
	}

	row := fmt.Sprintf("  %-9s %-10s %-12s %-14s %-5d %-5d %-5d ",
		label,
		blackbody.FormatTemperature(body.Temperature()),
		peakStr,
		blackbody.FormatIntensity(body.TotalIntensity()),
		body.ColorIntensity(blackbody.RedWavelength),
		body.ColorIntensity(blackbody.GreenWavelength),
		body.ColorIntensity(blackbody.BlueWavelength),
	)

	if isLive {
		row = labelStyle.Render(row)
	} else {
		row = dimStyle.Render(row)
	}

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(body.StarColor().Hex())).
		Render(strings.Repeat("█", swatchW))

	return row + swatch + "\n"
}
