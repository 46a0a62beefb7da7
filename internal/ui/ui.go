// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-blackbody/internal/blackbody"
	"github.com/litescript/ls-blackbody/internal/state"
	"github.com/litescript/ls-blackbody/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSpectrum ViewMode = iota
	ViewStar
	ViewCompare
)

const viewCount = 3

// Temperature step sizes for the slider keys.
const (
	tempStepFine   = 50.0
	tempStepCoarse = 500.0
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates (halo pulse).
	AnimTickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	spectrum SpectrumModel
	star     StarModel
	compare  CompareModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	m := Model{
		state:    stateMgr,
		viewMode: ViewSpectrum,
		spectrum: NewSpectrumModel(),
		star:     NewStarModel(),
		compare:  NewCompareModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewSpectrum
		case "2":
			m.viewMode = ViewStar
		case "3":
			m.viewMode = ViewCompare
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		// Temperature slider
		case "left":
			m.state.AdjustTemperature(-tempStepFine)
			m.refresh()
		case "right":
			m.state.AdjustTemperature(tempStepFine)
			m.refresh()
		case "shift+left", "h":
			m.state.AdjustTemperature(-tempStepCoarse)
			m.refresh()
		case "shift+right", "l":
			m.state.AdjustTemperature(tempStepCoarse)
			m.refresh()

		// Reference temperature presets
		case "e":
			m.state.SetTemperature(blackbody.TempEarth)
			m.refresh()
		case "b":
			m.state.SetTemperature(blackbody.TempLightBulb)
			m.refresh()
		case "u":
			m.state.SetTemperature(blackbody.TempSun)
			m.refresh()
		case "i":
			m.state.SetTemperature(blackbody.TempSirius)
			m.refresh()

		// History
		case "s":
			m.state.Save()
			m.refresh()
		case "c":
			m.state.Clear()
			m.refresh()
		case "r":
			m.state.Reset()
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~9 lines, footer ~2 lines
		contentHeight := msg.Height - 12
		m.spectrum = m.spectrum.SetSize(msg.Width, contentHeight)
		m.star = m.star.SetSize(msg.Width, contentHeight)
		m.compare = m.compare.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.refresh()

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.star = m.star.SetAnimTick(m.animTick)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// refresh pulls a fresh snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.spectrum = m.spectrum.UpdateData(m.snapshot)
	m.star = m.star.UpdateData(m.snapshot)
	m.compare = m.compare.UpdateData(m.snapshot)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSpectrum:
		m.spectrum, cmd = m.spectrum.Update(msg)
	case ViewStar:
		m.star, cmd = m.star.Update(msg)
	case ViewCompare:
		m.compare, cmd = m.compare.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSpectrum:
		content = m.spectrum.View()
	case ViewStar:
		content = m.star.View()
	case ViewCompare:
		content = m.compare.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ██████╗ ██╗      █████╗  ██████╗██╗  ██╗██████╗  ██████╗ ██████╗ ██╗   ██╗`,
		`  ██╔══██╗██║     ██╔══██╗██╔════╝██║ ██╔╝██╔══██╗██╔═══██╗██╔══██╗╚██╗ ██╔╝`,
		`  ██████╔╝██║     ███████║██║     █████╔╝ ██████╔╝██║   ██║██║  ██║ ╚████╔╝ `,
		`  ██╔══██╗██║     ██╔══██║██║     ██╔═██╗ ██╔══██╗██║   ██║██║  ██║  ╚██╔╝  `,
		`  ██████╔╝███████╗██║  ██║╚██████╗██║  ██╗██████╔╝╚██████╔╝██████╔╝   ██║   `,
		`  ╚═════╝ ╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═════╝    ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")

	// Horizontal gradient along the stellar temperature sequence:
	// ember red on the left through amber and white to blue-white.
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := sequenceColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Blackbody Spectrum · Interactive Simulator"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2026 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// sequenceColor returns a hex color for a position in the logo gradient.
func sequenceColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Ember (#D7301F) -> amber (#FDB863) -> white (#FFFFFF) -> blue-white (#9BB0FF)
	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = 215 + t*(253-215)
		g = 48 + t*(184-48)
		b = 31 + t*(99-31)
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = 253 + t*(255-253)
		g = 184 + t*(255-184)
		b = 99 + t*(255-99)
	default:
		t := (xRatio - 0.66) / 0.34
		r = 255 + t*(155-255)
		g = 255 + t*(176-255)
		b = 255
	}

	// Dim toward the bottom rows.
	factor := 1.0 - yRatio*0.45
	return rgbHex(r*factor, g*factor, b*factor)
}

func rgbHex(r, g, b float64) string {
	clamp := func(v float64) int {
		i := int(v)
		if i < 0 {
			return 0
		}
		if i > 255 {
			return 255
		}
		return i
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Spectrum", "[2] Star", "[3] Compare"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FDB863")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FDB863"))

	live := m.snapshot.Live
	var readout string
	if live != nil {
		peak := live.PeakWavelength()
		peakStr := blackbody.FormatWavelength(peak)
		if math.IsInf(peak, 1) {
			peakStr = "—"
		}
		readout = accentStyle.Render(blackbody.FormatTemperature(live.Temperature())) +
			dimStyle.Render(fmt.Sprintf("  peak %s  ·  %s  ·  %d/%d saved",
				peakStr,
				blackbody.FormatIntensity(live.TotalIntensity()),
				len(m.snapshot.Saved), historyCapacity(m.snapshot)))
	}

	var help string
	switch m.viewMode {
	case ViewSpectrum:
		help = dimStyle.Render("←/→: temp | +/-: zoom | o: overlays | s: save | r: reset")
	case ViewStar:
		help = dimStyle.Render("←/→: temp | e/b/u/i: presets | s: save | r: reset")
	case ViewCompare:
		help = dimStyle.Render("s: save | c: clear | r: reset | ←/→: temp")
	}

	footer := "  " + readout + "  " + dimStyle.Render("|") + "  " + help

	if e := lastEvent(m.snapshot.Events); e != nil {
		footer += "\n  " + dimStyle.Render(fmt.Sprintf("%s %s @ %s",
			e.Timestamp.Format("15:04:05"), e.Type, blackbody.FormatTemperature(e.TempK)))
	}

	return footer
}

func lastEvent(events []state.Event) *state.Event {
	if len(events) == 0 {
		return nil
	}
	latest := &events[0]
	for i := range events {
		if events[i].Timestamp.After(latest.Timestamp) {
			latest = &events[i]
		}
	}
	return latest
}

func historyCapacity(snap state.Snapshot) int {
	if snap.Live == nil {
		return 0
	}
	return snap.Live.Calibration().HistoryCapacity
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
