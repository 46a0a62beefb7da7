package blackbody

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// SnapshotExport is the JSON-serializable representation of a session:
// the live body plus any saved comparison snapshots.
type SnapshotExport struct {
	ExportedAt time.Time    `json:"exported_at"`
	Live       BodyExport   `json:"live"`
	Saved      []BodyExport `json:"saved,omitempty"`
}

// BodyExport is a JSON-friendly body representation with derived fields.
type BodyExport struct {
	TemperatureK     float64 `json:"temperature_k"`
	PeakWavelengthNm float64 `json:"peak_wavelength_nm"` // 0 when undefined (T=0)
	TotalIntensity   float64 `json:"total_intensity_w_m2"`
	Red              int     `json:"red"`
	Green            int     `json:"green"`
	Blue             int     `json:"blue"`
	StarColorHex     string  `json:"star_color_hex"`
	HaloAlpha        float64 `json:"halo_alpha"`
	HaloRadiusPx     float64 `json:"halo_radius_px"`
}

// ExportBody converts a body to its exportable form. The +Inf peak
// wavelength at temperature 0 is exported as 0, since JSON has no
// representation for infinity.
func ExportBody(b *Body) BodyExport {
	peak := b.PeakWavelength()
	if math.IsInf(peak, 1) {
		peak = 0
	}
	halo := b.Halo()
	return BodyExport{
		TemperatureK:     b.Temperature(),
		PeakWavelengthNm: peak,
		TotalIntensity:   b.TotalIntensity(),
		Red:              b.ColorIntensity(RedWavelength),
		Green:            b.ColorIntensity(GreenWavelength),
		Blue:             b.ColorIntensity(BlueWavelength),
		StarColorHex:     b.StarColor().Hex(),
		HaloAlpha:        halo.Alpha,
		HaloRadiusPx:     halo.Radius,
	}
}

// ExportSnapshot converts a collection to an exportable format.
func ExportSnapshot(c *Collection, exportedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		ExportedAt: exportedAt,
		Live:       ExportBody(c.Live()),
	}
	for _, s := range c.Saved() {
		export.Saved = append(export.Saved, ExportBody(s))
	}
	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text readout of the live body and any saved
// snapshots to the given writer.
func WriteSummaryTable(w io.Writer, c *Collection) {
	fmt.Fprintf(w, "Blackbody @ %s\n", FormatTemperature(c.Live().Temperature()))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	fmt.Fprintf(w, "%-10s %-12s %-14s %-5s %-5s %-5s %-9s\n",
		"", "Peak λ", "Intensity", "R", "G", "B", "Color")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	writeBodyRow(w, "live", c.Live())
	for i, s := range c.Saved() {
		writeBodyRow(w, fmt.Sprintf("saved %d", i+1), s)
	}
}

func writeBodyRow(w io.Writer, label string, b *Body) {
	fmt.Fprintf(w, "%-10s %-12s %-14s %-5d %-5d %-5d %-9s\n",
		label,
		FormatWavelength(b.PeakWavelength()),
		FormatIntensity(b.TotalIntensity()),
		b.ColorIntensity(RedWavelength),
		b.ColorIntensity(GreenWavelength),
		b.ColorIntensity(BlueWavelength),
		b.StarColor().Hex(),
	)
}

// WriteSweepTable writes one row per temperature step across [minK, maxK]
// to the given writer. Steps must be positive; degenerate ranges write
// only the header.
func WriteSweepTable(w io.Writer, cal Calibration, minK, maxK, stepK float64) {
	fmt.Fprintf(w, "%-9s %-12s %-14s %-5s %-5s %-5s %-9s\n",
		"Temp", "Peak λ", "Intensity", "R", "G", "B", "Color")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if stepK <= 0 || maxK < minK {
		return
	}

	for t := minK; t <= maxK+stepK/2; t += stepK {
		b := NewBody(t, cal)
		fmt.Fprintf(w, "%-9s %-12s %-14s %-5d %-5d %-5d %-9s\n",
			FormatTemperature(t),
			FormatWavelength(b.PeakWavelength()),
			FormatIntensity(b.TotalIntensity()),
			b.ColorIntensity(RedWavelength),
			b.ColorIntensity(GreenWavelength),
			b.ColorIntensity(BlueWavelength),
			b.StarColor().Hex(),
		)
	}
}

// ChartConfig controls the ASCII spectrum chart.
type ChartConfig struct {
	Width           int     // columns of plot area
	Height          int     // rows of plot area
	MaxWavelengthNm float64 // right edge of the wavelength axis
}

// DefaultChartConfig returns a chart sized for an 80-column terminal.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:           72,
		Height:          16,
		MaxWavelengthNm: 3000,
	}
}

// WriteSpectrumChart writes an ASCII rendering of the body's Planck curve
// to the given writer, with the peak wavelength marked and the visible
// band bracketed on the wavelength axis.
func WriteSpectrumChart(w io.Writer, b *Body, cfg ChartConfig) {
	if cfg.Width < 8 || cfg.Height < 2 || cfg.MaxWavelengthNm <= 0 {
		cfg = DefaultChartConfig()
	}

	samples := SampleCurve(b, cfg.MaxWavelengthNm, cfg.Width)
	peak := MaxRadiance(samples)

	fmt.Fprintf(w, "Spectral radiance @ %s   peak %s   total %s\n",
		FormatTemperature(b.Temperature()),
		FormatWavelength(b.PeakWavelength()),
		FormatIntensity(b.TotalIntensity()))

	if peak == 0 {
		fmt.Fprintln(w, "(no emission)")
		return
	}

	// Column heights in fractional rows.
	heights := make([]float64, cfg.Width)
	for i, s := range samples {
		heights[i] = s.Radiance / peak * float64(cfg.Height)
	}

	for row := cfg.Height; row >= 1; row-- {
		var line strings.Builder
		for _, h := range heights {
			switch {
			case h >= float64(row):
				line.WriteRune('█')
			case h >= float64(row)-0.5:
				line.WriteRune('▄')
			default:
				line.WriteRune(' ')
			}
		}
		fmt.Fprintf(w, "│%s\n", strings.TrimRight(line.String(), " "))
	}

	// Axis with visible-band brackets and the peak marker.
	axis := []rune(strings.Repeat("─", cfg.Width))
	markAxis(axis, VisibleMinWavelength, cfg, '┬')
	markAxis(axis, VisibleMaxWavelength, cfg, '┬')
	markAxis(axis, b.PeakWavelength(), cfg, '▲')
	fmt.Fprintf(w, "└%s\n", string(axis))
	fmt.Fprintf(w, " 0%svisible %.0f–%.0f nm, axis to %s\n",
		strings.Repeat(" ", 8), VisibleMinWavelength, VisibleMaxWavelength,
		FormatWavelength(cfg.MaxWavelengthNm))
}

func markAxis(axis []rune, wavelengthNm float64, cfg ChartConfig, mark rune) {
	if math.IsInf(wavelengthNm, 1) || wavelengthNm < 0 || wavelengthNm > cfg.MaxWavelengthNm {
		return
	}
	col := int(wavelengthNm / cfg.MaxWavelengthNm * float64(cfg.Width-1))
	axis[col] = mark
}
