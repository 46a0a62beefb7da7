package blackbody

import (
	"fmt"
	"math"
)

// CurveSample is one point on a sampled Planck curve.
type CurveSample struct {
	WavelengthNm float64
	Radiance     float64
}

// SampleCurve evaluates the body's spectral radiance at n evenly spaced
// wavelengths from 0 to maxWavelengthNm inclusive. Returns nil for
// degenerate inputs (n < 2 or non-positive range).
func SampleCurve(b *Body, maxWavelengthNm float64, n int) []CurveSample {
	if b == nil || n < 2 || maxWavelengthNm <= 0 {
		return nil
	}

	samples := make([]CurveSample, n)
	step := maxWavelengthNm / float64(n-1)
	for i := range samples {
		wl := float64(i) * step
		samples[i] = CurveSample{
			WavelengthNm: wl,
			Radiance:     b.SpectralRadiance(wl),
		}
	}
	return samples
}

// MaxRadiance returns the largest radiance in a sampled curve.
func MaxRadiance(samples []CurveSample) float64 {
	var max float64
	for _, s := range samples {
		if s.Radiance > max {
			max = s.Radiance
		}
	}
	return max
}

// FormatWavelength returns a human-readable wavelength string with metric
// prefix scaling, e.g. "501 nm" or "9.66 µm".
func FormatWavelength(nm float64) string {
	switch {
	case math.IsInf(nm, 1):
		return "—"
	case nm <= 0:
		return "N/A"
	case nm < 1e3:
		return formatWithUnit(nm, "nm")
	case nm < 1e6:
		return formatWithUnit(nm/1e3, "µm")
	default:
		return formatWithUnit(nm/1e6, "mm")
	}
}

// FormatIntensity returns a human-readable intensity string in W/m² with
// metric prefix scaling.
func FormatIntensity(wm2 float64) string {
	switch {
	case wm2 <= 0:
		return "0 W/m²"
	case wm2 < 1e3:
		return formatWithUnit(wm2, "W/m²")
	case wm2 < 1e6:
		return formatWithUnit(wm2/1e3, "kW/m²")
	case wm2 < 1e9:
		return formatWithUnit(wm2/1e6, "MW/m²")
	default:
		return formatWithUnit(wm2/1e9, "GW/m²")
	}
}

// FormatTemperature returns a kelvin temperature string, e.g. "5778 K".
func FormatTemperature(k float64) string {
	if k < 100 {
		return fmt.Sprintf("%.1f K", k)
	}
	return fmt.Sprintf("%.0f K", k)
}

func formatWithUnit(value float64, unit string) string {
	if value < 10 {
		return fmt.Sprintf("%.2f %s", value, unit)
	}
	if value < 100 {
		return fmt.Sprintf("%.1f %s", value, unit)
	}
	return fmt.Sprintf("%.0f %s", value, unit)
}
