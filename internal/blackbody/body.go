package blackbody

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Body models a single blackbody at some temperature. Every derived
// quantity is recomputed from the current temperature on each call; there
// is no cached state, so a Body is safe to snapshot by value.
type Body struct {
	temperature float64 // K
	initialTemp float64 // K, restored by Reset
	cal         Calibration
}

// NewBody creates a body at the given temperature (K, floored at 0).
func NewBody(tempK float64, cal Calibration) *Body {
	if tempK < 0 {
		tempK = 0
	}
	return &Body{
		temperature: tempK,
		initialTemp: tempK,
		cal:         cal,
	}
}

// Temperature returns the current temperature in kelvin.
func (b *Body) Temperature() float64 {
	return b.temperature
}

// SetTemperature sets the current temperature (K, floored at 0).
// Display-range clamping is the caller's concern.
func (b *Body) SetTemperature(tempK float64) {
	if tempK < 0 {
		tempK = 0
	}
	b.temperature = tempK
}

// Reset restores the temperature the body was constructed with.
func (b *Body) Reset() {
	b.temperature = b.initialTemp
}

// Calibration returns the visual calibration the body was built with.
func (b *Body) Calibration() Calibration {
	return b.cal
}

// SpectralRadiance evaluates Planck's law at the given wavelength (nm).
// Returns 0 at wavelength 0 and whenever the exponential term would
// overflow (very low temperature or very short wavelength), so the result
// is always finite and non-negative.
func (b *Body) SpectralRadiance(wavelengthNm float64) float64 {
	if wavelengthNm <= 0 || b.temperature <= 0 {
		return 0
	}

	x := RadiationB / (wavelengthNm * b.temperature)
	if x > maxExpArg {
		// exp(x) overflows float64; the true radiance here is
		// indistinguishable from zero.
		return 0
	}

	// Expm1 keeps the denominator nonzero when x underflows toward 0
	// (huge wavelength-temperature products), where exp(x)-1 would round
	// to exactly 0 and the division would blow up to +Inf.
	return RadiationA / (math.Pow(wavelengthNm, 5) * math.Expm1(x))
}

// PeakWavelength returns the wavelength (nm) of maximum spectral radiance
// per Wien's displacement law. At temperature 0 the peak is undefined and
// +Inf is returned; callers must guard before formatting or plotting it.
func (b *Body) PeakWavelength() float64 {
	if b.temperature <= 0 {
		return math.Inf(1)
	}
	return 1e9 * WienConstant / b.temperature
}

// TotalIntensity returns the total radiated power per unit area in W/m²
// per the Stefan-Boltzmann law. Exactly 0 at temperature 0.
func (b *Body) TotalIntensity() float64 {
	t := b.temperature
	return StefanBoltzmann * t * t * t * t
}

// RenormalizedTemperature maps the temperature into a dimensionless
// brightness factor: 0 at or below the calibrated turn-on temperature,
// rising as ((T-Tmin)/(Tmax-Tmin))^exponent. The result may exceed 1
// above the saturation temperature; consumers clamp it.
func (b *Body) RenormalizedTemperature() float64 {
	over := b.temperature - b.cal.VisibleTempMin
	if over < 0 {
		over = 0
	}
	span := b.cal.VisibleTempMax - b.cal.VisibleTempMin
	if span <= 0 {
		// Degenerate calibration; render dark rather than produce NaN.
		return 0
	}
	return math.Pow(over/span, b.cal.Exponent)
}

// boundedBrightness is the renormalized temperature scaled and clamped to
// [0, 1], used as the overall brightness of every color channel.
func (b *Body) boundedBrightness() float64 {
	v := b.RenormalizedTemperature() * b.cal.BrightnessScale
	if v > 1 {
		v = 1
	}
	return v
}

// ColorIntensity returns the perceptual channel intensity in [0, 255] for
// the given wavelength (nm). The spectral balance between channels comes
// from the radiance ratio against the strongest reference channel, while
// the absolute level comes from the bounded brightness, so cold bodies
// fade to black instead of showing saturated wrong-hued light.
func (b *Body) ColorIntensity(wavelengthNm float64) int {
	largest := math.Max(b.SpectralRadiance(RedWavelength),
		math.Max(b.SpectralRadiance(GreenWavelength), b.SpectralRadiance(BlueWavelength)))
	if largest == 0 {
		return 0
	}

	v := int(255 * b.boundedBrightness() * b.SpectralRadiance(wavelengthNm) / largest)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return v
}

// RedColor returns a color with only the red channel lit.
func (b *Body) RedColor() colorful.Color {
	return colorful.Color{R: float64(b.ColorIntensity(RedWavelength)) / 255}
}

// GreenColor returns a color with only the green channel lit.
func (b *Body) GreenColor() colorful.Color {
	return colorful.Color{G: float64(b.ColorIntensity(GreenWavelength)) / 255}
}

// BlueColor returns a color with only the blue channel lit.
func (b *Body) BlueColor() colorful.Color {
	return colorful.Color{B: float64(b.ColorIntensity(BlueWavelength)) / 255}
}

// StarColor returns the approximate apparent color of the body: all three
// channels at their renormalized intensities.
func (b *Body) StarColor() colorful.Color {
	return colorful.Color{
		R: float64(b.ColorIntensity(RedWavelength)) / 255,
		G: float64(b.ColorIntensity(GreenWavelength)) / 255,
		B: float64(b.ColorIntensity(BlueWavelength)) / 255,
	}
}

// Halo describes the glowing-star halo: the star color at a partial
// opacity, drawn at some pixel radius around the star disc.
type Halo struct {
	Color  colorful.Color
	Alpha  float64
	Radius float64 // px
}

// Halo returns the halo appearance for the current temperature. Both the
// radius and the opacity interpolate linearly over the clamped
// renormalized temperature.
func (b *Body) Halo() Halo {
	t := b.RenormalizedTemperature()
	if t > 1 {
		t = 1
	}
	return Halo{
		Color:  b.StarColor(),
		Alpha:  t * b.cal.HaloAlphaMax,
		Radius: b.cal.HaloRadiusMin + t*(b.cal.HaloRadiusMax-b.cal.HaloRadiusMin),
	}
}
