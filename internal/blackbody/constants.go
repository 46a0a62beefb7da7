// Package blackbody implements the blackbody radiation model: Planck
// spectral radiance, Wien peak wavelength, Stefan-Boltzmann intensity,
// and the perceptual color mapping derived from them.
package blackbody

// Physical constants for the radiance and intensity formulas.
//
// Wavelengths are handled in nanometers throughout, temperatures in
// kelvin, so the radiation constants are pre-scaled for those units.
const (
	// RadiationA is 2hc^2 in W·m²/sr, the Planck law prefactor.
	RadiationA = 1.191042e-16

	// RadiationB is hc/k in nm·K, the Planck law exponent constant.
	RadiationB = 1.438770e7

	// WienConstant is Wien's displacement constant in m·K.
	WienConstant = 2.897773e-3

	// StefanBoltzmann is the Stefan-Boltzmann constant in W/(m²·K⁴).
	StefanBoltzmann = 5.670373e-8
)

// Reference wavelengths (nm) at which the three color channels sample the
// Planck curve.
const (
	RedWavelength   = 650.0
	GreenWavelength = 550.0
	BlueWavelength  = 450.0
)

// Electromagnetic band boundaries (nm) used for spectrum annotation.
const (
	VisibleMinWavelength = 380.0 // UV below
	VisibleMaxWavelength = 700.0 // IR above
)

// Notable reference temperatures (K) exposed as presets.
const (
	TempEarth        = 300.0
	TempLightBulb    = 3000.0
	TempSun          = 5778.0
	TempSirius       = 9940.0
	TempDisplayMin   = 270.0
	TempDisplayMax   = 11000.0
	TempDisplayStart = TempSun
)

// maxExpArg bounds the argument to math.Exp in the radiance formula.
// Beyond this the exponential overflows float64; the radiance is treated
// as zero instead of letting +Inf propagate into the color mapping.
const maxExpArg = 700.0
