package blackbody

// Calibration holds the visual-calibration tunables for the color mapping.
// None of these are physical quantities: they control when a body starts
// to visibly glow on screen and how fast its brightness saturates.
type Calibration struct {
	// VisibleTempMin is the turn-on temperature (K): at or below it the
	// body renders black.
	VisibleTempMin float64

	// VisibleTempMax is the saturation temperature (K) at which the
	// renormalized temperature reaches 1 before scaling.
	VisibleTempMax float64

	// Exponent shapes the renormalized temperature curve. Values below 1
	// give a faster initial brightness rise. Chosen empirically, no
	// physical derivation.
	Exponent float64

	// BrightnessScale multiplies the renormalized temperature before it
	// is clamped to 1 for the channel intensities. Historical builds of
	// the simulation shipped values between 1.0 and 1.5.
	BrightnessScale float64

	// Halo geometry and opacity ranges for the glowing-star rendering.
	HaloRadiusMin float64 // px at renormalized temperature 0
	HaloRadiusMax float64 // px at renormalized temperature 1
	HaloAlphaMax  float64 // opacity at renormalized temperature 1

	// HistoryCapacity bounds the saved-snapshot list.
	HistoryCapacity int
}

// DefaultCalibration returns the calibration used by the simulation unless
// overridden by configuration.
func DefaultCalibration() Calibration {
	return Calibration{
		VisibleTempMin:  700,
		VisibleTempMax:  3000,
		Exponent:        0.7,
		BrightnessScale: 1.0,
		HaloRadiusMin:   10,
		HaloRadiusMax:   40,
		HaloAlphaMax:    0.3,
		HistoryCapacity: 2,
	}
}
