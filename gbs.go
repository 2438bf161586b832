package icerigidity

import "math"

// MeltingPoint is the nominal melting temperature of H2O ice (K).
const MeltingPoint = 273.15

// MeltingNotice is the message handed to the Notifier when a temperature
// reaches or exceeds MeltingPoint.
const MeltingNotice = "H2O ICE - GUARANTEED MELTING. Some temperature values are beyond 273.15K."

// GBS creep coefficients for H2O ice.
const (
	gasConstant = 8.3144598 // Rg, J mol^-1 K^-1
	glenN       = 1.8       // Glen's exponent

	grainRd   = 1.5e-6
	grainF    = 0.25
	meltPhi   = 0.01
	rateA0    = 3.9e-3 // s^-1 MPa
	grainExpP = -1.4

	activationQ = 49000.0 // J mol^-1
)

// Notifier receives advisory diagnostics. *slog.Logger satisfies it.
type Notifier interface {
	Warn(msg string, args ...any)
}

// NotifierFunc adapts an ordinary function to Notifier.
type NotifierFunc func(msg string, args ...any)

// Warn calls f(msg, args...).
func (f NotifierFunc) Warn(msg string, args ...any) { f(msg, args...) }

// GBSH2O returns the rigidity B (s^(1/n) Pa) of H2O ice at the given
// temperature in Kelvin, for the flow law sigma = B * e^(1/n) with
// grain-boundary-sliding creep.
//
// The temperature must be in Kelvin; no unit detection happens. When it is
// at or above MeltingPoint, MeltingNotice is sent to sink (nil is silent)
// and the value is still returned.
//
// No validation is done. A temperature of zero divides by zero inside the
// Arrhenius term and yields +Inf, as does anything below about 7.9 K where
// the rate underflows. NaN propagates. Use ValidateTemperature at the
// boundary if those inputs are possible.
func GBSH2O(temperature float64, sink Notifier) float64 {
	b := gbsRigidity(temperature)

	if sink != nil && IsMelting(temperature) {
		sink.Warn(MeltingNotice, "temperature", temperature)
	}

	return b
}

// gbsRigidity is the pure evaluation shared by GBSH2O and EvaluateProfile.
func gbsRigidity(temperature float64) float64 {
	// Typed locals keep every step in float64 rounding rather than exact
	// constant arithmetic.
	var (
		rg  float64 = gasConstant
		n   float64 = glenN
		rd  float64 = grainRd
		f   float64 = grainF
		phi float64 = meltPhi
		a0  float64 = rateA0
		p   float64 = grainExpP
		q   float64 = activationQ
	)

	d := (13.4e-6 / math.Pow(f, 0.5)) * (rd / 1.5e-6) * math.Pow(0.05/phi, 0.5)
	a1 := a0 * 0.5 * math.Pow(3, (n+1)/2)
	a2 := a1 * math.Exp(-2*n*phi) * math.Pow(d, p)

	// Arrhenius law, s^-1 MPa
	a := a2 * math.Exp(-q/(temperature*rg))

	return 1e6 * math.Pow(a, -1/n)
}

// IsMelting reports whether temperature (K) is at or above MeltingPoint.
func IsMelting(temperature float64) bool {
	return temperature >= MeltingPoint
}
