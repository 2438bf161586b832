// Package icerigidity computes the flow-law rigidity of polycrystalline H2O
// ice under grain-boundary-sliding (GBS) creep.
//
// # Overview
//
// Glen-type flow laws relate deviatoric stress to strain rate through a
// temperature-dependent stiffness coefficient B:
//
//	σ = B · ε̇^(1/n)
//
// icerigidity evaluates B for the GBS mechanism with an Arrhenius
// temperature dependence. The function is pure: no package state, no I/O,
// safe for any number of concurrent callers.
//
// # Quick Start
//
//	b := icerigidity.GBSH2O(263.15, slog.Default())
//	fmt.Printf("B(-10 °C) = %.4e s^(1/n) Pa\n", b)
//
// Temperatures are always Kelvin. Nothing is converted or guessed.
//
// # The Formula
//
// Microstructure enters through an effective grain size d and a cascade
// of pre-exponential factors:
//
//	d  = (13.4e-6 / √f) · (rd / 1.5e-6) · √(0.05 / φ)
//	A1 = A0 · 0.5 · 3^((n+1)/2)
//	A2 = A1 · exp(-2nφ) · d^p
//	A  = A2 · exp(-Q / (R·T))
//	B  = 1e6 · A^(-1/n)
//
// With n = 1.8, rd = 1.5e-6, f = 0.25, φ = 0.01, A0 = 3.9e-3 s⁻¹ MPa⁻ⁿ,
// p = -1.4, Q = 49 kJ/mol and R = 8.3144598 J/(mol·K).
//
// Properties:
//   - Softening: B strictly decreases as T rises
//   - Determinism: same T, same bits
//   - B(0) = +Inf (the Arrhenius term divides by zero; not clamped)
//
// # Diagnostics
//
// At or above 273.15 K the ice is guaranteed to melt. B is still returned,
// and MeltingNotice goes to the Notifier supplied by the caller. Any
// *slog.Logger is a Notifier:
//
//	logger := slog.New(tint.NewHandler(os.Stderr, nil))
//	b := icerigidity.GBSH2O(275, logger) // logs a WARN record
//
// Pass nil to stay silent, or a NotifierFunc to capture.
//
// # Profiles
//
// EvaluateProfile maps a whole temperature field onto rigidity with a
// worker pool and reports melting once per field:
//
//	p, err := icerigidity.EvaluateProfile(ctx, temps, icerigidity.DefaultProfileConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Stats().Mean)
//
// Set ProfileConfig.Strict to reject NaN, infinite and non-positive
// temperatures with a *TemperatureError before any evaluation.
//
// # Testing
//
// Assertion helpers check the physical properties over a grid:
//
//	func TestMyFlowLaw(t *testing.T) {
//	    cfg := icerigidity.DefaultAssertionConfig()
//	    icerigidity.AssertSoftening(t, cfg)
//	    icerigidity.AssertPositiveFinite(t, cfg)
//	}
package icerigidity
