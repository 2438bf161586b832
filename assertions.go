package icerigidity

import (
	"fmt"
	"math"
	"testing"
)

// AssertionConfig describes the temperature grid the assertions sweep.
type AssertionConfig struct {
	// Lowest temperature checked (K)
	MinT float64

	// Upper bound (K), exclusive for AssertSoftening, inclusive for AssertPositiveFinite
	MaxT float64

	// Grid spacing (K)
	Step float64
}

// DefaultAssertionConfig returns the sub-melting range used by ice-sheet models.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MinT: 20,           // Arrhenius factor still well above underflow
		MaxT: MeltingPoint, // Sub-melting only
		Step: 0.5,
	}
}

// grid returns MinT, MinT+Step, ... up to MaxT. The last point is MaxT
// itself when inclusive is set.
func (cfg AssertionConfig) grid(inclusive bool) []float64 {
	if cfg.Step <= 0 || cfg.MaxT < cfg.MinT {
		return nil
	}
	var temps []float64
	for i := 0; ; i++ {
		t := cfg.MinT + float64(i)*cfg.Step
		if t >= cfg.MaxT {
			break
		}
		temps = append(temps, t)
	}
	if inclusive {
		temps = append(temps, cfg.MaxT)
	}
	return temps
}

// AssertSoftening verifies B decreases strictly with temperature.
//
// Warmer ice has a larger Arrhenius rate A, and B = 1e6 * A^(-1/n) falls
// as A grows:
//
//	T1 < T2  =>  B(T1) > B(T2)
func AssertSoftening(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	temps := cfg.grid(false)
	if len(temps) < 2 {
		t.Fatalf("Grid too small: MinT=%.2f MaxT=%.2f Step=%.2f", cfg.MinT, cfg.MaxT, cfg.Step)
	}

	var failures []string
	prev := GBSH2O(temps[0], nil)
	for _, temp := range temps[1:] {
		b := GBSH2O(temp, nil)
		if !(b < prev) {
			failures = append(failures, fmt.Sprintf(
				"  T=%.2f K: B=%.6e not below previous %.6e", temp, b, prev))
		}
		prev = b
	}

	if len(failures) > 0 {
		t.Errorf("Rigidity not strictly decreasing:\n%s", failures)
	}

	t.Logf("✓ Softening: B strictly decreasing over [%.2f, %.2f) K (%d points)",
		cfg.MinT, cfg.MaxT, len(temps))
}

// AssertPositiveFinite verifies 0 < B < +Inf over the grid, MaxT included.
func AssertPositiveFinite(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	temps := cfg.grid(true)
	if len(temps) == 0 {
		t.Fatalf("Empty grid: MinT=%.2f MaxT=%.2f Step=%.2f", cfg.MinT, cfg.MaxT, cfg.Step)
	}

	var failures []string
	for _, temp := range temps {
		b := GBSH2O(temp, nil)
		if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
			failures = append(failures, fmt.Sprintf("  T=%.2f K: B=%v", temp, b))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Rigidity not positive and finite:\n%s", failures)
	}

	t.Logf("✓ Positive and finite over [%.2f, %.2f] K (%d points)", cfg.MinT, cfg.MaxT, len(temps))
}

// PrintProfile outputs a profile table to the test log.
func PrintProfile(t *testing.T, p Profile) {
	t.Helper()

	t.Logf("\n=== Rigidity Profile ===")
	t.Logf("  T (K)      T (°C)     B (s^(1/n) Pa)")
	t.Logf("  ---------  ---------  --------------")
	for i, temp := range p.Temperatures {
		mark := ""
		if IsMelting(temp) {
			mark = "  ⚠ melting"
		}
		t.Logf("  %9.2f  %9.2f  %14.6e%s", temp, temp-MeltingPoint, p.Rigidity[i], mark)
	}

	s := p.Stats()
	t.Logf("\nSummary: %d finite, min=%.6e, max=%.6e, mean=%.6e, melting=%d",
		s.Finite, s.Min, s.Max, s.Mean, p.Melting)
}
