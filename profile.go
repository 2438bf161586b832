package icerigidity

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// chunkSize is how many temperatures a worker evaluates between context checks.
const chunkSize = 1024

// ProfileConfig controls profile evaluation.
type ProfileConfig struct {
	Workers  int      // Concurrent workers (<= 0 means 1)
	Strict   bool     // Reject non-finite and non-positive temperatures up front
	Notifier Notifier // Receives the melting notice (nil = silent)
}

// DefaultProfileConfig returns sensible defaults.
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{
		Workers: runtime.NumCPU(),
		Strict:  false,
	}
}

// Profile holds a temperature field and the rigidity evaluated on it.
type Profile struct {
	Temperatures []float64 // Copy of the input, Kelvin
	Rigidity     []float64 // B, s^(1/n) Pa
	Melting      int       // Number of temperatures at or above MeltingPoint
}

// ProfileStats summarises the finite rigidity values of a Profile.
type ProfileStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Finite int // Number of finite values included
}

// EvaluateProfile computes GBSH2O over every temperature using cfg.Workers
// goroutines. Each value is bit-identical to a direct GBSH2O call.
//
// The melting notice is sent at most once per profile, after evaluation,
// instead of once per offending element.
func EvaluateProfile(ctx context.Context, temperatures []float64, cfg ProfileConfig) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, fmt.Errorf("evaluate profile: %w", err)
	}

	if cfg.Strict {
		for i, t := range temperatures {
			if err := ValidateTemperature(t); err != nil {
				return Profile{}, &TemperatureError{Index: i, Value: t, Err: err}
			}
		}
	}

	p := Profile{
		Temperatures: append([]float64(nil), temperatures...),
		Rigidity:     make([]float64, len(temperatures)),
	}
	if len(temperatures) == 0 {
		return p, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(temperatures) {
		workers = len(temperatures)
	}

	var (
		wg      sync.WaitGroup
		melting int64
		span    = (len(temperatures) + workers - 1) / workers
	)

	for w := 0; w < workers; w++ {
		lo := w * span
		hi := min(lo+span, len(temperatures))
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			var local int64
			for start := lo; start < hi; start += chunkSize {
				if ctx.Err() != nil {
					return
				}
				end := min(start+chunkSize, hi)
				for i := start; i < end; i++ {
					t := temperatures[i]
					p.Rigidity[i] = gbsRigidity(t)
					if IsMelting(t) {
						local++
					}
				}
			}
			atomic.AddInt64(&melting, local)
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Profile{}, fmt.Errorf("evaluate profile: %w", err)
	}

	p.Melting = int(melting)
	if cfg.Notifier != nil && p.Melting > 0 {
		cfg.Notifier.Warn(MeltingNotice, "melting", p.Melting, "count", len(temperatures), "workers", workers)
	}

	return p, nil
}

// Stats computes min, max and mean over the finite rigidity values.
// A profile with no finite values returns zero stats.
func (p Profile) Stats() ProfileStats {
	s := ProfileStats{Min: math.Inf(1), Max: math.Inf(-1)}

	var sum float64
	for _, b := range p.Rigidity {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			continue
		}
		s.Min = math.Min(s.Min, b)
		s.Max = math.Max(s.Max, b)
		sum += b
		s.Finite++
	}

	if s.Finite == 0 {
		return ProfileStats{}
	}
	s.Mean = sum / float64(s.Finite)
	return s
}
