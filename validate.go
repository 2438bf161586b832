package icerigidity

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFinite is returned for NaN or infinite temperatures.
	ErrNonFinite = errors.New("temperature is not finite")

	// ErrNonPositive is returned for temperatures at or below absolute zero.
	// A Celsius value passed where Kelvin is expected usually ends up here.
	ErrNonPositive = errors.New("temperature is not above absolute zero")
)

// TemperatureError reports an invalid entry of a temperature profile.
type TemperatureError struct {
	Index int
	Value float64
	Err   error
}

func (e *TemperatureError) Error() string {
	return fmt.Sprintf("temperature[%d] = %g K: %v", e.Index, e.Value, e.Err)
}

func (e *TemperatureError) Unwrap() error { return e.Err }

// ValidateTemperature checks that t is a usable absolute temperature in
// Kelvin. GBSH2O never calls it; callers guard their own boundary.
func ValidateTemperature(t float64) error {
	switch {
	case math.IsNaN(t) || math.IsInf(t, 0):
		return ErrNonFinite
	case t <= 0:
		return ErrNonPositive
	}
	return nil
}
