// Package config holds the tuning constants that shape aerosort's merge
// strategy selection. It follows the same pattern as the service's
// internal/env package: plain package-level state, overridable from the
// environment at process start, with a safe compiled-in fallback.
package config

import (
	"os"
	"strconv"

	"github.com/edirooss/aerosort/internal/telemetry"
)

// Tuning holds the constants referenced throughout the sort driver and key
// collection. A zero Tuning is not meaningful; use DefaultTuning or Load.
type Tuning struct {
	// InsertionSortCutoff is the maximum run length sorted by insertion sort
	// instead of being split further.
	InsertionSortCutoff int

	// LazyFallbackMax is the largest collected key count that still triggers
	// the fully in-place rotation-merge fallback.
	LazyFallbackMax int

	// KeyCollectionFactorMul scales the number of keys collected:
	// k = floor(sqrt(FactorMul * n)). Default collects up to floor(sqrt(2n)).
	KeyCollectionFactorMul int
}

// DefaultTuning returns the constants aerosort uses when no environment
// override is present.
func DefaultTuning() Tuning {
	return Tuning{
		InsertionSortCutoff:    64,
		LazyFallbackMax:        12,
		KeyCollectionFactorMul: 2,
	}
}

const (
	envInsertionCutoff = "AEROSORT_INSERTION_CUTOFF"
	envLazyFallbackMax = "AEROSORT_LAZY_FALLBACK_MAX"
	envKeyFactorMul    = "AEROSORT_KEY_COLLECTION_FACTOR"
)

// Load returns DefaultTuning with any of its fields overridden by the
// corresponding environment variable, when that variable parses as a
// positive integer. A malformed override is logged and ignored rather than
// treated as fatal; the library must never panic on a bad environment.
func Load() Tuning {
	t := DefaultTuning()
	t.InsertionSortCutoff = overrideInt(envInsertionCutoff, t.InsertionSortCutoff)
	t.LazyFallbackMax = overrideInt(envLazyFallbackMax, t.LazyFallbackMax)
	t.KeyCollectionFactorMul = overrideInt(envKeyFactorMul, t.KeyCollectionFactorMul)
	return t
}

func overrideInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		telemetry.Logger().Warn("ignoring malformed tuning override",
			telemetry.String("var", key), telemetry.String("value", raw))
		return fallback
	}
	return v
}
