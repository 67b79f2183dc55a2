// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// IntToUint safely converts an int to uint using cast and checks for underflow
func IntToUint(value int) (uint, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d exceeds uint range", value)
	}

	return cast.ToUintE(value)
}

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for underflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d exceeds uint64 range", value)
	}

	return cast.ToUint64E(value)
}

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}
