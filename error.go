package levauto

import (
	"errors"
	"fmt"
)

// Common configuration errors.
var (
	// ErrMaxDistanceTooLarge indicates a requested maximum edit distance
	// exceeds MaxSupportedDistance.
	ErrMaxDistanceTooLarge = errors.New("levauto: max distance exceeds supported range")
)

// MaxSupportedDistance is the largest maximum edit distance a Builder can
// be configured with. The parametric layer enumerates every one of the
// 2^(2*maxDistance+1) possible characteristic-vector windows per shape, so
// this is both a correctness bound (the window must fit a uint32) and a
// practical one (cost grows exponentially with maxDistance).
const MaxSupportedDistance = 15

// ConfigError reports a problem with the parameters passed to NewBuilder.
type ConfigError struct {
	MaxDistance uint8
	Err         error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("levauto: invalid configuration (max distance %d): %v", e.MaxDistance, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
