//go:build !linux && !darwin && !freebsd && !windows

package diskspace

import (
	"context"
	"fmt"
	"runtime"
)

// unsupportedStatter is a fallback for platforms without a statfs binding
type unsupportedStatter struct{}

// newPlatformStatter creates a fallback statter for unsupported platforms
func newPlatformStatter() Statter {
	return unsupportedStatter{}
}

// Statfs always fails with a StorageError
func (unsupportedStatter) Statfs(_ context.Context, path string) (Stats, error) {
	return Stats{}, &StorageError{
		Path: path,
		Err:  fmt.Errorf("disk statistics not supported on %s", runtime.GOOS),
	}
}
