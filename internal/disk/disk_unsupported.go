//go:build !linux && !darwin && !freebsd && !windows

package disk

import (
	"context"
	"fmt"
	"runtime"
)

// noMountTable is used where neither a mount table nor WMI is available
type noMountTable struct{}

func newPlatformReader() Reader {
	return noMountTable{}
}

// GetInfo cannot resolve the volume holding path on this platform
func (noMountTable) GetInfo(_ context.Context, path string) (*Info, error) {
	return nil, fmt.Errorf("cannot describe volume of %s on %s", path, runtime.GOOS)
}
