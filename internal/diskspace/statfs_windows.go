//go:build windows

package diskspace

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/CristiGvl/diskspace/internal/log"
)

var procGetDiskFreeSpaceW = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetDiskFreeSpaceW")

// windowsStatter reads volume statistics through kernel32.
type windowsStatter struct{}

// newPlatformStatter creates a Windows statter
func newPlatformStatter() Statter {
	return windowsStatter{}
}

// Statfs returns block statistics for the volume containing path. Block counts
// are derived from the cluster size and the byte totals of GetDiskFreeSpaceEx,
// which honours per-user quotas for the available figure.
func (windowsStatter) Statfs(_ context.Context, path string) (Stats, error) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Stats{}, &StorageError{Path: path, Err: err}
	}

	var availToCaller, totalBytes, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(ptr, &availToCaller, &totalBytes, &totalFree); err != nil {
		log.Error().Str("path", path).Err(err).Msg("Failed to get stats for data volume")
		return Stats{}, &StorageError{Path: path, Err: err}
	}

	size, err := clusterSize(ptr)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("Cluster size unavailable, using byte granularity")
		size = 1
	}

	st := Stats{
		BlockSize:   size,
		Blocks:      totalBytes / size,
		BlocksFree:  totalFree / size,
		BlocksAvail: availToCaller / size,
	}

	log.Debug().
		Str("path", path).
		Uint64("block_size", st.BlockSize).
		Uint64("blocks", st.Blocks).
		Uint64("blocks_avail", st.BlocksAvail).
		Msg("Data volume stats")

	return st, nil
}

func clusterSize(root *uint16) (uint64, error) {
	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32
	r1, _, e1 := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(root)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if r1 == 0 {
		return 0, e1
	}

	size := uint64(sectorsPerCluster) * uint64(bytesPerSector)
	if size == 0 {
		return 0, fmt.Errorf("zero cluster size")
	}
	return size, nil
}
