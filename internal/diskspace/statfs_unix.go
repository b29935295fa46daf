//go:build linux || darwin || freebsd

package diskspace

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/CristiGvl/diskspace/internal/log"
)

// unixStatter reads block statistics with statfs(2).
type unixStatter struct{}

// newPlatformStatter creates a statfs based statter
func newPlatformStatter() Statter {
	return unixStatter{}
}

// Statfs returns the block statistics of the filesystem containing path
func (unixStatter) Statfs(_ context.Context, path string) (Stats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		log.Error().Str("path", path).Err(err).Msg("Failed to get stats for data volume")
		return Stats{}, &StorageError{Path: path, Err: err}
	}

	bsize := fundamentalBlockSize(&stat)
	if bsize <= 0 {
		return Stats{}, &StorageError{Path: path, Err: fmt.Errorf("invalid block size %d", bsize)}
	}

	st := Stats{
		BlockSize:   uint64(bsize),
		Blocks:      uint64(stat.Blocks), //nolint:unconvert // width differs per platform
		BlocksFree:  nonNegative(int64(stat.Bfree)),
		BlocksAvail: nonNegative(int64(stat.Bavail)),
	}

	log.Debug().
		Str("path", path).
		Uint64("block_size", st.BlockSize).
		Uint64("blocks", st.Blocks).
		Uint64("blocks_avail", st.BlocksAvail).
		Msg("Data volume stats")

	return st, nil
}

// pickBlockSize returns the unit block counts are reported in. Linux counts
// blocks in f_frsize units; f_bsize is only the preferred I/O size and is
// used when the kernel leaves f_frsize unset.
func pickBlockSize(frsize, bsize int64) int64 {
	if frsize > 0 {
		return frsize
	}
	return bsize
}

// nonNegative clamps counts that some kernels report as signed values.
func nonNegative(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
