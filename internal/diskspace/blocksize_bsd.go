//go:build darwin || freebsd

package diskspace

import "golang.org/x/sys/unix"

// Bsize is already the fundamental block size here; there is no f_frsize.
func fundamentalBlockSize(stat *unix.Statfs_t) int64 {
	return int64(stat.Bsize) //nolint:unconvert // uint32 on darwin
}
