//go:build linux

package diskspace

import "golang.org/x/sys/unix"

func fundamentalBlockSize(stat *unix.Statfs_t) int64 {
	return pickBlockSize(int64(stat.Frsize), int64(stat.Bsize)) //nolint:unconvert // int32 on 32-bit arches
}
