//go:build linux || darwin || freebsd

package disk

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
)

// UnixReader describes volumes from the mount table
type UnixReader struct{}

// newPlatformReader creates a new mount table reader
func newPlatformReader() Reader {
	return &UnixReader{}
}

// GetInfo returns the description of the volume holding path
func (r *UnixReader) GetInfo(ctx context.Context, path string) (*Info, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, err
	}

	partitions, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	mounts := make([]mount, 0, len(partitions))
	for _, p := range partitions {
		mounts = append(mounts, mount{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Filesystem: p.Fstype,
			Options:    p.Opts,
		})
	}

	m, ok := matchMount(resolved, mounts)
	if !ok {
		return nil, fmt.Errorf("no mount found for %s", path)
	}

	return &Info{
		Path:       path,
		Device:     m.Device,
		Mountpoint: m.Mountpoint,
		Filesystem: m.Filesystem,
		ReadOnly:   hasOption(m.Options, "ro"),
	}, nil
}
