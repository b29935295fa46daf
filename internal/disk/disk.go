package disk

import (
	"context"
	"path/filepath"
	"strings"
)

// Info describes the volume holding the data root
type Info struct {
	Path       string `json:"path"`
	Device     string `json:"device"`
	Mountpoint string `json:"mountpoint"`
	Filesystem string `json:"filesystem"`
	Label      string `json:"label,omitempty"`
	BlockSize  uint64 `json:"block_size,omitempty"`
	ReadOnly   bool   `json:"read_only"`
}

// Reader interface for describing the data volume
type Reader interface {
	GetInfo(ctx context.Context, path string) (*Info, error)
}

// NewReader creates a new volume reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// mount is the subset of a partition entry matchMount needs
type mount struct {
	Device     string
	Mountpoint string
	Filesystem string
	Options    []string
}

// matchMount returns the mount whose mount point is the longest path prefix
// of path. ok is false when nothing matches.
func matchMount(path string, mounts []mount) (best mount, ok bool) {
	path = filepath.Clean(path)
	for _, m := range mounts {
		mp := filepath.Clean(m.Mountpoint)
		if !within(path, mp) {
			continue
		}
		if !ok || len(mp) > len(filepath.Clean(best.Mountpoint)) {
			best, ok = m, true
		}
	}
	return best, ok
}

func within(path, mountpoint string) bool {
	if path == mountpoint {
		return true
	}
	if !strings.HasSuffix(mountpoint, string(filepath.Separator)) {
		mountpoint += string(filepath.Separator)
	}
	return strings.HasPrefix(path, mountpoint)
}

func hasOption(opts []string, name string) bool {
	for _, o := range opts {
		if o == name {
			return true
		}
	}
	return false
}
