//go:build windows

package disk

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StackExchange/wmi"
)

// WindowsReader describes volumes through WMI
type WindowsReader struct{}

// newPlatformReader creates a new Windows volume reader
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// Win32_Volume represents WMI volume data
type Win32_Volume struct {
	DeviceID    string
	DriveLetter *string
	FileSystem  *string
	Label       *string
	BlockSize   *uint64
}

// GetInfo returns the description of the volume holding path
func (r *WindowsReader) GetInfo(ctx context.Context, path string) (*Info, error) {
	drive := strings.ToUpper(filepath.VolumeName(path))
	if drive == "" {
		return nil, fmt.Errorf("no drive letter in %s", path)
	}

	var volumes []Win32_Volume
	query := fmt.Sprintf("SELECT DeviceID, DriveLetter, FileSystem, Label, BlockSize FROM Win32_Volume WHERE DriveLetter = '%s'", drive)

	errCh := make(chan error, 1)
	go func() {
		errCh <- wmi.Query(query, &volumes)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errCh:
		if err != nil {
			return nil, fmt.Errorf("failed to query Win32_Volume: %w", err)
		}
	}

	if len(volumes) == 0 {
		return nil, fmt.Errorf("no volume found for %s", drive)
	}

	v := volumes[0]
	info := &Info{
		Path:       path,
		Device:     v.DeviceID,
		Mountpoint: drive + `\`,
	}
	if v.FileSystem != nil {
		info.Filesystem = *v.FileSystem
	}
	if v.Label != nil {
		info.Label = *v.Label
	}
	if v.BlockSize != nil {
		info.BlockSize = *v.BlockSize
	}

	return info, nil
}
