package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Android SupportedOS = "android"
	Darwin  SupportedOS = "darwin"
	FreeBSD SupportedOS = "freebsd"
	Windows SupportedOS = "windows"
)

var supported = []SupportedOS{Linux, Android, Darwin, FreeBSD, Windows}

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	return isSupported(GetOS())
}

func isSupported(os SupportedOS) bool {
	for _, s := range supported {
		if s == os {
			return true
		}
	}
	return false
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		names := make([]string, len(supported))
		for i, s := range supported {
			names[i] = string(s)
		}
		return fmt.Errorf("unsupported operating system: %s. Supported: %s", runtime.GOOS, strings.Join(names, ", "))
	}
	return nil
}

// DataDir returns the root of the primary application-data volume
func DataDir() string {
	return dataDir(GetOS(), os.Getenv)
}

func dataDir(goos SupportedOS, getenv func(string) string) string {
	switch goos {
	case Android:
		return "/data"
	case Windows:
		drive := getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return strings.TrimRight(drive, `\`) + `\`
	default:
		return "/"
	}
}
