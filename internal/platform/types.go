// Package platform detects the build agent's operating system and maps it to
// the OS class used for a³ tool resolution.
//
// Host details come from gopsutil. The detected information is also exposed
// to Lua configuration files as a read-only "platform" table.
package platform

import (
	"context"
	"fmt"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/resolve"
)

// Info contains platform detection information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Arch     string // normalized ("amd64", "arm64", "386", "arm")
	ArchRaw  string // kernel arch as reported by the host (e.g., "x86_64")
	Platform string // distro or product ID lowercased (e.g., "ubuntu", "darwin", "microsoft windows 11 pro")
	Family   string // platform family as reported by the host
	Version  string // platform version
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// OSClass maps the detected OS to a resolution OS class.
// Linux and the BSDs are treated as Unix agents.
func (i *Info) OSClass() (resolve.OSClass, error) {
	switch i.OS {
	case "windows":
		return resolve.Windows, nil
	case "darwin":
		return resolve.MacOS, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return resolve.Unix, nil
	default:
		return resolve.Unix, fmt.Errorf("unsupported operating system for a³: %q", i.OS)
	}
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// StaticDetector returns a fixed Info. Tests and embedders use it to pin the
// platform instead of querying the host.
type StaticDetector struct {
	Info *Info
}

// Detect returns the configured info.
func (s StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if s.Info == nil {
		return nil, fmt.Errorf("no platform info configured")
	}
	return s.Info, nil
}
