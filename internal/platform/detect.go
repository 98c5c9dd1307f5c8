package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect reports the host OS and architecture.
//
// OS and architecture always come from the Go runtime. Platform, family and
// version come from gopsutil; if the host query fails those fields stay
// empty and detection still succeeds, unless ctx was cancelled.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		Arch:    normalizeArch(runtime.GOARCH),
		ArchRaw: runtime.GOARCH,
	}

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	if hostInfo.KernelArch != "" {
		info.ArchRaw = hostInfo.KernelArch
	}
	info.Platform = normalizePlatform(hostInfo.Platform)
	info.Family = normalizePlatform(hostInfo.PlatformFamily)
	info.Version = normalizePlatform(hostInfo.PlatformVersion)

	return info, nil
}
