package platform

import "strings"

// archAliases maps kernel and Go architecture names to Go's names.
var archAliases = map[string]string{
	"amd64":   "amd64",
	"x86_64":  "amd64",
	"x64":     "amd64",
	"arm64":   "arm64",
	"aarch64": "arm64",
	"386":     "386",
	"i386":    "386",
	"i686":    "386",
	"arm":     "arm",
	"armv7l":  "arm",
}

// normalizeArch converts an architecture name to Go's naming.
// Unknown names are returned lowercased.
func normalizeArch(arch string) string {
	normalized := strings.ToLower(strings.TrimSpace(arch))
	if canonical, ok := archAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}
