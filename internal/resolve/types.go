package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// OSClass identifies the operating system family of the build agent.
type OSClass int

const (
	// Unix covers Linux agents.
	Unix OSClass = iota
	// Windows agents use .exe binaries.
	Windows
	// MacOS agents get .app bundles; launcher mode is unavailable.
	MacOS
)

// String returns the lowercase name of the OS class.
func (o OSClass) String() string {
	switch o {
	case Unix:
		return "unix"
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	default:
		return fmt.Sprintf("OSClass(%d)", int(o))
	}
}

// OSTag returns the tag used for this OS class in installer archive names.
func (o OSClass) OSTag() string {
	switch o {
	case Windows:
		return "win64"
	case MacOS:
		return "macos64"
	default:
		return "linux64"
	}
}

// ArchiveSuffix is the file extension installer archives carry for this OS class.
func (o OSClass) ArchiveSuffix() string {
	return ".zip"
}

// ExeSuffix is appended to binary names on this OS class.
func (o OSClass) ExeSuffix() string {
	if o == Windows {
		return ".exe"
	}
	return ""
}

// ParseOSClass maps a user supplied OS name to an OSClass.
func ParseOSClass(s string) (OSClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unix", "linux":
		return Unix, nil
	case "windows", "win":
		return Windows, nil
	case "macos", "darwin", "mac":
		return MacOS, nil
	default:
		return Unix, fmt.Errorf("unknown OS class: %q (expected unix, windows or macos)", s)
	}
}

// NoBuild is the build number reported when no archive was selected.
const NoBuild int64 = -1

// Outcome classifies how a resolution ended.
type Outcome int

const (
	// OutcomeResolved means ToolPath is usable.
	OutcomeResolved Outcome = iota
	// OutcomeNotFound means archive mode found no conforming package.
	OutcomeNotFound
	// OutcomeUnsupportedOS means launcher mode was requested on macOS.
	OutcomeUnsupportedOS
	// OutcomeMalformedPath means the launcher path has no parent directory.
	OutcomeMalformedPath
)

// String returns the outcome in snake_case for reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUnsupportedOS:
		return "unsupported_os"
	case OutcomeMalformedPath:
		return "malformed_path"
	default:
		return "unknown"
	}
}

var (
	ErrNotFound      = errors.New("no a³ installer package found")
	ErrUnsupportedOS = errors.New("launcher mode is not supported on macOS, use the portable archive mode instead")
	ErrMalformedPath = errors.New("launcher path has no parent directory")
)

// ModeKind names the resolution mode that produced a Result.
type ModeKind string

const (
	KindArchive  ModeKind = "archive"
	KindLauncher ModeKind = "launcher"
)

// Result is the outcome of a single resolution.
type Result struct {
	// ToolPath is the resolved binary path. Empty unless Outcome is OutcomeResolved.
	ToolPath string
	// Build is the selected build number, NoBuild in launcher mode or when nothing matched.
	Build int64
	// Target is the analysis target. Empty in launcher mode.
	Target string
	// OS is the OS class the resolution ran for.
	OS OSClass
	// Mode is the mode that produced this result.
	Mode ModeKind
	// Outcome states whether ToolPath can be used.
	Outcome Outcome
	// Archive is the path of the selected installer archive (archive mode only).
	Archive string
}

// OK reports whether the result carries a usable tool path.
func (r Result) OK() bool {
	return r.Outcome == OutcomeResolved && r.ToolPath != ""
}

// Err returns the sentinel error matching the outcome, or nil when resolved.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeResolved:
		return nil
	case OutcomeNotFound:
		return ErrNotFound
	case OutcomeUnsupportedOS:
		return ErrUnsupportedOS
	case OutcomeMalformedPath:
		return ErrMalformedPath
	default:
		return fmt.Errorf("unknown resolution outcome %d", int(r.Outcome))
	}
}

// ToolFilePath returns the resolved tool path, empty when absent.
func (r Result) ToolFilePath() string { return r.ToolPath }

// BuildNr returns the selected build number or NoBuild.
func (r Result) BuildNr() int64 { return r.Build }

// NodeOS returns the OS class the result was computed for.
func (r Result) NodeOS() OSClass { return r.OS }
