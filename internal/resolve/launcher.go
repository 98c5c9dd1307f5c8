package resolve

import (
	"path/filepath"
	"strings"
)

const launcherBinary = "alauncher"

// LauncherResolver resolves a pre-installed alauncher binary.
type LauncherResolver struct {
	inspector PathInspector
	logger    Logger
}

// NewLauncherResolver creates a launcher-mode resolver.
func NewLauncherResolver(inspector PathInspector, logger Logger) *LauncherResolver {
	if inspector == nil {
		inspector = OSFileSystem{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &LauncherResolver{inspector: inspector, logger: logger}
}

// LauncherBinaryName returns the launcher file name for the OS class.
func LauncherBinaryName(osClass OSClass) string {
	return launcherBinary + osClass.ExeSuffix()
}

// Resolve maps launcherPath to the launcher binary for osClass.
//
// A directory gets the launcher name appended. Anything else (a file, or a
// path that does not exist) is replaced by the launcher sitting next to it.
// The result is never checked for existence.
func (l *LauncherResolver) Resolve(launcherPath string, osClass OSClass) Result {
	res := Result{
		Build:   NoBuild,
		OS:      osClass,
		Mode:    KindLauncher,
		Outcome: OutcomeResolved,
	}

	if osClass == MacOS {
		l.logger.Error("a³ installation mode not supported on macOS, use the portable archive mode instead",
			"launcher", launcherPath)
		res.Outcome = OutcomeUnsupportedOS
		return res
	}

	bin := LauncherBinaryName(osClass)
	if launcherPath != "" && l.inspector.IsDir(launcherPath) {
		res.ToolPath = filepath.Join(launcherPath, bin)
	} else {
		parent, ok := launcherParent(launcherPath)
		if !ok {
			l.logger.Error("launcher path has no parent directory", "launcher", launcherPath)
			res.Outcome = OutcomeMalformedPath
			return res
		}
		res.ToolPath = filepath.Join(parent, bin)
	}

	l.logger.Info("setting tool path to: "+res.ToolPath, "launcher", launcherPath)
	return res
}

// launcherParent returns everything up to and including the last separator
// that is not the final character of p. A root or a bare file name has no parent.
func launcherParent(p string) (string, bool) {
	if len(p) < 2 {
		return "", false
	}
	separators := "/"
	if filepath.Separator != '/' {
		separators += string(filepath.Separator)
	}
	i := strings.LastIndexAny(p[:len(p)-1], separators)
	if i < 0 {
		return "", false
	}
	parent := p[:i+1]
	if filepath.Clean(parent) == filepath.Clean(p) {
		return "", false
	}
	return parent, true
}
