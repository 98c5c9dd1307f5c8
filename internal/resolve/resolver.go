package resolve

import (
	"github.com/ZebulonRouseFrantzich/a3tool/internal/archive"
)

// Mode is a resolution request. It is either ArchiveMode or LauncherMode.
type Mode interface {
	Kind() ModeKind
	isMode()
}

// ArchiveMode resolves the tool from installer archives in PackageDir.
type ArchiveMode struct {
	PackageDir string
	Target     string
}

// Kind returns KindArchive.
func (ArchiveMode) Kind() ModeKind { return KindArchive }
func (ArchiveMode) isMode()        {}

// LauncherMode resolves a pre-installed alauncher from Path.
type LauncherMode struct {
	Path string
}

// Kind returns KindLauncher.
func (LauncherMode) Kind() ModeKind { return KindLauncher }
func (LauncherMode) isMode()        {}

// Options configures a Resolver.
type Options struct {
	// Workspace is the directory installer archives are unpacked into.
	Workspace string
	// OS is the OS class of the build agent.
	OS OSClass
	// Lister lists package directories (default: OSFileSystem).
	Lister Lister
	// Extractor unpacks installer archives (default: zip extractor).
	Extractor Extractor
	// Inspector checks launcher paths (default: OSFileSystem).
	Inspector PathInspector
	// Logger receives progress messages (default: no-op).
	Logger Logger
}

// Resolver dispatches resolution requests to the installer or the launcher resolver.
// It holds no state between calls.
type Resolver struct {
	os        OSClass
	installer *Installer
	launcher  *LauncherResolver
}

// New creates a Resolver, filling in default collaborators.
func New(opts Options) *Resolver {
	if opts.Lister == nil {
		opts.Lister = OSFileSystem{}
	}
	if opts.Inspector == nil {
		opts.Inspector = OSFileSystem{}
	}
	if opts.Extractor == nil {
		opts.Extractor = archive.NewExtractor()
	}
	if opts.Logger == nil {
		opts.Logger = NopLogger()
	}

	return &Resolver{
		os:        opts.OS,
		installer: NewInstaller(opts.Workspace, opts.Lister, opts.Extractor, opts.Logger),
		launcher:  NewLauncherResolver(opts.Inspector, opts.Logger),
	}
}

// Resolve runs a single mode.
func (r *Resolver) Resolve(mode Mode) Result {
	switch m := mode.(type) {
	case ArchiveMode:
		return r.installer.Resolve(m.PackageDir, m.Target, r.os)
	case LauncherMode:
		return r.launcher.Resolve(m.Path, r.os)
	default:
		return Result{Build: NoBuild, OS: r.os, Outcome: OutcomeNotFound}
	}
}

// ResolveChain runs modes in order and returns the first resolved result.
// If none resolves, the last result is returned. An empty chain reports
// OutcomeNotFound.
func (r *Resolver) ResolveChain(modes ...Mode) Result {
	res := Result{Build: NoBuild, OS: r.os, Outcome: OutcomeNotFound}
	for _, m := range modes {
		res = r.Resolve(m)
		if res.OK() {
			return res
		}
	}
	return res
}

// SelectModes builds the ordered modes for the configured inputs: archive mode
// when a package directory is set, then launcher mode when a launcher path is set.
func SelectModes(packageDir, launcherPath, target string) []Mode {
	var modes []Mode
	if packageDir != "" {
		modes = append(modes, ArchiveMode{PackageDir: packageDir, Target: target})
	}
	if launcherPath != "" {
		modes = append(modes, LauncherMode{Path: launcherPath})
	}
	return modes
}
