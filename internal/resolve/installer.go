package resolve

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Installer resolves the tool from a directory of installer archives.
type Installer struct {
	workspace string
	lister    Lister
	extractor Extractor
	logger    Logger
}

// NewInstaller creates an archive-mode resolver that unpacks into workspace.
func NewInstaller(workspace string, lister Lister, extractor Extractor, logger Logger) *Installer {
	if logger == nil {
		logger = NopLogger()
	}
	return &Installer{
		workspace: workspace,
		lister:    lister,
		extractor: extractor,
		logger:    logger,
	}
}

// Resolve selects the best archive for target in packageDir, extracts it into
// the workspace and returns the predicted analyzer binary path.
//
// Listing and extraction failures are logged and yield OutcomeNotFound with
// Build set to NoBuild.
func (i *Installer) Resolve(packageDir, target string, osClass OSClass) Result {
	res := Result{
		Build:   NoBuild,
		Target:  target,
		OS:      osClass,
		Mode:    KindArchive,
		Outcome: OutcomeNotFound,
	}

	if target == "" {
		i.logger.Warn("no analysis target given, skipping installer package scan", "package_dir", packageDir)
		return res
	}

	i.logger.Info("scanning for a³ installation packages", "target", target, "package_dir", packageDir)

	if i.lister == nil {
		i.logger.Error("no directory lister configured", "package_dir", packageDir)
		return res
	}
	entries, err := i.lister.List(packageDir)
	if err != nil {
		i.logger.Warn("scanning installation packages failed", "package_dir", packageDir, "error", err)
		return res
	}

	selected, build := SelectBest(entries, target, osClass)
	if selected == nil {
		i.logger.Info(fmt.Sprintf("No a³ installer package for OS: %s and Target: %s found! Try to locate installed \"alauncher[.exe]\".",
			osClass.OSTag(), target))
		return res
	}

	archivePath := filepath.Join(packageDir, selected.Name())
	i.logger.Info("installer package selected, unpacking to workspace",
		"package", selected.Name(), "build", build, "workspace", i.workspace)

	if i.extractor == nil {
		i.logger.Error("no archive extractor configured", "package", archivePath)
		return res
	}
	if err := i.extractor.Extract(archivePath, i.workspace); err != nil {
		i.logger.Error("unpacking installer package failed", "package", archivePath, "error", err)
		return res
	}

	res.ToolPath = filepath.Join(i.workspace, BinaryRelPath(target, build, osClass))
	res.Build = build
	res.Archive = archivePath
	res.Outcome = OutcomeResolved

	i.logger.Info("setting tool path to: "+res.ToolPath, "build", build)
	return res
}

// ExtractRootName is the top-level directory an installer archive unpacks to.
// macOS archives contain an application bundle.
func ExtractRootName(target string, build int64, osClass OSClass) string {
	name := toolPrefix + nameDelimiter + target + nameDelimiter + osClass.OSTag() +
		nameDelimiter + buildMarker + strconv.FormatInt(build, 10) + nameDelimiter + "release"
	if osClass == MacOS {
		name += ".app"
	}
	return name
}

// BinaryRelPath is the analyzer binary path relative to the extraction root's parent.
//
//	unix:    a3_<t>_linux64_b<n>_release/bin/a3<t>
//	windows: a3_<t>_win64_b<n>_release/bin/a3<t>.exe
//	macos:   a3_<t>_macos64_b<n>_release.app/Contents/MacOS/a3<t>
func BinaryRelPath(target string, build int64, osClass OSClass) string {
	bin := toolPrefix + target + osClass.ExeSuffix()
	root := ExtractRootName(target, build, osClass)
	if osClass == MacOS {
		return filepath.Join(root, "Contents", "MacOS", bin)
	}
	return filepath.Join(root, "bin", bin)
}
