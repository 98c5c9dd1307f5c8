// Package resolve locates the a³ analysis tool binary for a build agent.
//
// Two resolution modes exist and a caller picks one (or an ordered chain) up
// front:
//
//   - Archive mode scans a shared package directory for installer archives named
//     a3_<target>_<ostag>_b<build>_<suffix>.zip, picks the highest build for the
//     requested target and OS class, extracts it into the workspace and predicts
//     the path of the analyzer binary inside the extracted tree.
//   - Launcher mode turns a configured path to a pre-installed alauncher (either
//     its directory or any file next to it) into the canonical launcher binary
//     path for the OS class. It never extracts anything.
//
// # Outcomes
//
// Resolution never returns an error value from its entry points. Every call
// produces a Result whose Outcome states what happened:
//
//	res := resolve.New(resolve.Options{Workspace: ws, OS: resolve.Windows}).
//	    Resolve(resolve.ArchiveMode{PackageDir: pkgs, Target: "arm"})
//	if !res.OK() {
//	    // errors.Is(res.Err(), resolve.ErrNotFound) -> try launcher mode
//	}
//
// Listing and extraction failures in archive mode are logged and reported as
// OutcomeNotFound so that a caller can fall through to launcher mode.
//
// # Collaborators
//
// Filesystem access goes through the Lister, Extractor and PathInspector
// interfaces. OSFileSystem implements Lister and PathInspector on the local
// disk; the archive package provides a zip Extractor.
package resolve
