// Package testutil provides fixtures for tests that need installer archives on disk.
package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// ZipEntry describes one file inside a test archive.
type ZipEntry struct {
	Body    string
	Mode    os.FileMode
	Symlink bool
}

// WriteZip creates a zip archive at path. Names ending in "/" become directories.
// Entries are written in sorted name order so archives are reproducible.
func WriteZip(t *testing.T, path string, entries map[string]ZipEntry) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create archive dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer func() { _ = f.Close() }()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	w := zip.NewWriter(f)
	for _, name := range names {
		entry := entries[name]
		header := &zip.FileHeader{Name: name, Method: zip.Deflate}

		mode := entry.Mode
		switch {
		case name[len(name)-1] == '/':
			mode = os.ModeDir | 0o755
		case entry.Symlink:
			mode = os.ModeSymlink | 0o777
		case mode == 0:
			mode = 0o644
		}
		header.SetMode(mode)

		fw, err := w.CreateHeader(header)
		if err != nil {
			t.Fatalf("failed to write header for %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(entry.Body)); err != nil {
			t.Fatalf("failed to write content for %s: %v", name, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize archive: %v", err)
	}
	return path
}

// InstallerName builds an archive name following a3_<target>_<ostag>_b<build>_release.zip.
func InstallerName(target, osTag string, build int64) string {
	return fmt.Sprintf("a3_%s_%s_b%d_release.zip", target, osTag, build)
}

// WriteInstaller writes an installer archive into dir with the layout the
// packaging tool produces and returns the archive path.
func WriteInstaller(t *testing.T, dir, target, osTag string, build int64) string {
	t.Helper()

	root := fmt.Sprintf("a3_%s_%s_b%d_release", target, osTag, build)
	bin := "a3" + target
	var binPath string
	switch osTag {
	case "win64":
		binPath = root + "/bin/" + bin + ".exe"
	case "macos64":
		root += ".app"
		binPath = root + "/Contents/MacOS/" + bin
	default:
		binPath = root + "/bin/" + bin
	}

	entries := map[string]ZipEntry{
		root + "/":           {},
		binPath:              {Body: "#!/bin/sh\necho " + bin, Mode: 0o755},
		root + "/README.txt": {Body: "a³ " + target},
	}
	return WriteZip(t, filepath.Join(dir, InstallerName(target, osTag, build)), entries)
}

// Touch creates empty files (or directories for names ending in "/") under dir.
func Touch(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		p := filepath.Join(dir, name)
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(p, 0o750); err != nil {
				t.Fatalf("failed to create directory %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("failed to create parent of %s: %v", p, err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatalf("failed to create file %s: %v", p, err)
		}
	}
}
