// Package archive unpacks a³ installer archives into a workspace.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor unpacks zip archives.
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract unpacks the zip archive at archivePath into destDir.
// Existing files are overwritten; nothing else in destDir is touched.
//
// All writes go through an os.Root opened on destDir, so an entry can never
// land outside it, not even through symlinks created earlier in the archive.
func (e *Extractor) Extract(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return fmt.Errorf("resolve dest dir: %w", err)
	}
	if err := os.MkdirAll(absDest, 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	root, err := os.OpenRoot(absDest)
	if err != nil {
		return fmt.Errorf("open dest dir: %w", err)
	}
	defer root.Close()

	for _, file := range reader.File {
		name, err := entryPath(absDest, file.Name)
		if err != nil {
			return err
		}
		if name == "." {
			continue
		}

		mode := file.Mode()
		switch {
		case mode.IsDir():
			if err := root.MkdirAll(name, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", file.Name, err)
			}

		case mode&os.ModeSymlink != 0:
			if err := extractSymlink(root, file, absDest, name); err != nil {
				return err
			}

		case mode.IsRegular():
			if err := mkdirParent(root, name); err != nil {
				return fmt.Errorf("create parent dir for %s: %w", file.Name, err)
			}
			if err := extractFile(root, file, name); err != nil {
				return fmt.Errorf("write file %s: %w", file.Name, err)
			}

		default:
			// devices, pipes
			continue
		}
	}

	return nil
}

// entryPath returns an archive entry name relative to destDir and rejects
// names that escape it lexically.
func entryPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("illegal file path: %s", name)
	}
	return rel, nil
}

func mkdirParent(root *os.Root, name string) error {
	dir := filepath.Dir(name)
	if dir == "." {
		return nil
	}
	return root.MkdirAll(dir, 0o755)
}

func extractFile(root *os.Root, file *zip.File, name string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	perm := file.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}

	out, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies perm to new files
	return root.Chmod(name, perm)
}

// extractSymlink recreates a symlink entry. The link target is the entry body
// and must stay inside destDir.
func extractSymlink(root *os.Root, file *zip.File, destDir, name string) error {
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("open symlink %s: %w", file.Name, err)
	}
	linkBytes, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("read symlink %s: %w", file.Name, err)
	}

	link := string(linkBytes)
	resolved := link
	if !filepath.IsAbs(link) {
		resolved = filepath.Join(destDir, filepath.Dir(name), link)
	}
	if _, err := entryPath(destDir, relSlash(destDir, resolved)); err != nil {
		return fmt.Errorf("illegal symlink target %s -> %s", file.Name, link)
	}

	if err := mkdirParent(root, name); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", file.Name, err)
	}
	if err := root.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace symlink %s: %w", file.Name, err)
	}
	if err := root.Symlink(link, name); err != nil {
		return fmt.Errorf("create symlink %s: %w", file.Name, err)
	}
	return nil
}

func relSlash(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return ".."
	}
	return filepath.ToSlash(rel)
}
