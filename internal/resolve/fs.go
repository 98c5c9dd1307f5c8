package resolve

import (
	"fmt"
	"os"
)

// Entry is a directory listing entry. fs.DirEntry satisfies it.
type Entry interface {
	Name() string
	IsDir() bool
}

// Lister lists the immediate children of a directory.
type Lister interface {
	List(dir string) ([]Entry, error)
}

// Extractor unpacks an archive into a destination root.
type Extractor interface {
	Extract(archivePath, destDir string) error
}

// PathInspector answers whether a path is an existing directory.
type PathInspector interface {
	IsDir(path string) bool
}

// OSFileSystem implements Lister and PathInspector on the local filesystem.
type OSFileSystem struct{}

// List returns the entries of dir in the order os.ReadDir reports them.
func (OSFileSystem) List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list package directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, e)
	}
	return entries, nil
}

// IsDir reports whether path exists and is a directory. Symlinks are followed.
func (OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
