package archive

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/testutil"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]testutil.ZipEntry
	}{
		{
			name: "simple_extraction",
			files: map[string]testutil.ZipEntry{
				"file1.txt": {Body: "content1"},
				"file2.txt": {Body: "content2"},
			},
		},
		{
			name: "nested_directories_without_dir_entries",
			files: map[string]testutil.ZipEntry{
				"dir1/file1.txt":      {Body: "content1"},
				"dir1/dir2/file2.txt": {Body: "content2"},
			},
		},
		{
			name: "installer_layout",
			files: map[string]testutil.ZipEntry{
				"a3_arm_linux64_b7_release/":          {},
				"a3_arm_linux64_b7_release/bin/a3arm": {Body: "#!/bin/sh\necho hello", Mode: 0o755},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "test.zip"), tt.files)

			destDir := t.TempDir()
			if err := NewExtractor().Extract(archivePath, destDir); err != nil {
				t.Fatalf("extraction failed: %v", err)
			}

			for name, entry := range tt.files {
				extractedPath := filepath.Join(destDir, filepath.FromSlash(name))
				if !fileExists(extractedPath) {
					t.Errorf("entry %s was not extracted", name)
					continue
				}
				if name[len(name)-1] == '/' {
					continue
				}
				content, err := os.ReadFile(extractedPath)
				if err != nil {
					t.Fatalf("failed to read %s: %v", name, err)
				}
				if string(content) != entry.Body {
					t.Errorf("content of %s = %q, want %q", name, content, entry.Body)
				}
			}
		})
	}
}

func TestExtract_PreservesExecutableBit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "exec.zip"), map[string]testutil.ZipEntry{
		"bin/a3ppc": {Body: "binary", Mode: 0o755},
	})

	destDir := t.TempDir()
	if err := NewExtractor().Extract(archivePath, destDir); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(destDir, "bin", "a3ppc"))
	if err != nil {
		t.Fatalf("stat extracted binary: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("extracted binary mode = %v, want executable", info.Mode().Perm())
	}
}

func TestExtract_OverwritesExistingFiles(t *testing.T) {
	destDir := t.TempDir()
	existing := filepath.Join(destDir, "bin", "tool")
	if err := os.MkdirAll(filepath.Dir(existing), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "new.zip"), map[string]testutil.ZipEntry{
		"bin/tool": {Body: "new"},
	})
	if err := NewExtractor().Extract(archivePath, destDir); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	content, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "new" {
		t.Errorf("content = %q, want %q", content, "new")
	}
}

func TestExtract_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "link.zip"), map[string]testutil.ZipEntry{
		"app/Contents/MacOS/a3arm":  {Body: "binary", Mode: 0o755},
		"app/Contents/MacOS/latest": {Body: "a3arm", Symlink: true},
	})

	destDir := t.TempDir()
	if err := NewExtractor().Extract(archivePath, destDir); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	link := filepath.Join(destDir, "app", "Contents", "MacOS", "latest")
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink() error = %v", err)
	}
	if got != "a3arm" {
		t.Errorf("link target = %q, want %q", got, "a3arm")
	}
}

func TestExtract_RejectsPathTraversal(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]testutil.ZipEntry
	}{
		{
			name:  "dotdot_entry",
			files: map[string]testutil.ZipEntry{"../evil.txt": {Body: "x"}},
		},
		{
			name:  "nested_dotdot_entry",
			files: map[string]testutil.ZipEntry{"a/../../evil.txt": {Body: "x"}},
		},
		{
			name:  "escaping_symlink",
			files: map[string]testutil.ZipEntry{"link": {Body: "../../etc/passwd", Symlink: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "evil.zip"), tt.files)

			destDir := filepath.Join(t.TempDir(), "dest")
			if err := NewExtractor().Extract(archivePath, destDir); err == nil {
				t.Error("expected error for escaping entry, got nil")
			}
			if fileExists(filepath.Join(filepath.Dir(destDir), "evil.txt")) {
				t.Error("file escaped the destination directory")
			}
		})
	}
}

func TestExtract_InvalidArchive(t *testing.T) {
	tmp := t.TempDir()

	notZip := filepath.Join(tmp, "a3_arm_linux64_b1_release.zip")
	if err := os.WriteFile(notZip, []byte("not a zip file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(tmp, "missing.zip")},
		{name: "corrupt", path: notZip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewExtractor().Extract(tt.path, t.TempDir()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestExtract_RejectsSymlinkChainEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	// each link stays inside dest on its own; together R/u points at dest's parent
	archivePath := testutil.WriteZip(t, filepath.Join(t.TempDir(), "chain.zip"), map[string]testutil.ZipEntry{
		"Ay/":       {},
		"R/t":       {Body: "../Ay", Symlink: true},
		"R/u":       {Body: "t/../..", Symlink: true},
		"R/u/pwned": {Body: "x"},
	})

	base := t.TempDir()
	destDir := filepath.Join(base, "ws")
	if err := NewExtractor().Extract(archivePath, destDir); err == nil {
		t.Error("expected error for entry written through escaping symlink chain, got nil")
	}
	if fileExists(filepath.Join(base, "pwned")) {
		t.Error("file written outside the destination directory")
	}
}
