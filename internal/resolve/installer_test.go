package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInstaller_Resolve(t *testing.T) {
	ws := filepath.Join("ws", "job")
	pkgs := filepath.Join("shared", "a3")

	tests := []struct {
		name    string
		entries []Entry
		target  string
		os      OSClass
		want    Result
	}{
		{
			name: "windows_highest_build",
			entries: files(
				"a3_arm_win64_b100_release.zip",
				"a3_arm_win64_b277911_release.zip",
				"a3_arm_linux64_b999_release.zip",
			),
			target: "arm",
			os:     Windows,
			want: Result{
				ToolPath: filepath.Join(ws, "a3_arm_win64_b277911_release", "bin", "a3arm.exe"),
				Build:    277911,
				Target:   "arm",
				OS:       Windows,
				Mode:     KindArchive,
				Outcome:  OutcomeResolved,
				Archive:  filepath.Join(pkgs, "a3_arm_win64_b277911_release.zip"),
			},
		},
		{
			name:    "unix_layout",
			entries: files("a3_ppc_linux64_b12_release.zip"),
			target:  "ppc",
			os:      Unix,
			want: Result{
				ToolPath: filepath.Join(ws, "a3_ppc_linux64_b12_release", "bin", "a3ppc"),
				Build:    12,
				Target:   "ppc",
				OS:       Unix,
				Mode:     KindArchive,
				Outcome:  OutcomeResolved,
				Archive:  filepath.Join(pkgs, "a3_ppc_linux64_b12_release.zip"),
			},
		},
		{
			name:    "macos_app_bundle",
			entries: files("a3_tricore_macos64_b42_release.zip"),
			target:  "tricore",
			os:      MacOS,
			want: Result{
				ToolPath: filepath.Join(ws, "a3_tricore_macos64_b42_release.app", "Contents", "MacOS", "a3tricore"),
				Build:    42,
				Target:   "tricore",
				OS:       MacOS,
				Mode:     KindArchive,
				Outcome:  OutcomeResolved,
				Archive:  filepath.Join(pkgs, "a3_tricore_macos64_b42_release.zip"),
			},
		},
		{
			name:    "empty_directory",
			entries: nil,
			target:  "arm",
			os:      Unix,
			want: Result{
				Build:   NoBuild,
				Target:  "arm",
				OS:      Unix,
				Mode:    KindArchive,
				Outcome: OutcomeNotFound,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := &fakeExtractor{}
			inst := NewInstaller(ws, &fakeLister{entries: tt.entries}, extractor, nil)

			got := inst.Resolve(pkgs, tt.target, tt.os)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}

			if tt.want.OK() {
				if len(extractor.calls) != 1 {
					t.Fatalf("extract calls = %d, want 1", len(extractor.calls))
				}
				if extractor.calls[0] != (extractCall{archive: tt.want.Archive, dest: ws}) {
					t.Errorf("extract call = %+v", extractor.calls[0])
				}
			} else if len(extractor.calls) != 0 {
				t.Errorf("extract calls = %d, want 0", len(extractor.calls))
			}
		})
	}
}

func TestInstaller_Resolve_FailuresDegradeToNotFound(t *testing.T) {
	tests := []struct {
		name      string
		lister    Lister
		extractor Extractor
		target    string
	}{
		{
			name:      "listing_fails",
			lister:    &fakeLister{err: errors.New("permission denied")},
			extractor: &fakeExtractor{},
			target:    "arm",
		},
		{
			name:      "extraction_fails",
			lister:    &fakeLister{entries: files("a3_arm_linux64_b3_release.zip")},
			extractor: &fakeExtractor{err: errors.New("zip: not a valid zip file")},
			target:    "arm",
		},
		{
			name:      "no_lister",
			lister:    nil,
			extractor: &fakeExtractor{},
			target:    "arm",
		},
		{
			name:      "no_extractor",
			lister:    &fakeLister{entries: files("a3_arm_linux64_b3_release.zip")},
			extractor: nil,
			target:    "arm",
		},
		{
			name:      "empty_target",
			lister:    &fakeLister{entries: files("a3__linux64_b3_release.zip")},
			extractor: &fakeExtractor{},
			target:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			got := NewInstaller("ws", tt.lister, tt.extractor, logger).Resolve("pkgs", tt.target, Unix)

			if got.Outcome != OutcomeNotFound {
				t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomeNotFound)
			}
			if got.ToolPath != "" {
				t.Errorf("ToolPath = %q, want empty", got.ToolPath)
			}
			if got.Build != NoBuild {
				t.Errorf("Build = %d, want %d", got.Build, NoBuild)
			}
			if !errors.Is(got.Err(), ErrNotFound) {
				t.Errorf("Err() = %v, want ErrNotFound", got.Err())
			}
			if logger.count("warn")+logger.count("error") == 0 {
				t.Error("expected a warning or error to be logged")
			}
		})
	}
}

func TestInstaller_Resolve_NotFoundLogsHint(t *testing.T) {
	logger := &recordingLogger{}
	NewInstaller("ws", &fakeLister{}, &fakeExtractor{}, logger).Resolve("pkgs", "arm", Windows)

	found := false
	for _, l := range logger.lines {
		if l.level == "info" && strings.Contains(l.msg, "No a³ installer package for OS: win64 and Target: arm found") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing not-found hint in log: %+v", logger.lines)
	}
}

func TestInstaller_Resolve_Idempotent(t *testing.T) {
	lister := &fakeLister{entries: files("a3_arm_linux64_b1_release.zip", "a3_arm_linux64_b2_release.zip")}
	inst := NewInstaller("ws", lister, &fakeExtractor{}, nil)

	first := inst.Resolve("pkgs", "arm", Unix)
	second := inst.Resolve("pkgs", "arm", Unix)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Resolve() differs (-first +second):\n%s", diff)
	}
	if lister.calls != 2 {
		t.Errorf("List() calls = %d, want 2 (no caching)", lister.calls)
	}
}

func TestBinaryRelPath(t *testing.T) {
	tests := []struct {
		target string
		build  int64
		os     OSClass
		want   string
	}{
		{"arm", 277911, Windows, filepath.Join("a3_arm_win64_b277911_release", "bin", "a3arm.exe")},
		{"ppc", 5, Unix, filepath.Join("a3_ppc_linux64_b5_release", "bin", "a3ppc")},
		{"tricore", 42, MacOS, filepath.Join("a3_tricore_macos64_b42_release.app", "Contents", "MacOS", "a3tricore")},
	}

	for _, tt := range tests {
		t.Run(tt.os.String(), func(t *testing.T) {
			if got := BinaryRelPath(tt.target, tt.build, tt.os); got != tt.want {
				t.Errorf("BinaryRelPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOSFileSystem_ListMissingDir(t *testing.T) {
	_, err := OSFileSystem{}.List(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("List() error = %v, want ErrNotExist", err)
	}
}
