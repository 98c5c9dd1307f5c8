package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/resolve"
)

// Config describes one tool resolution request.
type Config struct {
	// Workspace receives extracted installer archives.
	Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	// Target is the analysis target, e.g. "arm" or "tricore".
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// PackageDir holds installer archives (archive mode).
	PackageDir string `json:"package_dir,omitempty" yaml:"package_dir,omitempty"`
	// Launcher points at a pre-installed alauncher or its directory (launcher mode).
	Launcher string `json:"launcher,omitempty" yaml:"launcher,omitempty"`
	// OS overrides the detected OS class ("unix", "windows", "macos").
	OS string `json:"os,omitempty" yaml:"os,omitempty"`
}

// Validate checks that the config describes at least one usable mode.
func (c *Config) Validate() error {
	if c.PackageDir == "" && c.Launcher == "" {
		return &ValidationError{Message: "either package_dir or launcher must be set"}
	}

	if c.PackageDir != "" && strings.TrimSpace(c.Target) == "" {
		return &ValidationError{Field: "target", Message: "target is required when package_dir is set"}
	}

	if c.OS != "" {
		if _, err := resolve.ParseOSClass(c.OS); err != nil {
			return &ValidationError{Field: "os", Message: err.Error()}
		}
	}

	return nil
}

// OSClass returns the configured OS class, or false when none is configured.
func (c *Config) OSClass() (resolve.OSClass, bool, error) {
	if c.OS == "" {
		return resolve.Unix, false, nil
	}
	class, err := resolve.ParseOSClass(c.OS)
	if err != nil {
		return resolve.Unix, false, err
	}
	return class, true, nil
}

// Merge returns a copy of c with every non-empty field of override applied.
func (c Config) Merge(override Config) Config {
	if override.Workspace != "" {
		c.Workspace = override.Workspace
	}
	if override.Target != "" {
		c.Target = override.Target
	}
	if override.PackageDir != "" {
		c.PackageDir = override.PackageDir
	}
	if override.Launcher != "" {
		c.Launcher = override.Launcher
	}
	if override.OS != "" {
		c.OS = override.OS
	}
	return c
}

// ExpandPaths replaces a leading "~" in path fields with the user's home directory.
func (c Config) ExpandPaths() (Config, error) {
	var err error
	for _, p := range []*string{&c.Workspace, &c.PackageDir, &c.Launcher} {
		if *p, err = expandHome(*p); err != nil {
			return c, err
		}
	}
	return c, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}
