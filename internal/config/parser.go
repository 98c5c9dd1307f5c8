package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser evaluates Lua configs with platform information injected.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new config parser with the given platform detector.
// A nil detector leaves the platform global undefined.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseFile reads and parses the config file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read config: %s is a directory", path)
	}
	if info.Size() > MaxConfigSize {
		return nil, fmt.Errorf("read config: %s is too large (%d bytes, max %d)", path, info.Size(), MaxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua config from a string. The result is not checked
// for a complete resolution request; call Validate once overrides are applied.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("config evaluation cancelled: %w", ctx.Err())
		}
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig reads the global a3 table from L and validates it.
func extractConfig(L *lua.LState) (*Config, error) {
	value := L.GetGlobal(globalTable)
	table, ok := value.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Message: "missing or invalid '" + globalTable + "' table",
			Detail:  fmt.Sprintf("expected table, got %s", value.Type()),
		}
	}

	fields := map[string]string{}
	var problems []string
	table.ForEach(func(key, val lua.LValue) {
		name, isString := key.(lua.LString)
		if !isString {
			problems = append(problems, fmt.Sprintf("non-string key %s", key.String()))
			return
		}
		if !knownFields[string(name)] {
			problems = append(problems, fmt.Sprintf("unknown field %q", string(name)))
			return
		}
		s, isString := val.(lua.LString)
		if !isString {
			problems = append(problems, fmt.Sprintf("field %q must be a string, got %s", string(name), val.Type()))
			return
		}
		fields[string(name)] = strings.TrimSpace(string(s))
	})

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, &ParseError{
			Message: "invalid '" + globalTable + "' table",
			Detail:  strings.Join(problems, "; "),
		}
	}

	cfg := &Config{
		Workspace:  fields["workspace"],
		Target:     fields["target"],
		PackageDir: fields["package_dir"],
		Launcher:   fields["launcher"],
		OS:         fields["os"],
	}

	// mode completeness is checked by the caller after flags are merged in
	if _, _, err := cfg.OSClass(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  (&ValidationError{Field: "os", Message: err.Error()}).Error(),
		}
	}

	return cfg, nil
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
