package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/resolve"
	"gopkg.in/yaml.v3"
)

// report is the machine-readable form of a resolution result.
type report struct {
	ToolPath string `json:"tool_path" yaml:"tool_path"`
	Build    int64  `json:"build" yaml:"build"`
	Target   string `json:"target,omitempty" yaml:"target,omitempty"`
	OS       string `json:"os" yaml:"os"`
	Mode     string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	Archive  string `json:"archive,omitempty" yaml:"archive,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReport(res resolve.Result) report {
	r := report{
		ToolPath: res.ToolPath,
		Build:    res.Build,
		Target:   res.Target,
		OS:       res.OS.String(),
		Mode:     string(res.Mode),
		Outcome:  res.Outcome.String(),
		Archive:  res.Archive,
	}
	if err := res.Err(); err != nil {
		r.Error = err.Error()
	}
	return r
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) bool {
	switch format {
	case outputText, outputJSON, outputYAML:
		return true
	}
	return false
}

// writeReport prints res in the requested format. Text output is just the
// tool path so it can be captured by a shell; nothing is printed when absent.
func writeReport(w io.Writer, res resolve.Result, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(res)); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res)); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
	default:
		if res.ToolPath != "" {
			if _, err := fmt.Fprintln(w, res.ToolPath); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}
	return nil
}
