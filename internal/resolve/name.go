package resolve

import (
	"strconv"
	"strings"
)

const (
	toolPrefix    = "a3"
	nameDelimiter = "_"
	buildMarker   = "b"
	minNameFields = 5
)

// Candidate is the parsed form of an installer archive name:
// a3_<target>_<ostag>_b<build>_<suffix>
type Candidate struct {
	Name          string
	Prefix        string
	Target        string
	OSTag         string
	Build         uint64
	ReleaseSuffix string
}

// ParseCandidate parses name as an installer archive for target.
// It returns false for anything that does not follow the naming convention:
// another target, fewer than five fields, or a build field that is not "b"
// followed by a non-negative integer.
func ParseCandidate(name, target string) (Candidate, bool) {
	if target == "" || !strings.HasPrefix(name, toolPrefix+nameDelimiter+target+nameDelimiter) {
		return Candidate{}, false
	}

	fields := strings.Split(name, nameDelimiter)
	if len(fields) < minNameFields {
		return Candidate{}, false
	}

	// a target containing the delimiter shifts every later field
	if fields[1] != target {
		return Candidate{}, false
	}

	digits, ok := strings.CutPrefix(fields[3], buildMarker)
	if !ok || digits == "" {
		return Candidate{}, false
	}
	build, err := strconv.ParseUint(digits, 10, 63)
	if err != nil {
		return Candidate{}, false
	}

	return Candidate{
		Name:          name,
		Prefix:        fields[0],
		Target:        fields[1],
		OSTag:         fields[2],
		Build:         build,
		ReleaseSuffix: fields[4],
	}, true
}

// Matches reports whether the candidate was packaged for the given OS tag and suffix.
func (c Candidate) Matches(osTag, suffix string) bool {
	return c.OSTag == osTag && strings.HasSuffix(c.ReleaseSuffix, suffix)
}
