//go:build go1.18

package resolve

import (
	"strings"
	"testing"
)

func FuzzParseCandidate(f *testing.F) {
	f.Add("a3_arm_win64_b277911_release.zip", "arm")
	f.Add("a3_tricore_macos64_b42_release.zip", "tricore")
	f.Add("a3_arm_linux64_bx_release.zip", "arm")
	f.Add("a3_arm_linux64_b1", "arm")
	f.Add("a3_arm_x_arm_linux64_b1_release.zip", "arm_x")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, name, target string) {
		c, ok := ParseCandidate(name, target)
		if !ok {
			return
		}

		if !strings.HasPrefix(name, "a3_"+target+"_") {
			t.Errorf("ParseCandidate(%q, %q) accepted a name without the target prefix", name, target)
		}
		if c.Name != name || c.Target != target || c.Prefix != "a3" {
			t.Errorf("ParseCandidate(%q, %q) = %+v, inconsistent fields", name, target, c)
		}
		if int64(c.Build) < 0 {
			t.Errorf("ParseCandidate(%q, %q) build %d overflows int64", name, target, c.Build)
		}
		if strings.Count(name, "_") < minNameFields-1 {
			t.Errorf("ParseCandidate(%q, %q) accepted fewer than %d fields", name, target, minNameFields)
		}
	})
}
