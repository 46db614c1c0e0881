package buildinfo

import (
	"strings"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestGet(t *testing.T) {
	stamp(t, "v0.3.0", "abc1234", "2026-01-02T03:04:05Z")

	got := Get()
	want := Info{Version: "v0.3.0", Commit: "abc1234", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestString(t *testing.T) {
	stamp(t, "v0.3.0", "abc1234", "2026-01-02T03:04:05Z")

	s := String()
	for _, want := range []string{"version: v0.3.0", "commit: abc1234", "built: 2026-01-02T03:04:05Z"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestUserAgent(t *testing.T) {
	stamp(t, "v1.0.0", "none", "unknown")
	if got := UserAgent(); got != "hexalith/v1.0.0" {
		t.Errorf("UserAgent() = %q, want %q", got, "hexalith/v1.0.0")
	}
}

func TestTemplate(t *testing.T) {
	stamp(t, "dev", "none", "unknown")
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version dev\n") {
		t.Errorf("Template() = %q, want cobra name placeholder and version", tmpl)
	}
}
