package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromSettings(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"},
	}
	dirty := append([]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}}, vcs...)

	tests := []struct {
		name        string
		version     string
		commit      string
		settings    []debug.BuildSetting
		wantVersion string
		wantCommit  string
	}{
		{"from vcs", "", "", vcs, "dev-20260304", "0123456"},
		{"dirty tree", "", "", dirty, "dev-20260304", "0123456-dirty"},
		{"ldflags win", "v1.2.3", "abc", vcs, "v1.2.3", "abc"},
		{"short revision", "", "", []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}, "", "abc"},
		{"no vcs", "", "", nil, "", ""},
		{"bad time", "", "", []debug.BuildSetting{{Key: "vcs.time", Value: "yesterday"}}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := fromSettings(tt.version, tt.commit, tt.settings)
			if v != tt.wantVersion || c != tt.wantCommit {
				t.Errorf("fromSettings() = (%q, %q), want (%q, %q)", v, c, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("init left Version or Commit empty")
	}
	if got := Full(); !strings.Contains(got, Version) || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Full() = %q", got)
	}
}
