package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit := Version, GitCommit
	return func() {
		Version = origVersion
		GitCommit = origCommit
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"

	info := Get()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
	if got := info.String(); got != "1.2.0 (abc1234)" {
		t.Errorf("String() = %q", got)
	}
}

func TestStringWithoutCommit(t *testing.T) {
	defer saveAndRestore()()
	Version = "2.0.0-dirty"
	GitCommit = ""

	info := Get()
	if info.IsRelease {
		t.Error("dirty build should not be a release")
	}
	if !strings.HasPrefix(info.String(), "2.0.0") {
		t.Errorf("String() = %q", info.String())
	}
}
