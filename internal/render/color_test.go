package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if !ColorEnabled(ColorAlways, f) {
		t.Error("always should enable color")
	}
	if ColorEnabled(ColorNever, f) {
		t.Error("never should disable color")
	}
	if ColorEnabled(ColorAuto, f) {
		t.Error("auto should disable color for a regular file")
	}
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(ColorAuto, os.Stdout) {
		t.Error("auto should respect NO_COLOR")
	}
	if !ColorEnabled(ColorAlways, os.Stdout) {
		t.Error("always should ignore NO_COLOR")
	}
}
