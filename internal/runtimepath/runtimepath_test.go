package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := fmt.Sprintf("/tmp/framewm-runtime-%d", os.Getuid())
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestSocketName(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{":0", "framewm-0.sock"},
		{":1.0", "framewm-1_0.sock"},
		{"host:2", "framewm-host2.sock"},
		{"/tmp/launch-x/org.xquartz:0", "framewm-_tmp_launch-x_org_xquartz0.sock"},
	}
	for _, tt := range tests {
		if got := SocketName(tt.display); got != tt.want {
			t.Errorf("SocketName(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestSocketNameFallsBackToEnvironment(t *testing.T) {
	t.Setenv("DISPLAY", ":3")
	if got := SocketName(""); got != "framewm-3.sock" {
		t.Fatalf("SocketName(\"\") = %q", got)
	}

	t.Setenv("DISPLAY", "")
	if got := SocketName(""); got != "framewm.sock" {
		t.Fatalf("SocketName(\"\") without DISPLAY = %q", got)
	}
}

func TestSocketPathJoinsRuntimeDir(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := SocketPath(":0")
	if err != nil {
		t.Fatalf("SocketPath() error: %v", err)
	}
	if want := filepath.Join(td, "framewm-0.sock"); got != want {
		t.Fatalf("SocketPath() = %q, want %q", got, want)
	}
}
