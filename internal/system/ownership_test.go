package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGetIDs(t *testing.T) {
	tests := []struct {
		name   string
		uid    string
		gid    string
		wantOK bool
	}{
		{"Both", "1000", "1000", true},
		{"MissingGroup", "1000", "", false},
		{"NotNumeric", "bob", "1000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SUDO_UID", tt.uid)
			t.Setenv("SUDO_GID", tt.gid)
			uid, gid, ok := GetIDs()
			if ok != tt.wantOK {
				t.Fatalf("GetIDs() ok = %v; want %v", ok, tt.wantOK)
			}
			if ok && (uid != 1000 || gid != 1000) {
				t.Errorf("GetIDs() = %d, %d", uid, gid)
			}
		})
	}
}

func TestTakeOwnershipWithoutSudoIsNoop(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SUDO_UID", "1")
	t.Setenv("SUDO_GID", "1")

	TakeOwnership(context.Background(), path)

	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
