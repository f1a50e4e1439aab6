package dotenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	env, warnings, err := Load(path)
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("Load() error = %v; want ErrMissingFile", err)
	}
	if env == nil || env.Len() != 0 || warnings != nil {
		t.Errorf("Load() = %v, %v; want empty mapping", env, warnings)
	}
}

func TestReadFileMissingIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	env, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if env.Len() != 0 {
		t.Errorf("ReadFile() = %v; want empty", env.ToMap())
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# settings\nexport DEBUG=1\nNAME='app'\nnot a line\nURL=http://$NAME\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := ReadFile(context.Background(), path, WithEnv(MapEnv{}))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	want := map[string]string{"DEBUG": "1", "NAME": "app", "URL": "http://app"}
	got := env.ToMap()
	if len(got) != len(want) {
		t.Fatalf("ReadFile() = %v; want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q; want %q", k, got[k], v)
		}
	}
}

func TestLoadUnreadable(t *testing.T) {
	// A directory cannot be read as a file
	_, _, err := Load(t.TempDir())
	if err == nil || errors.Is(err, ErrMissingFile) {
		t.Errorf("Load(dir) error = %v; want a read error", err)
	}
}
