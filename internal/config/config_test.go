package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/paths"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ideaenv.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.Defaults.SettingsSuffix != constants.DefaultSettingsSuffix {
		t.Errorf("SettingsSuffix = %q", conf.Defaults.SettingsSuffix)
	}
	if conf.Workspace.EnvFile != ".env" {
		t.Errorf("EnvFile = %q", conf.Workspace.EnvFile)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("IDEAENV_LOGS", "/tmp/logs")
	path := writeConfig(t, `
[defaults]
settings = "shop"

[workspace]
skip_types = ["DockerRunConfiguration", "GoApplicationRunConfiguration"]

[log]
level = "debug"
file = "${IDEAENV_LOGS}/ideaenv.log"
`)

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if conf.Defaults.Settings != "shop" {
		t.Errorf("Settings = %q; want shop", conf.Defaults.Settings)
	}
	// Keys absent from the file keep their defaults
	if conf.Defaults.SettingsSuffix != ".settings" {
		t.Errorf("SettingsSuffix = %q; want .settings", conf.Defaults.SettingsSuffix)
	}
	if conf.Log.Level != "debug" || conf.Log.File != "/tmp/logs/ideaenv.log" {
		t.Errorf("Log = %+v", conf.Log)
	}

	types := conf.Workspace.AllSkipTypes()
	if len(types) != 2 || types[0] != constants.GoApplicationRunConfiguration || types[1] != "DockerRunConfiguration" {
		t.Errorf("AllSkipTypes() = %v", types)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Syntax", "[defaults\n", "parsing config"},
		{"Suffix", "[defaults]\nsettings_suffix = \"settings\"\n", "settings_suffix"},
		{"EmptySuffix", "[defaults]\nsettings_suffix = \"\"\n", "settings_suffix"},
		{"Level", "[log]\nlevel = \"loud\"\n", "level"},
		{"SkipType", "[workspace]\nskip_types = [\"\"]\n", "skip_types"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v; want it to mention %q", err, tt.wantErr)
			}
			if conf.Defaults.SettingsSuffix != ".settings" {
				t.Errorf("invalid config should fall back to defaults, got %+v", conf)
			}
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	paths.ConfigHomeOverride = dir
	defer func() { paths.ConfigHomeOverride = "" }()

	if err := os.MkdirAll(filepath.Join(dir, "ideaenv"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.GetConfigFilePath(), []byte("[defaults]\nsettings = \"blog.dev\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error = %v", err)
	}
	if conf.Defaults.Settings != "blog.dev" {
		t.Errorf("Settings = %q; want blog.dev", conf.Defaults.Settings)
	}
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "settings_suffix = '.settings'") && !strings.Contains(out, `settings_suffix = ".settings"`) {
		t.Errorf("Marshal() = %q", out)
	}
}
