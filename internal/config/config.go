package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"regexp"
	"slices"

	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/paths"

	"github.com/adrg/xdg"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"
)

func init() {
	// Report validation errors with the TOML key names
	validation.ErrorTag = "toml"
}

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Defaults  DefaultsConfig  `toml:"defaults"`
	Workspace WorkspaceConfig `toml:"workspace"`
	Log       LogConfig       `toml:"log"`
}

// DefaultsConfig controls the generated default variables.
type DefaultsConfig struct {
	Settings       string `toml:"settings"`        // skips the prompt when set
	SettingsSuffix string `toml:"settings_suffix"` // appended to names without a dot
}

// WorkspaceConfig controls how workspace.xml is patched.
type WorkspaceConfig struct {
	EnvFile   string   `toml:"env_file"`   // relative to the target folder
	SkipTypes []string `toml:"skip_types"` // extra run configuration types to leave alone
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

var (
	suffixRegex   = regexp.MustCompile(`^\.[A-Za-z0-9_.]+$`)
	settingsRegex = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
)

// Validate implements validation.Validatable.
func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Defaults),
		validation.Field(&c.Workspace),
		validation.Field(&c.Log),
	)
}

// Validate implements validation.Validatable.
func (d DefaultsConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Settings, validation.Match(settingsRegex)),
		validation.Field(&d.SettingsSuffix, validation.Required, validation.Match(suffixRegex)),
	)
}

// Validate implements validation.Validatable.
func (w WorkspaceConfig) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.SkipTypes, validation.Each(validation.Required)),
	)
}

// Validate implements validation.Validatable.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("trace", "debug", "info", "notice", "warn", "warning", "error")),
	)
}

// AllSkipTypes returns the configured skip types plus the built-in one.
func (w WorkspaceConfig) AllSkipTypes() []string {
	types := []string{constants.GoApplicationRunConfiguration}
	for _, t := range w.SkipTypes {
		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	return types
}

// Default returns the configuration used when no file exists.
func Default() AppConfig {
	return AppConfig{
		Defaults: DefaultsConfig{
			SettingsSuffix: constants.DefaultSettingsSuffix,
		},
		Workspace: WorkspaceConfig{
			EnvFile: constants.EnvFileName,
		},
		Log: LogConfig{
			Level: "notice",
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// Anything else is looked up in the process environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

// Load reads the TOML file at path over the defaults.
// A missing file is not an error.
func Load(path string) (AppConfig, error) {
	conf := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return Default(), fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &conf); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	conf.Log.File = ExpandVariables(conf.Log.File)
	return conf, nil
}

// LoadAppConfig reads the configuration file from the user config directory.
func LoadAppConfig() (AppConfig, error) {
	return Load(paths.GetConfigFilePath())
}

// Marshal renders conf as TOML.
func Marshal(conf AppConfig) (string, error) {
	data, err := toml.Marshal(conf)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
