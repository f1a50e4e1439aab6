// Package defaults builds the entries every run configuration receives
// unless the dotenv file already defines them.
package defaults

import (
	"strings"

	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/envmap"
)

// SettingsModule returns name with suffix appended when name has no dot.
// An empty suffix falls back to constants.DefaultSettingsSuffix.
//
// Examples:
//
//	myproject          -> myproject.settings
//	myproject.local    -> myproject.local
func SettingsModule(name, suffix string) string {
	if suffix == "" {
		suffix = constants.DefaultSettingsSuffix
	}
	if strings.Contains(name, ".") {
		return name
	}
	return name + suffix
}

// Generate returns the default mapping for the given settings name:
// gevent debugger support off, output buffering off, and the settings module.
func Generate(name, suffix string) *envmap.Map {
	return envmap.FromPairs(
		constants.GeventSupportKey, "0",
		constants.PythonUnbufferedKey, "1",
		constants.DjangoSettingsModuleKey, SettingsModule(name, suffix),
	)
}
