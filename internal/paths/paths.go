package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"IdeaEnv/internal/constants"
	"IdeaEnv/internal/version"

	"github.com/adrg/xdg"
)

// ConfigHomeOverride allows overriding the config home for tests.
var ConfigHomeOverride string

// GetConfigFilePath returns the absolute path to the ideaenv.toml file.
// It places it in a subdirectory named after the application (e.g., ~/.config/ideaenv/ideaenv.toml).
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetConfigDir returns the absolute path to the ideaenv configuration directory.
func GetConfigDir() string {
	appName := strings.ToLower(version.ApplicationName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// Targets holds every path one run reads or writes.
type Targets struct {
	Folder        string
	EnvFile       string
	IdeaDir       string
	WorkspaceFile string
	BackupFile    string
	LockFile      string
}

// ForFolder resolves the targets below folder. An empty folder means the
// current directory. envFile overrides <folder>/.env; a relative envFile is
// taken relative to folder.
func ForFolder(folder, envFile string) Targets {
	if folder == "" {
		folder = "."
	}
	ideaDir := filepath.Join(folder, constants.IdeaDirName)

	switch {
	case envFile == "":
		envFile = filepath.Join(folder, constants.EnvFileName)
	case !filepath.IsAbs(envFile):
		envFile = filepath.Join(folder, envFile)
	}

	return Targets{
		Folder:        folder,
		EnvFile:       envFile,
		IdeaDir:       ideaDir,
		WorkspaceFile: filepath.Join(ideaDir, constants.WorkspaceFileName),
		BackupFile:    filepath.Join(ideaDir, constants.WorkspaceBackupFileName),
		LockFile:      filepath.Join(ideaDir, constants.WorkspaceLockFileName),
	}
}
