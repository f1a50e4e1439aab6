package constants

// Folder Names
const (
	IdeaDirName = ".idea"
)

// File Names
const (
	EnvFileName             = ".env"
	WorkspaceFileName       = "workspace.xml"
	WorkspaceBackupFileName = "workspace_backup.xml"
	WorkspaceLockFileName   = ".ideaenv.lock"
	AppConfigFileName       = "ideaenv.toml"
)

// Default variable names injected into every run configuration
const (
	GeventSupportKey        = "GEVENT_SUPPORT"
	PythonUnbufferedKey     = "PYTHONUNBUFFERED"
	DjangoSettingsModuleKey = "DJANGO_SETTINGS_MODULE"
)

// DefaultSettingsSuffix is appended to a settings name that has no dot in it.
const DefaultSettingsSuffix = ".settings"

// GoApplicationRunConfiguration is the run configuration type that is never patched.
const GoApplicationRunConfiguration = "GoApplicationRunConfiguration"
