package system

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"IdeaEnv/internal/logger"
)

// TakeOwnership hands path back to the invoking user when running under sudo,
// so files written by a root process stay editable by the IDE.
func TakeOwnership(ctx context.Context, path string) {
	if runtime.GOOS == "windows" || path == "" {
		return
	}
	if os.Geteuid() != 0 {
		return
	}

	uid, gid, ok := GetIDs()
	if !ok {
		return
	}
	logger.Info(ctx, "Taking ownership of '{{_File_}}%s{{|-|}}' for user '{{_Var_}}%d{{|-|}}'", path, uid)
	if err := os.Chown(path, uid, gid); err != nil {
		logger.Warn(ctx, "Could not change owner of '{{_File_}}%s{{|-|}}': %v", path, err)
	}
}

// GetIDs returns the user and group from SUDO_UID/SUDO_GID.
// ok is false unless both are set and numeric.
func GetIDs() (uid, gid int, ok bool) {
	u, errU := strconv.Atoi(os.Getenv("SUDO_UID"))
	g, errG := strconv.Atoi(os.Getenv("SUDO_GID"))
	if errU != nil || errG != nil {
		return 0, 0, false
	}
	return u, g, true
}
