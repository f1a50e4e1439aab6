package workspace

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the workspace lock.
var ErrLocked = errors.New("workspace is locked by another process")

// Lock is an advisory lock on a workspace folder.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the lock file at path without waiting.
func AcquireLock(path string) (*Lock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &Lock{fl: fl}, nil
}

// Release removes the lock file and unlocks it.
func (l *Lock) Release() error {
	// Removed while still held so no other process can be inside the lock when it goes
	removeErr := os.Remove(l.fl.Path())
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("unlocking %s: %w", l.fl.Path(), err)
	}
	if removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", l.fl.Path(), removeErr)
	}
	return nil
}
