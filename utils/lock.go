package utils

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// AcquireLock guards against a second bot instance polling the same token.
// It creates path exclusively and writes the current pid into it.
func AcquireLock(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("lock file %s already exists, another instance is running", path)
		}
		return fmt.Errorf("create lock file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("write lock file %s: %w", path, err)
	}
	return nil
}

// ReleaseLock removes the lock file. Best effort on shutdown.
func ReleaseLock(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		GetLogger().Warn("failed to remove lock file", zap.Error(err))
	}
}
