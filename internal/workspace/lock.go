// Package workspace serializes tool installation into a shared workspace.
//
// Resolution itself does not coordinate concurrent extractions. Callers that
// may run several jobs against one workspace take this lock around the
// resolve call.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// LockFileName is created in the workspace while a resolution runs.
	LockFileName = ".a3tool.lock"

	// StaleLockThreshold is the maximum age of a lock before it's considered stale.
	// Extracting a large installer can take a few minutes.
	StaleLockThreshold = 30 * time.Minute

	// DefaultPollInterval is how often Wait retries a held lock.
	DefaultPollInterval = 500 * time.Millisecond
)

var ErrLockExists = errors.New("workspace lock exists: another a³ installation may be in progress")

// Lock is an acquired workspace lock.
type Lock struct {
	path string
	file *os.File
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// AcquireLock takes the workspace lock in dir without waiting.
// A lock older than StaleLockThreshold is removed and retried once.
func AcquireLock(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace directory: %w", err)
	}

	lockPath := filepath.Join(dir, LockFileName)

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		if !os.IsExist(err) {
			return nil, fmt.Errorf("create lock file: %w", err)
		}
		if stale, _ := isLockStale(lockPath); !stale {
			return nil, ErrLockExists
		}
		_ = os.Remove(lockPath)
		file, err = os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
		if err != nil {
			return nil, ErrLockExists
		}
	}

	lockData := fmt.Sprintf("pid=%d\ntimestamp=%s\n", os.Getpid(), time.Now().UTC().Format(time.RFC3339))
	if _, err := file.WriteString(lockData); err != nil {
		file.Close()
		os.Remove(lockPath)
		return nil, fmt.Errorf("write lock data: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(lockPath)
		return nil, fmt.Errorf("sync lock file: %w", err)
	}

	return &Lock{path: lockPath, file: file}, nil
}

// Wait retries AcquireLock every interval until it succeeds, fails with an
// error other than ErrLockExists, or ctx is done.
func Wait(ctx context.Context, dir string, interval time.Duration) (*Lock, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		lock, err := AcquireLock(dir)
		if err == nil || !errors.Is(err, ErrLockExists) {
			return lock, err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for workspace lock: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Release releases the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if l.path != "" {
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove lock file: %w", err)
		}
		l.path = ""
	}

	return nil
}

// isLockStale checks if a lock file is older than the stale lock threshold.
func isLockStale(lockPath string) (bool, error) {
	info, err := os.Stat(lockPath)
	if err != nil {
		return false, err
	}

	return time.Since(info.ModTime()) > StaleLockThreshold, nil
}
