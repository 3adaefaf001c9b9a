package db

import (
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// errNonRetryable marks write failures that retrying can't fix,
// passed to repeater as a critical error to stop the backoff early
var errNonRetryable = errors.New("non-retryable")

// newRetrier makes a backoff retrier for sqlite writes, the dashboard
// reader can hold the database briefly and cause SQLITE_BUSY
func newRetrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
