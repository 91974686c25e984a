// internal/domain/common/remote_error.go
package common

import "fmt"

// RemoteErrorCode categorizes failures reported by the remote document store.
// The categories mirror the store's own error taxonomy so user-facing
// messages can carry per-category remediation hints.
type RemoteErrorCode string

const (
	RemotePermissionDenied RemoteErrorCode = "permission-denied"
	RemoteDisconnected     RemoteErrorCode = "disconnected"
	RemoteNetworkError     RemoteErrorCode = "network-error"
	RemoteUnavailable      RemoteErrorCode = "unavailable"
	RemoteOther            RemoteErrorCode = "other"
)

// RemoteError wraps a store-level failure with its category.
type RemoteError struct {
	Code RemoteErrorCode
	Err  error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote error (%s)", e.Code)
	}
	return fmt.Sprintf("remote error (%s): %v", e.Code, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// RemoteCode extracts the category from err, walking the wrap chain.
// Non-remote errors report RemoteOther.
func RemoteCode(err error) RemoteErrorCode {
	for err != nil {
		if re, ok := err.(*RemoteError); ok {
			return re.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return RemoteOther
}
