// internal/adapters/out/rtdb/errors.go
package rtdb

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	common "flyadmin/internal/domain/common"
)

var httpStatusRe = regexp.MustCompile(`http error status: (\d{3})`)

// wrapRemote attaches a store error category so upper layers can map the
// failure to a per-category user message.
func wrapRemote(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*common.RemoteError); ok {
		return err
	}
	return &common.RemoteError{Code: categorize(err), Err: err}
}

func categorize(err error) common.RemoteErrorCode {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return common.RemoteDisconnected
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return common.RemoteNetworkError
	}

	// The Admin SDK surfaces REST failures as "http error status: NNN".
	msg := err.Error()
	if m := httpStatusRe.FindStringSubmatch(msg); m != nil {
		code, _ := strconv.Atoi(m[1])
		switch {
		case code == 401 || code == 403:
			return common.RemotePermissionDenied
		case code == 503:
			return common.RemoteUnavailable
		case code == 404:
			return common.RemoteUnavailable
		}
		return common.RemoteOther
	}
	if strings.Contains(strings.ToLower(msg), "permission") {
		return common.RemotePermissionDenied
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return common.RemoteNetworkError
	}
	return common.RemoteOther
}
