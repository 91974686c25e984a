// internal/application/usecase/admin_gate.go
package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	admindom "flyadmin/internal/domain/admin"
	common "flyadmin/internal/domain/common"
)

// gateTimeout bounds the membership read. The client treats a slow backend
// the same as an unreachable one.
const gateTimeout = 10 * time.Second

// AdminGate admits or denies an authenticated identity based on one point
// read of its membership record, raced against a fixed timer. Exactly one
// Decision is produced per call; a read that completes after the timer fired
// is discarded, it never flips an already-reported denial.
type AdminGate struct {
	reader  admindom.Reader
	timeout time.Duration
	now     func() time.Time
}

func NewAdminGate(reader admindom.Reader) *AdminGate {
	return &AdminGate{
		reader:  reader,
		timeout: gateTimeout,
		now:     time.Now,
	}
}

type gateRead struct {
	rec admindom.Record
	ok  bool
	err error
}

// Check resolves the admission decision for uid.
func (g *AdminGate) Check(ctx context.Context, uid string) admindom.Decision {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return deny(admindom.DenyNotConfigured, "sign in before requesting admin access")
	}

	readCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := g.now()
	done := make(chan gateRead, 1)
	go func() {
		rec, ok, err := g.reader.Get(readCtx, uid)
		done <- gateRead{rec: rec, ok: ok, err: err}
	}()

	select {
	case r := <-done:
		d := g.decide(uid, r)
		log.Printf("[admin-gate] uid=%s admitted=%t reason=%s elapsed=%s",
			uid, d.Admitted, d.Reason, g.now().Sub(started).Round(time.Millisecond))
		return d
	case <-readCtx.Done():
		// Timer or caller cancellation. The pending read result is dropped.
		log.Printf("[admin-gate] uid=%s timed out after %s", uid, g.timeout)
		return deny(admindom.DenyTimeout,
			"the membership check did not complete in time; verify connectivity and retry")
	}
}

func (g *AdminGate) decide(uid string, r gateRead) admindom.Decision {
	if r.err != nil {
		return denyRemote(r.err)
	}
	if !r.ok {
		return deny(admindom.DenyNotConfigured,
			"no admin record exists for this account; create Admins/"+uid+" with isAdmin set to true")
	}
	if !r.rec.IsAdmin {
		return deny(admindom.DenyNotAuthorized,
			"an admin record exists for this account but its isAdmin flag is not true")
	}
	return admindom.Decision{Admitted: true}
}

func denyRemote(err error) admindom.Decision {
	switch common.RemoteCode(err) {
	case common.RemotePermissionDenied:
		return deny(admindom.DenyPermissionDenied,
			"the database rules reject reads of the Admins node; grant the signed-in account read access")
	case common.RemoteDisconnected:
		return deny(admindom.DenyDisconnected,
			"the connection to the database was dropped; retry once connectivity is restored")
	case common.RemoteNetworkError:
		return deny(admindom.DenyNetworkError,
			"the database could not be reached; check the network and the configured database URL")
	case common.RemoteUnavailable:
		return deny(admindom.DenyUnavailable,
			"the database is temporarily unavailable; retry shortly")
	}
	return deny(admindom.DenyOther, "the membership check failed: "+err.Error())
}

func deny(reason admindom.DenyReason, message string) admindom.Decision {
	return admindom.Decision{Admitted: false, Reason: reason, Message: message}
}
