// internal/domain/admin/repository_port.go
package admin

import "context"

// Reader performs the one point read backing the gate. ok is false when no
// record exists for the uid.
type Reader interface {
	Get(ctx context.Context, uid string) (rec Record, ok bool, err error)
}
