// internal/domain/admin/entity.go
package admin

// Record is an admin-membership entry keyed by the authenticated user id.
type Record struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	IsAdmin     bool   `json:"isAdmin"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

// DenyReason classifies why the gate refused an identity.
type DenyReason string

const (
	DenyNotAuthorized    DenyReason = "not-authorized"  // record exists, flag false/absent
	DenyNotConfigured    DenyReason = "not-configured"  // no record for this uid
	DenyPermissionDenied DenyReason = "permission-denied"
	DenyDisconnected     DenyReason = "disconnected"
	DenyNetworkError     DenyReason = "network-error"
	DenyUnavailable      DenyReason = "unavailable"
	DenyTimeout          DenyReason = "timeout"
	DenyOther            DenyReason = "other"
)

// Decision is the single outcome of one gate check.
type Decision struct {
	Admitted bool
	Reason   DenyReason
	Message  string
}
