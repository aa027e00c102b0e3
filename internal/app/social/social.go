/*
Package social implements the social-graph core: identity resolution from a
verified principal to an internal user record, the authorization guard chain,
and the friend request state machine.

Every operation receives the caller's principal (the verified account email,
or "" for anonymous callers) from the transport layer and runs an ordered list
of guards before touching any state. Guards short-circuit: the first failing
guard aborts the call, and a failing guard never permits a write.
*/
package social

import (
	"context"

	"mmserver/internal/app/friendreq"
	"mmserver/internal/app/user"
)

// UserDirectory is the read-only view of the user store the core needs.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// RequestStore is the friend request persistence surface the core needs.
// The mutating calls are atomic conditional commands so that a concurrent
// caller cannot slip between a guard's read and the operation's write.
type RequestStore interface {
	GetByID(ctx context.Context, id int64) (friendreq.Request, error)
	FindBetween(ctx context.Context, userA, userB int64) (friendreq.Request, error)
	FindPendingBetween(ctx context.Context, userA, userB int64) (friendreq.Request, error)
	Create(ctx context.Context, senderID, receiverID int64) (friendreq.Request, error)
	SetStatusIfPending(ctx context.Context, id int64, status friendreq.Status) (friendreq.Request, error)
	Delete(ctx context.Context, id int64) (friendreq.Request, error)
	ListPendingBySender(ctx context.Context, senderID int64) ([]friendreq.Request, error)
	ListPendingByReceiver(ctx context.Context, receiverID int64) ([]friendreq.Request, error)
}

// Call carries the per-call state shared between guards and the operation.
// It lives for exactly one request and is never persisted.
type Call struct {
	// Principal is the verified account email, or "" for anonymous callers.
	Principal string

	// Caller is the resolved user record. Set by the authenticated guard.
	Caller user.User

	// RequestID is the target friend request identifier, for operations that
	// take one. Zero means "not provided".
	RequestID int64

	// Target is the friend request loaded by the valid-target guard, shared
	// with inner guards and the operation so the row is read only once.
	Target *friendreq.Request
}
