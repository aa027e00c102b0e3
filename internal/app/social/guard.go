package social

import (
	"context"
	"errors"

	"mmserver/internal/app/friendreq"
	"mmserver/internal/pkg/errs"
	"mmserver/internal/pkg/logx"
)

// Guard is one authorization predicate in front of an operation. A nil return
// passes control onward; a non-nil return aborts the call with that failure.
type Guard interface {
	Check(ctx context.Context, call *Call) *errs.CustomError
}

// runGuards evaluates the guards in order and stops at the first failure.
func runGuards(ctx context.Context, call *Call, guards []Guard) *errs.CustomError {
	for _, g := range guards {
		if cerr := g.Check(ctx, call); cerr != nil {
			return cerr
		}
	}
	return nil
}

// authenticated rejects anonymous callers and resolves the principal to its
// user record, making the caller identity available to inner guards.
type authenticated struct {
	resolver *Resolver
}

func (g *authenticated) Check(ctx context.Context, call *Call) *errs.CustomError {
	if call.Principal == "" {
		return errs.NewError(errs.ErrUnauthenticated)
	}

	caller, cerr := g.resolver.Resolve(ctx, call.Principal)
	if cerr != nil {
		return cerr
	}

	call.Caller = caller
	return nil
}

// anonymousOnly is the inverse of authenticated: signup and login are only
// meaningful for callers without an identity.
type anonymousOnly struct{}

func (anonymousOnly) Check(_ context.Context, call *Call) *errs.CustomError {
	if call.Principal != "" {
		return errs.NewError(errs.ErrAlreadyLoggedIn, call.Principal)
	}
	return nil
}

// validTarget checks that a request ID was provided, loads the record, and
// caches it on the Call so inner guards and the operation skip a second read.
type validTarget struct {
	requests RequestStore
}

func (g *validTarget) Check(ctx context.Context, call *Call) *errs.CustomError {
	if call.RequestID == 0 {
		return errs.NewError(errs.ErrRequestIDRequired)
	}

	target, err := g.requests.GetByID(ctx, call.RequestID)
	if err != nil {
		if errors.Is(err, friendreq.ErrNotFound) {
			return errs.NewError(errs.ErrFriendRequestNotFound)
		}

		logx.Error(err, "friend request lookup failed", "request_id", call.RequestID)
		return errs.NewError(errs.ErrStoreUnavailable)
	}

	call.Target = &target
	return nil
}

// guardRole names the party a transition belongs to.
type guardRole int

const (
	roleReceiver guardRole = iota
	roleSender
)

// transitionAuthority checks that the caller holds the role the transition
// requires, and (for accept/reject) that the request is still PENDING.
// It must run after authenticated and validTarget.
type transitionAuthority struct {
	role           guardRole
	requirePending bool
}

func (g *transitionAuthority) Check(_ context.Context, call *Call) *errs.CustomError {
	switch g.role {
	case roleReceiver:
		if call.Target.ReceiverID != call.Caller.ID {
			return errs.NewError(errs.ErrNotRequestReceiver)
		}
	case roleSender:
		if call.Target.SenderID != call.Caller.ID {
			return errs.NewError(errs.ErrNotRequestSender)
		}
	}

	if g.requirePending && !call.Target.Pending() {
		return errs.NewError(errs.ErrRequestAlreadyHandled)
	}

	return nil
}
