package social

import (
	"context"
	"errors"

	"mmserver/internal/app/friendreq"
	"mmserver/internal/app/user"
	"mmserver/internal/pkg/errs"
	"mmserver/internal/pkg/logx"
)

// RequestBox groups the caller's open friend requests by direction.
type RequestBox struct {
	// Sent holds the PENDING requests the caller sent.
	Sent []friendreq.Request `json:"sent"`

	// Received holds the PENDING requests addressed to the caller.
	Received []friendreq.Request `json:"received"`
}

// Service is the friend request state machine behind the guard chain.
// It owns no state of its own; the stores are the only shared resource.
type Service struct {
	users    UserDirectory
	requests RequestStore

	authed          Guard
	anonOnly        Guard
	target          Guard
	receiverPending Guard
	senderAny       Guard
}

// NewService wires the guard chain over the given stores.
func NewService(users UserDirectory, requests RequestStore) *Service {
	return &Service{
		users:    users,
		requests: requests,

		authed:          &authenticated{resolver: NewResolver(users)},
		anonOnly:        anonymousOnly{},
		target:          &validTarget{requests: requests},
		receiverPending: &transitionAuthority{role: roleReceiver, requirePending: true},
		senderAny:       &transitionAuthority{role: roleSender},
	}
}

// CheckAnonymous rejects callers that already carry an identity. Signup and
// login run behind this instead of the authenticated guard.
func (s *Service) CheckAnonymous(ctx context.Context, principal string) *errs.CustomError {
	call := &Call{Principal: principal}
	return runGuards(ctx, call, []Guard{s.anonOnly})
}

// Auth returns the authenticated caller's own profile.
func (s *Service) Auth(ctx context.Context, principal string) (user.Profile, *errs.CustomError) {
	call := &Call{Principal: principal}
	if cerr := runGuards(ctx, call, []Guard{s.authed}); cerr != nil {
		return user.Profile{}, cerr
	}

	return call.Caller.Profile(), nil
}

// FindUser looks up another user by exact email so the caller can send them a
// friend request. Searching your own email is rejected, and a PENDING request
// already open with the target is reported as a conflict up front.
func (s *Service) FindUser(ctx context.Context, principal, email string) (user.Profile, *errs.CustomError) {
	call := &Call{Principal: principal}
	if cerr := runGuards(ctx, call, []Guard{s.authed}); cerr != nil {
		return user.Profile{}, cerr
	}

	if email == "" {
		return user.Profile{}, errs.NewError(errs.ErrInvalidParams)
	}

	if email == call.Caller.Email {
		return user.Profile{}, errs.NewError(errs.ErrSelfLookup)
	}

	target, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, errs.NewError(errs.ErrUserNotFound)
		}

		logx.Error(err, "user lookup failed", "email", email)
		return user.Profile{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	_, err = s.requests.FindPendingBetween(ctx, call.Caller.ID, target.ID)
	if err == nil {
		return user.Profile{}, errs.NewError(errs.ErrPendingRequestExists)
	}
	if !errors.Is(err, friendreq.ErrNotFound) {
		logx.Error(err, "pending request lookup failed", "caller_id", call.Caller.ID, "target_id", target.ID)
		return user.Profile{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	return target.Profile(), nil
}

// FriendRequests returns the caller's PENDING requests, grouped by direction.
// Handled requests never appear here; their outcome is only visible in the
// response of the mutation that handled them.
func (s *Service) FriendRequests(ctx context.Context, principal string) (RequestBox, *errs.CustomError) {
	call := &Call{Principal: principal}
	if cerr := runGuards(ctx, call, []Guard{s.authed}); cerr != nil {
		return RequestBox{}, cerr
	}

	sent, err := s.requests.ListPendingBySender(ctx, call.Caller.ID)
	if err != nil {
		logx.Error(err, "listing sent friend requests failed", "user_id", call.Caller.ID)
		return RequestBox{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	received, err := s.requests.ListPendingByReceiver(ctx, call.Caller.ID)
	if err != nil {
		logx.Error(err, "listing received friend requests failed", "user_id", call.Caller.ID)
		return RequestBox{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	return RequestBox{Sent: sent, Received: received}, nil
}

// SendFriendRequest creates a PENDING request from the caller to receiverID.
// A request in either direction between the pair blocks a new one regardless
// of its status, so a rejected pair is not re-sendable.
func (s *Service) SendFriendRequest(ctx context.Context, principal string, receiverID int64) (friendreq.Request, *errs.CustomError) {
	call := &Call{Principal: principal}
	if cerr := runGuards(ctx, call, []Guard{s.authed}); cerr != nil {
		return friendreq.Request{}, cerr
	}

	if receiverID == 0 {
		return friendreq.Request{}, errs.NewError(errs.ErrReceiverRequired)
	}

	if receiverID == call.Caller.ID {
		return friendreq.Request{}, errs.NewError(errs.ErrSelfFriendRequest)
	}

	_, err := s.requests.FindBetween(ctx, call.Caller.ID, receiverID)
	if err == nil {
		return friendreq.Request{}, errs.NewError(errs.ErrDuplicateFriendRequest)
	}
	if !errors.Is(err, friendreq.ErrNotFound) {
		logx.Error(err, "duplicate request lookup failed", "sender_id", call.Caller.ID, "receiver_id", receiverID)
		return friendreq.Request{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	created, err := s.requests.Create(ctx, call.Caller.ID, receiverID)
	if err != nil {
		switch {
		case errors.Is(err, friendreq.ErrDuplicatePair):
			// Lost the race against a concurrent request for the same pair.
			return friendreq.Request{}, errs.NewError(errs.ErrDuplicateFriendRequest)
		case errors.Is(err, friendreq.ErrUnknownUser):
			return friendreq.Request{}, errs.NewError(errs.ErrUnknownReceiver)
		default:
			logx.Error(err, "creating friend request failed", "sender_id", call.Caller.ID, "receiver_id", receiverID)
			return friendreq.Request{}, errs.NewError(errs.ErrStoreUnavailable)
		}
	}

	logx.Info("friend request sent", "request_id", created.ID, "sender_id", created.SenderID, "receiver_id", created.ReceiverID)
	return created, nil
}

// AcceptFriendRequest transitions a PENDING request to ACCEPTED. Only the
// receiver may accept, and only while the request is still PENDING.
func (s *Service) AcceptFriendRequest(ctx context.Context, principal string, id int64) (friendreq.Request, *errs.CustomError) {
	return s.handleRequest(ctx, principal, id, friendreq.StatusAccepted)
}

// RejectFriendRequest transitions a PENDING request to REJECTED. Only the
// receiver may reject, and only while the request is still PENDING.
func (s *Service) RejectFriendRequest(ctx context.Context, principal string, id int64) (friendreq.Request, *errs.CustomError) {
	return s.handleRequest(ctx, principal, id, friendreq.StatusRejected)
}

func (s *Service) handleRequest(ctx context.Context, principal string, id int64, status friendreq.Status) (friendreq.Request, *errs.CustomError) {
	call := &Call{Principal: principal, RequestID: id}
	if cerr := runGuards(ctx, call, []Guard{s.authed, s.target, s.receiverPending}); cerr != nil {
		return friendreq.Request{}, cerr
	}

	updated, err := s.requests.SetStatusIfPending(ctx, id, status)
	if err != nil {
		if errors.Is(err, friendreq.ErrNotFound) {
			// The row stopped being PENDING between the guard's read and this
			// write; report it the same way the guard would have.
			return friendreq.Request{}, errs.NewError(errs.ErrRequestAlreadyHandled)
		}

		logx.Error(err, "friend request status update failed", "request_id", id, "status", status)
		return friendreq.Request{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	logx.Info("friend request handled", "request_id", updated.ID, "status", updated.Status)
	return updated, nil
}

// CancelFriendRequest deletes the request and returns its prior values. Only
// the sender may cancel; the status is deliberately not checked, so even a
// handled request can be withdrawn by its sender.
func (s *Service) CancelFriendRequest(ctx context.Context, principal string, id int64) (friendreq.Request, *errs.CustomError) {
	call := &Call{Principal: principal, RequestID: id}
	if cerr := runGuards(ctx, call, []Guard{s.authed, s.target, s.senderAny}); cerr != nil {
		return friendreq.Request{}, cerr
	}

	deleted, err := s.requests.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, friendreq.ErrNotFound) {
			return friendreq.Request{}, errs.NewError(errs.ErrFriendRequestNotFound)
		}

		logx.Error(err, "friend request deletion failed", "request_id", id)
		return friendreq.Request{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	logx.Info("friend request cancelled", "request_id", deleted.ID, "sender_id", deleted.SenderID)
	return deleted, nil
}
