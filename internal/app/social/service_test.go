package social

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmserver/internal/app/friendreq"
	"mmserver/internal/app/user"
	"mmserver/internal/pkg/errs"
)

const (
	aliceEmail = "alice@example.com"
	bobEmail   = "bob@example.com"
	carolEmail = "carol@example.com"
)

func newTestService(t *testing.T) (*Service, *fakeUsers, *fakeRequests) {
	t.Helper()

	users := &fakeUsers{users: map[int64]user.User{
		1: {ID: 1, Email: aliceEmail, FullName: "Alice Martin", PasswordHash: "x"},
		2: {ID: 2, Email: bobEmail, FullName: "Bob Chen", PasswordHash: "x"},
		3: {ID: 3, Email: carolEmail, FullName: "Carol Diaz", PasswordHash: "x"},
	}}
	requests := newFakeRequests(users)

	return NewService(users, requests), users, requests
}

func TestSendFriendRequestCreatesPending(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	assert.Equal(t, int64(1), created.SenderID)
	assert.Equal(t, int64(2), created.ReceiverID)
	assert.Equal(t, friendreq.StatusPending, created.Status)
	assert.NotZero(t, created.ID)
}

func TestSendFriendRequestDuplicateEitherDirection(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	// Same direction.
	_, cerr = svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrDuplicateFriendRequest, cerr.Code)

	// Reverse direction.
	_, cerr = svc.SendFriendRequest(context.Background(), bobEmail, 1)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrDuplicateFriendRequest, cerr.Code)
}

func TestSendFriendRequestBlockedAfterRejection(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	_, cerr = svc.RejectFriendRequest(context.Background(), bobEmail, created.ID)
	require.Nil(t, cerr)

	// A handled request still blocks a new one, in both directions.
	_, cerr = svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrDuplicateFriendRequest, cerr.Code)

	_, cerr = svc.SendFriendRequest(context.Background(), bobEmail, 1)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrDuplicateFriendRequest, cerr.Code)
}

func TestSendFriendRequestToSelf(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 1)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrSelfFriendRequest, cerr.Code)
}

func TestSendFriendRequestMissingReceiver(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 0)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrReceiverRequired, cerr.Code)
}

func TestSendFriendRequestUnknownReceiver(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 99)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnknownReceiver, cerr.Code)
}

func TestAcceptFriendRequestByReceiver(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	updated, cerr := svc.AcceptFriendRequest(context.Background(), bobEmail, created.ID)
	require.Nil(t, cerr)
	assert.Equal(t, friendreq.StatusAccepted, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.SenderID, updated.SenderID)
	assert.Equal(t, created.ReceiverID, updated.ReceiverID)

	// A second accept, and a reject after the accept, both fail as handled.
	_, cerr = svc.AcceptFriendRequest(context.Background(), bobEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrRequestAlreadyHandled, cerr.Code)

	_, cerr = svc.RejectFriendRequest(context.Background(), bobEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrRequestAlreadyHandled, cerr.Code)
}

func TestAcceptFriendRequestBySenderForbidden(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	_, cerr = svc.AcceptFriendRequest(context.Background(), aliceEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrNotRequestReceiver, cerr.Code)
	assert.Equal(t, http.StatusForbidden, cerr.Status)

	// Third parties are rejected the same way.
	_, cerr = svc.RejectFriendRequest(context.Background(), carolEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrNotRequestReceiver, cerr.Code)
}

func TestRejectFriendRequestByReceiver(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	updated, cerr := svc.RejectFriendRequest(context.Background(), bobEmail, created.ID)
	require.Nil(t, cerr)
	assert.Equal(t, friendreq.StatusRejected, updated.Status)
}

func TestHandleFriendRequestMissingOrUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, cerr := svc.AcceptFriendRequest(context.Background(), bobEmail, 0)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrRequestIDRequired, cerr.Code)

	_, cerr = svc.AcceptFriendRequest(context.Background(), bobEmail, 42)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrFriendRequestNotFound, cerr.Code)
}

func TestCancelFriendRequestBySender(t *testing.T) {
	svc, _, requests := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	deleted, cerr := svc.CancelFriendRequest(context.Background(), aliceEmail, created.ID)
	require.Nil(t, cerr)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, friendreq.StatusPending, deleted.Status)
	assert.Empty(t, requests.reqs)

	// The record is gone: accepting it now fails NotFound.
	_, cerr = svc.AcceptFriendRequest(context.Background(), bobEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrFriendRequestNotFound, cerr.Code)
}

func TestCancelFriendRequestByReceiverForbidden(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	_, cerr = svc.CancelFriendRequest(context.Background(), bobEmail, created.ID)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrNotRequestSender, cerr.Code)
	assert.Equal(t, http.StatusForbidden, cerr.Status)
}

func TestCancelFriendRequestAfterHandled(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	_, cerr = svc.AcceptFriendRequest(context.Background(), bobEmail, created.ID)
	require.Nil(t, cerr)

	// Cancellation carries no status guard: the sender may withdraw even an
	// accepted request.
	deleted, cerr := svc.CancelFriendRequest(context.Background(), aliceEmail, created.ID)
	require.Nil(t, cerr)
	assert.Equal(t, friendreq.StatusAccepted, deleted.Status)
}

func TestFriendRequestsOnlyPending(t *testing.T) {
	svc, _, _ := newTestService(t)

	toBob, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	fromCarol, cerr := svc.SendFriendRequest(context.Background(), carolEmail, 1)
	require.Nil(t, cerr)

	// Handle the request from Carol; it must disappear from every listing.
	_, cerr = svc.AcceptFriendRequest(context.Background(), aliceEmail, fromCarol.ID)
	require.Nil(t, cerr)

	box, cerr := svc.FriendRequests(context.Background(), aliceEmail)
	require.Nil(t, cerr)

	require.Len(t, box.Sent, 1)
	assert.Equal(t, toBob.ID, box.Sent[0].ID)
	assert.Empty(t, box.Received)

	carolBox, cerr := svc.FriendRequests(context.Background(), carolEmail)
	require.Nil(t, cerr)
	assert.Empty(t, carolBox.Sent)
	assert.Empty(t, carolBox.Received)
}

func TestAnonymousCallerShortCircuitsBeforeStores(t *testing.T) {
	svc, users, requests := newTestService(t)

	_, cerr := svc.FriendRequests(context.Background(), "")
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnauthenticated, cerr.Code)
	assert.Equal(t, http.StatusUnauthorized, cerr.Status)

	_, cerr = svc.SendFriendRequest(context.Background(), "", 2)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnauthenticated, cerr.Code)

	_, cerr = svc.AcceptFriendRequest(context.Background(), "", 1)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnauthenticated, cerr.Code)

	assert.Zero(t, users.calls)
	assert.Zero(t, requests.calls)
}

func TestUnresolvablePrincipalIsAuthFailure(t *testing.T) {
	svc, _, _ := newTestService(t)

	// A verified token for an account that no longer exists must not resolve
	// to any identity.
	_, cerr := svc.FriendRequests(context.Background(), "ghost@example.com")
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnauthenticated, cerr.Code)
}

func TestAuthReturnsOwnProfile(t *testing.T) {
	svc, _, _ := newTestService(t)

	profile, cerr := svc.Auth(context.Background(), aliceEmail)
	require.Nil(t, cerr)
	assert.Equal(t, user.Profile{ID: 1, Email: aliceEmail, FullName: "Alice Martin"}, profile)

	_, cerr = svc.Auth(context.Background(), "")
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUnauthenticated, cerr.Code)
}

func TestCheckAnonymous(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.Nil(t, svc.CheckAnonymous(context.Background(), ""))

	cerr := svc.CheckAnonymous(context.Background(), aliceEmail)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrAlreadyLoggedIn, cerr.Code)
	assert.Contains(t, cerr.Message, aliceEmail)
}

func TestFindUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	profile, cerr := svc.FindUser(context.Background(), aliceEmail, bobEmail)
	require.Nil(t, cerr)
	assert.Equal(t, user.Profile{ID: 2, Email: bobEmail, FullName: "Bob Chen"}, profile)

	_, cerr = svc.FindUser(context.Background(), aliceEmail, "")
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrInvalidParams, cerr.Code)

	_, cerr = svc.FindUser(context.Background(), aliceEmail, aliceEmail)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrSelfLookup, cerr.Code)

	_, cerr = svc.FindUser(context.Background(), aliceEmail, "nobody@example.com")
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrUserNotFound, cerr.Code)
}

func TestFindUserPendingConflict(t *testing.T) {
	svc, _, _ := newTestService(t)

	created, cerr := svc.SendFriendRequest(context.Background(), aliceEmail, 2)
	require.Nil(t, cerr)

	// Pending in either direction blocks the lookup.
	_, cerr = svc.FindUser(context.Background(), aliceEmail, bobEmail)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrPendingRequestExists, cerr.Code)

	_, cerr = svc.FindUser(context.Background(), bobEmail, aliceEmail)
	require.NotNil(t, cerr)
	assert.Equal(t, errs.ErrPendingRequestExists, cerr.Code)

	// Once handled, the lookup succeeds again.
	_, cerr = svc.AcceptFriendRequest(context.Background(), bobEmail, created.ID)
	require.Nil(t, cerr)

	_, cerr = svc.FindUser(context.Background(), aliceEmail, bobEmail)
	require.Nil(t, cerr)
}
