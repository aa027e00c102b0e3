/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Friend Request Business Logic Errors
const (
	// ErrReceiverRequired indicates that a friend request was sent without a receiver ID.
	ErrReceiverRequired = 2101

	// ErrSelfFriendRequest indicates that a user attempted to friend-request themselves.
	ErrSelfFriendRequest = 2102

	// ErrDuplicateFriendRequest indicates that a request already exists between the
	// two users, in either direction and regardless of its status.
	ErrDuplicateFriendRequest = 2103

	// ErrUnknownReceiver indicates that the receiver ID does not reference an existing user.
	ErrUnknownReceiver = 2104

	// ErrRequestIDRequired indicates that a friend request operation was called without an ID.
	ErrRequestIDRequired = 2105

	// ErrFriendRequestNotFound indicates that no friend request exists with the given ID.
	ErrFriendRequestNotFound = 2106

	// ErrNotRequestReceiver indicates that a caller other than the receiver attempted
	// to accept or reject a friend request.
	ErrNotRequestReceiver = 2107

	// ErrNotRequestSender indicates that a caller other than the sender attempted
	// to cancel a friend request.
	ErrNotRequestSender = 2108

	// ErrRequestAlreadyHandled indicates that the friend request is no longer PENDING
	// and cannot be accepted or rejected again.
	ErrRequestAlreadyHandled = 2109

	// ErrPendingRequestExists indicates that a user lookup found a target with whom
	// a PENDING friend request already exists.
	ErrPendingRequestExists = 2110
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrUnauthenticated indicates that the caller presented no valid identity.
	ErrUnauthenticated = 3001

	// ErrAlreadyLoggedIn indicates that signup or login was attempted by an
	// already-authenticated caller.
	ErrAlreadyLoggedIn = 3002

	// ErrUserNotFound indicates that no user exists with the given email.
	ErrUserNotFound = 3003

	// ErrInvalidCredentials indicates that the supplied password does not match.
	ErrInvalidCredentials = 3004

	// ErrEmailTaken indicates that signup was attempted with an already-registered email.
	ErrEmailTaken = 3005

	// ErrInvalidEmail indicates that the supplied email is not a valid address.
	ErrInvalidEmail = 3006

	// ErrWeakPassword indicates that the supplied password does not meet the password policy.
	ErrWeakPassword = 3007

	// ErrFullNameRequired indicates that signup was attempted without a full name.
	ErrFullNameRequired = 3008

	// ErrSelfLookup indicates that a user searched for their own email.
	ErrSelfLookup = 3009
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStoreUnavailable indicates that the database did not complete an operation.
	ErrStoreUnavailable = 5001
)
