/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Friend Request Business Logic Errors
	ErrReceiverRequired:       {Code: ErrReceiverRequired, Message: "Please provide a receiver.", Status: http.StatusBadRequest},
	ErrSelfFriendRequest:      {Code: ErrSelfFriendRequest, Message: "You cannot send a friend request to yourself.", Status: http.StatusBadRequest},
	ErrDuplicateFriendRequest: {Code: ErrDuplicateFriendRequest, Message: "Duplicate friend request.", Status: http.StatusConflict},
	ErrUnknownReceiver:        {Code: ErrUnknownReceiver, Message: "Receiver does not exist.", Status: http.StatusBadRequest},
	ErrRequestIDRequired:      {Code: ErrRequestIDRequired, Message: "Please provide the ID.", Status: http.StatusBadRequest},
	ErrFriendRequestNotFound:  {Code: ErrFriendRequestNotFound, Message: "Friend request not found.", Status: http.StatusNotFound},
	ErrNotRequestReceiver:     {Code: ErrNotRequestReceiver, Message: "Not authorized to handle the request.", Status: http.StatusForbidden},
	ErrNotRequestSender:       {Code: ErrNotRequestSender, Message: "Not authorized to cancel the request.", Status: http.StatusForbidden},
	ErrRequestAlreadyHandled:  {Code: ErrRequestAlreadyHandled, Message: "The request has already been handled.", Status: http.StatusConflict},
	ErrPendingRequestExists:   {Code: ErrPendingRequestExists, Message: "A friend request is already pending with this user.", Status: http.StatusConflict},

	// 3xxx: User, Session, and Security Errors
	ErrUnauthenticated:    {Code: ErrUnauthenticated, Message: "Please log in to continue.", Status: http.StatusUnauthorized},
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "Already logged in as %s.", Status: http.StatusConflict},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "Account not found.", Status: http.StatusNotFound},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect email or password.", Status: http.StatusUnauthorized},
	ErrEmailTaken:         {Code: ErrEmailTaken, Message: "User with that email already exists.", Status: http.StatusConflict},
	ErrInvalidEmail:       {Code: ErrInvalidEmail, Message: "Please provide a valid email.", Status: http.StatusBadRequest},
	ErrWeakPassword:       {Code: ErrWeakPassword, Message: "Password must be at least 8 characters, both alphabet and numbers.", Status: http.StatusBadRequest},
	ErrFullNameRequired:   {Code: ErrFullNameRequired, Message: "Full name required to sign up.", Status: http.StatusBadRequest},
	ErrSelfLookup:         {Code: ErrSelfLookup, Message: "You cannot look up your own email.", Status: http.StatusBadRequest},

	// 5xxx: Internal System Errors
	ErrUnknown:          {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStoreUnavailable: {Code: ErrStoreUnavailable, Message: "Service temporarily unavailable. Please try again later.", Status: http.StatusServiceUnavailable},
}
