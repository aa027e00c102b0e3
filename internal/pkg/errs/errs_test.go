package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorKnownCode(t *testing.T) {
	cerr := NewError(ErrFriendRequestNotFound)

	require.NotNil(t, cerr)
	assert.Equal(t, ErrFriendRequestNotFound, cerr.Code)
	assert.Equal(t, http.StatusNotFound, cerr.Status)
	assert.NotEmpty(t, cerr.Message)
}

func TestNewErrorUnknownCodeFallsBack(t *testing.T) {
	cerr := NewError(99999)

	require.NotNil(t, cerr)
	assert.Equal(t, ErrUnknown, cerr.Code)
	assert.Equal(t, http.StatusInternalServerError, cerr.Status)
}

func TestNewErrorFormatsDetails(t *testing.T) {
	cerr := NewError(ErrAlreadyLoggedIn, "alice@example.com")

	assert.Contains(t, cerr.Message, "alice@example.com")
}

func TestNewErrorIgnoresDetailsWithoutPlaceholder(t *testing.T) {
	cerr := NewError(ErrSelfFriendRequest, "ignored")

	assert.Equal(t, errorMap[ErrSelfFriendRequest].Message, cerr.Message)
}

func TestErrorStringIncludesCodeAndStatus(t *testing.T) {
	cerr := NewError(ErrUnauthenticated)

	s := cerr.Error()
	assert.Contains(t, s, "3001")
	assert.Contains(t, s, "401")
}

func TestTaxonomyStatuses(t *testing.T) {
	cases := map[int]int{
		ErrUnauthenticated:        http.StatusUnauthorized,
		ErrInvalidParams:          http.StatusBadRequest,
		ErrFriendRequestNotFound:  http.StatusNotFound,
		ErrNotRequestReceiver:     http.StatusForbidden,
		ErrNotRequestSender:       http.StatusForbidden,
		ErrDuplicateFriendRequest: http.StatusConflict,
		ErrRequestAlreadyHandled:  http.StatusConflict,
		ErrAlreadyLoggedIn:        http.StatusConflict,
		ErrStoreUnavailable:       http.StatusServiceUnavailable,
	}

	for code, status := range cases {
		assert.Equal(t, status, NewError(code).Status, "code %d", code)
	}
}
