package social

import (
	"context"
	"errors"

	"mmserver/internal/app/user"
	"mmserver/internal/pkg/errs"
	"mmserver/internal/pkg/logx"
)

// Resolver maps a verified principal email to its internal user record.
type Resolver struct {
	users UserDirectory
}

// NewResolver creates a resolver over the given user directory.
func NewResolver(users UserDirectory) *Resolver {
	return &Resolver{users: users}
}

// Resolve looks up the user owning the email. The match is exact and
// case-sensitive. Tokens are only ever minted for existing accounts, so a
// miss here means the store and the token issuer disagree about who exists;
// that is logged as an integrity failure and reported as an authentication
// failure rather than silently defaulting to any identity.
func (r *Resolver) Resolve(ctx context.Context, email string) (user.User, *errs.CustomError) {
	u, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			logx.Error(err, "verified principal has no user record", "email", email)
			return user.User{}, errs.NewError(errs.ErrUnauthenticated)
		}

		logx.Error(err, "identity resolution store failure", "email", email)
		return user.User{}, errs.NewError(errs.ErrStoreUnavailable)
	}

	return u, nil
}
