package handler

import (
	"context"

	"mmserver/internal/app/social"
	"mmserver/internal/app/user"
	"mmserver/internal/configs"
)

// UserAccounts is the slice of the user store the auth handlers need for
// signup and credential verification.
type UserAccounts interface {
	Create(ctx context.Context, email, passwordHash, fullName string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

// AppDeps bundles the collaborators the handlers are constructed with.
type AppDeps struct {
	Config *configs.AppConfig
	Users  UserAccounts
	Social *social.Service
}
