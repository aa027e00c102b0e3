/*
Package handler provides HTTP handler functions for account signup, login, and
identity introspection.

Password hashing and token issuance live here, at the edge; the social core
only ever sees the verified-or-absent principal email.
*/
package handler

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"mmserver/internal/app/user"
	"mmserver/internal/pkg/auth/jwt"
	"mmserver/internal/pkg/errs"
	"mmserver/internal/pkg/logx"
	"mmserver/internal/pkg/req"
	"mmserver/internal/pkg/resp"
)

var validate = newValidator()

// newValidator builds the input validator with the password policy rule:
// at least 8 characters with both letters and digits.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()

		var letters, digits, length int
		for _, r := range password {
			length++
			switch {
			case unicode.IsLetter(r):
				letters++
			case unicode.IsDigit(r):
				digits++
			}
		}

		return length >= 8 && letters > 0 && digits > 0
	})

	return v
}

// validationError maps the first failed field to its business error code.
func validationError(err error) *errs.CustomError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}

	switch verrs[0].Field() {
	case "Email":
		return errs.NewError(errs.ErrInvalidEmail)
	case "Password":
		return errs.NewError(errs.ErrWeakPassword)
	case "FullName":
		return errs.NewError(errs.ErrFullNameRequired)
	default:
		return errs.NewError(errs.ErrInvalidParams)
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password_policy"`
	FullName string `json:"fullName" validate:"required"`
}

// HandleRegister processes the request to create a new account and issues an
// identity token for it. Only anonymous callers may sign up.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cerr := deps.Social.CheckAnonymous(r.Context(), jwt.PrincipalEmail(r)); cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		var input RegisterInput
		if cerr := req.BindJSON(r, &input); cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, validationError(err))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			logx.Error(err, "password hashing failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		created, err := deps.Users.Create(r.Context(), input.Email, string(hashedPassword), input.FullName)
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				logx.Warn("registration conflict: email already exists", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
				return
			}

			logx.Error(err, "failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrStoreUnavailable))
			return
		}

		tokenString, err := jwt.GenerateToken(created.Email, deps.Config.JWTSecret, jwt.IdentityExpiration)
		if err != nil {
			logx.Error(err, "failed to generate token after registration")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("user registered", "user_id", created.ID)
		resp.RespondSuccess(w, r, map[string]any{
			"token": tokenString,
		})
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies account credentials and issues an identity token.
// Only anonymous callers may log in.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cerr := deps.Social.CheckAnonymous(r.Context(), jwt.PrincipalEmail(r)); cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		var input LoginInput
		if cerr := req.BindJSON(r, &input); cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		account, err := deps.Users.GetByEmail(r.Context(), input.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logx.Warn("login: unknown account", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}

			logx.Error(err, "login: user fetch failed", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrStoreUnavailable))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		tokenString, err := jwt.GenerateToken(account.Email, deps.Config.JWTSecret, jwt.IdentityExpiration)
		if err != nil {
			logx.Error(err, "login: jwt generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": tokenString,
		})
	}
}

// HandleAuth returns the authenticated caller's own profile.
func HandleAuth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, cerr := deps.Social.Auth(r.Context(), jwt.PrincipalEmail(r))
		if cerr != nil {
			resp.RespondError(w, r, cerr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": profile,
		})
	}
}
