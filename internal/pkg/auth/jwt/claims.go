package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims issued by the server.
// The email is the only piece of identity carried by a token; the social core
// resolves it to an internal user ID on every call, so tokens stay valid
// across anything but an account deletion.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), Jti (token ID), and Iss (Issuer).
	jwt.StandardClaims `json:"standard_claims"`

	// Email is the account email the token was issued for. It is treated as a
	// verified principal once ParseToken succeeds.
	Email string `json:"email"`
}
