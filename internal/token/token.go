package token

import (
	"fmt"
	"regexp"

	"github.com/golang-jwt/jwt/v5"

	"catalogkeeper/internal/models"
)

// TokenPattern matches the structural shape of a bearer token:
// three dot-separated base64url segments.
var TokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// Valid reports whether tok has the structural shape of a bearer token.
// It does not check the signature or the expiry; the server is the verifier.
func Valid(tok string) bool {
	return TokenPattern.MatchString(tok)
}

// identityClaims is the token payload issued by the auth service
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Decode extracts the identity carried in the token payload. The signature
// is not verified: the client only derives display attributes from the
// token, the server rejects forged ones on first use.
func Decode(tok string) (models.Identity, error) {
	if !Valid(tok) {
		return models.Identity{}, fmt.Errorf("malformed token")
	}

	var claims identityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return models.Identity{}, fmt.Errorf("failed to decode token payload: %w", err)
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("token payload has no subject")
	}

	return models.Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
