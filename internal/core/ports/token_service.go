package ports

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are stateless; there is no revocation list, and rotating the
// signing secret invalidates everything issued before.
type TokenService interface {
	Issue(userID, email string) (string, error)
	// Verify returns domain.ErrInvalidToken for a bad signature, a
	// malformed payload, or an elapsed expiry.
	Verify(token string) (*TokenClaims, error)
}
