package service

// Claims is the identity carried inside an authentication token.
type Claims struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, time-bounded authentication tokens.
type TokenService interface {
	GenerateToken(claims Claims) (string, error)

	// VerifyToken returns the embedded claims, or a token-invalid / token-expired error.
	VerifyToken(token string) (*Claims, error)
}
