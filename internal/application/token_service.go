package application

// TokenPayload is the minimal claim set embedded in issued tokens. It is
// derived fresh per issuance and never persisted.
type TokenPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// AuthTokenService is the port for issuing and verifying signed session
// tokens. Verify methods return nil on any failure (bad signature, expiry,
// malformed token); they never surface an error to the caller.
type AuthTokenService interface {
	GenerateAccessToken(payload TokenPayload) (string, error)
	GenerateRefreshToken(payload TokenPayload) (string, error)
	VerifyAccessToken(token string) *TokenPayload
	VerifyRefreshToken(token string) *TokenPayload
}
