// Package jwtauth implements the AuthTokenService port with HS256-signed
// JWTs, separate secrets for access and refresh tokens.
package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fitlife/fitlife-api/internal/application"
)

type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

type claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) GenerateAccessToken(payload application.TokenPayload) (string, error) {
	return s.sign(payload, s.accessSecret, s.accessTTL)
}

func (s *TokenService) GenerateRefreshToken(payload application.TokenPayload) (string, error) {
	return s.sign(payload, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken decodes an access token, returning nil on any failure.
func (s *TokenService) VerifyAccessToken(token string) *application.TokenPayload {
	return verify(token, s.accessSecret)
}

// VerifyRefreshToken decodes a refresh token, returning nil on any failure.
func (s *TokenService) VerifyRefreshToken(token string) *application.TokenPayload {
	return verify(token, s.refreshSecret)
}

func (s *TokenService) sign(payload application.TokenPayload, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		UserID: payload.UserID,
		Email:  payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func verify(token string, secret []byte) *application.TokenPayload {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}
	return &application.TokenPayload{UserID: c.UserID, Email: c.Email}
}

var _ application.AuthTokenService = (*TokenService)(nil)
