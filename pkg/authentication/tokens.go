// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/types"
)

const resetPurpose = "password-reset"

var _ TokenManagerInterface = (*TokenManager)(nil)

// Claims carried by session tokens. Reset tokens reuse the same shape with
// the purpose claim set, session verification rejects them.
type Claims struct {
	Email        string  `json:"email,omitempty"`
	Role         string  `json:"role,omitempty"`
	MembershipID *string `json:"membershipId,omitempty"`
	Purpose      string  `json:"purpose,omitempty"`

	jwt.RegisteredClaims
}

type TokenManager struct {
	secret        []byte
	lifetime      time.Duration
	resetLifetime time.Duration

	logger logging.LoggerInterface
}

func (t *TokenManager) IssueToken(u *types.User) (string, error) {
	now := time.Now()

	claims := Claims{
		Email:        u.Email,
		Role:         u.Role,
		MembershipID: u.MembershipID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenManager) VerifyToken(rawToken string) (*Claims, error) {
	claims, err := t.parse(rawToken)
	if err != nil {
		return nil, err
	}

	if claims.Purpose != "" {
		return nil, fmt.Errorf("token is not a session token")
	}

	return claims, nil
}

func (t *TokenManager) IssueResetToken(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.resetLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenManager) VerifyResetToken(rawToken string) (string, error) {
	claims, err := t.parse(rawToken)
	if err != nil {
		return "", err
	}

	if claims.Purpose != resetPurpose {
		return "", fmt.Errorf("token is not a reset token")
	}

	return claims.Subject, nil
}

func (t *TokenManager) parse(rawToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		rawToken,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func NewTokenManager(secret string, lifetime, resetLifetime time.Duration, logger logging.LoggerInterface) *TokenManager {
	t := new(TokenManager)

	t.secret = []byte(secret)
	t.lifetime = lifetime
	t.resetLifetime = resetLifetime
	t.logger = logger

	return t
}
