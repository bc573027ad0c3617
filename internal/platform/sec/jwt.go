// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the UserID, Nickname, and Role directly inside the JWT,
// the authentication middleware can reconstruct the active user context
// WITHOUT querying the database on every single API request. The registered
// Subject claim carries the account email, which is the stable identity the
// authorization gate resolves against.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string `json:"uid"`
	Nickname string `json:"nck"`
	Role     string `json:"rol"`
}

// Token verification failures, surfaced to the authorization boundary.
// Every one of them maps to HTTP 401; the distinction exists for logging.
var (
	ErrTokenMalformed      = errors.New("sec: token is malformed")
	ErrTokenExpired        = errors.New("sec: token is expired")
	ErrTokenSignature      = errors.New("sec: token signature is invalid")
	ErrTokenSubjectMissing = errors.New("sec: token subject claim is missing")
)

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Secret Rotation
//
// The signing secret is held server-side only. Rotating it invalidates every
// outstanding token at once; this is an accepted tradeoff, not mitigated.
type TokenService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
}

// NewTokenService creates a new TokenService with the given HMAC secret.
// defaultTTL is used by [TokenService.Generate] when the caller passes zero.
func NewTokenService(secret, issuer string, defaultTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}
	if defaultTTL <= 0 {
		defaultTTL = 15 * time.Minute
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		defaultTTL: defaultTTL,
	}, nil
}

// Generate creates a new signed access token for a user.
//
// # Parameters
//   - userID: The ID of the account.
//   - email: The account email, stored as the Subject claim.
//   - nickname: The account nickname.
//   - role: The account role.
//   - timeToLive: Token lifetime; zero means the service default.
func (service *TokenService) Generate(userID, email, nickname string, role Role, timeToLive time.Duration) (string, error) {
	if timeToLive <= 0 {
		timeToLive = service.defaultTTL
	}

	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID:   userID,
		Nickname: nickname,
		Role:     string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// # Returns
//
// The embedded [*AuthClaims] on success, or one of the ErrToken* sentinel
// errors. A verification failure is never retried; callers translate it
// into an authentication failure.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, fmt.Errorf("sec: invalid token: %w", err)
		}
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	if claims.Subject == "" {
		return nil, ErrTokenSubjectMissing
	}

	return claims, nil
}
