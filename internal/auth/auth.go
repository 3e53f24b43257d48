package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessIssuer  = "profanitycheck-access"
	RefreshIssuer = "profanitycheck-refresh"

	AccessExpiry  = time.Hour
	RefreshExpiry = time.Hour * 24 * 60
)

var ErrNoAuthHeader error = errors.New("no authorization header")
var ErrWrongIssuer error = errors.New("token has wrong issuer")
var ErrNoSecret error = errors.New("no token signing secret configured")

type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// MakeToken signs an HS256 token for subject with the given issuer.
func MakeToken(subject string, issuer string, secret string, expiresIn time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		Subject:   subject,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// MakeTokenPair signs an access and a refresh token for subject.
func MakeTokenPair(subject string, secret string) (TokenPair, error) {
	access, err := MakeToken(subject, AccessIssuer, secret, AccessExpiry)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := MakeToken(subject, RefreshIssuer, secret, RefreshExpiry)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Token: access, RefreshToken: refresh}, nil
}

// ValidateToken checks signature, expiry and issuer and returns the subject.
// An empty secret is rejected.
func ValidateToken(tokenString string, secret string, issuer string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if claims.Issuer != issuer {
		return "", fmt.Errorf("%w: %s", ErrWrongIssuer, claims.Issuer)
	}

	return claims.GetSubject()
}

// Remove "Bearer" prefix
func GetBearerToken(headers http.Header) (string, error) {
	t := headers.Get("Authorization")
	if t == "" {
		return "", ErrNoAuthHeader
	}

	split := strings.Split(t, " ")
	if len(split) > 1 {
		t = split[1]
	}

	return strings.TrimSpace(t), nil
}
