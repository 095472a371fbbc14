package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ErrInvalidToken covers bad signatures, expiry, wrong type and malformed subjects
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims issued by the API
type Claims struct {
	Username  string `json:"username,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is returned by login, registration and refresh
type TokenPair struct {
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
}

// JWTProvider signs and verifies HS256 tokens
type JWTProvider struct {
	now           func() time.Time
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTProvider creates a provider; secret must be non-empty
func NewJWTProvider(secret string, issuer string, accessExpiry, refreshExpiry time.Duration) (*JWTProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if accessExpiry <= 0 || refreshExpiry <= 0 {
		return nil, errors.New("token expiries must be positive")
	}
	return &JWTProvider{
		now:           time.Now,
		secret:        []byte(secret),
		issuer:        issuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}, nil
}

// GenerateTokens issues an access and a refresh token for the user
func (j *JWTProvider) GenerateTokens(userID uuid.UUID, username string) (*TokenPair, error) {
	now := j.now()
	pair := &TokenPair{
		AccessExpiresAt:  now.Add(j.accessExpiry),
		RefreshExpiresAt: now.Add(j.refreshExpiry),
	}

	access, err := j.sign(Claims{
		Username:  username,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(pair.AccessExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   userID.String(),
			ID:        uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	refresh, err := j.sign(Claims{
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(pair.RefreshExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   userID.String(),
			ID:        uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	pair.AccessToken = access
	pair.RefreshToken = refresh
	return pair, nil
}

// ValidateAccess verifies an access token and returns its subject
func (j *JWTProvider) ValidateAccess(token string) (uuid.UUID, error) {
	return j.validate(token, tokenTypeAccess)
}

// ValidateRefresh verifies a refresh token and returns its subject
func (j *JWTProvider) ValidateRefresh(token string) (uuid.UUID, error) {
	return j.validate(token, tokenTypeRefresh)
}

func (j *JWTProvider) sign(claims Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTProvider) validate(tokenString, wantType string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != wantType {
		return uuid.Nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, wantType)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}

// HashToken returns the hex SHA-256 of a token for storage at rest
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RandomToken returns n random bytes encoded as unpadded URL-safe base64
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
