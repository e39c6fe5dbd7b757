package auth

import (
	"errors"
	"fmt"
	"time"

	"tappyid_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "tappy_session"

// ErrIssuerNotConfigured means the signing secret is missing. This is an
// operator error, distinct from a bad or expired client token.
var ErrIssuerNotConfigured = errors.New("session issuer: signing secret not configured")

// Claims carried by a session token.
type Claims struct {
	UserID    string          `json:"userId"`
	Role      models.UserRole `json:"role"`
	ProfileID string          `json:"profileId,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and validates the signed session tokens consulted by
// the auth gate and by session-aware handlers.
type JWTService struct {
	secret     []byte
	ttlMinutes int
}

func NewJWTService(secret string, ttlMinutes int) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		ttlMinutes: ttlMinutes,
	}
}

// GenerateToken signs a session token for the user.
func (s *JWTService) GenerateToken(userID string, role models.UserRole, profileID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrIssuerNotConfigured
	}

	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Role:      role,
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.ttlMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "tappyid",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a session token.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrIssuerNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// CookieMaxAge returns the session cookie lifetime in seconds.
func (s *JWTService) CookieMaxAge() int {
	return s.ttlMinutes * 60
}
