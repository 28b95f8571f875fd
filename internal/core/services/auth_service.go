package services

import (
	"errors"
	"time"

	"alumninet/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthService issues and verifies credentials: bcrypt password digests and
// signed bearer tokens. Signup tokens are short-lived; signin tokens carry
// a full session. The signing key is process-wide configuration.
type AuthService interface {
	HashPassword(plaintext string) (string, error)
	CheckPassword(plaintext, hash string) bool
	GenerateSignupToken(userID domain.UserID, role domain.UserRole) (string, error)
	GenerateSessionToken(userID domain.UserID, role domain.UserRole) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID domain.UserID   `json:"user_id"`
	Role   domain.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type authService struct {
	jwtSecret       []byte
	signupTokenTTL  time.Duration
	sessionTokenTTL time.Duration
}

func NewAuthService(jwtSecret string, signupTokenTTL, sessionTokenTTL time.Duration) AuthService {
	return &authService{
		jwtSecret:       []byte(jwtSecret),
		signupTokenTTL:  signupTokenTTL,
		sessionTokenTTL: sessionTokenTTL,
	}
}

func (s *authService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *authService) GenerateSignupToken(userID domain.UserID, role domain.UserRole) (string, error) {
	return s.generateToken(userID, role, s.signupTokenTTL)
}

func (s *authService) GenerateSessionToken(userID domain.UserID, role domain.UserRole) (string, error) {
	return s.generateToken(userID, role, s.sessionTokenTTL)
}

func (s *authService) generateToken(userID domain.UserID, role domain.UserRole, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
