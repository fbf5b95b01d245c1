package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"testpro/internal/config"
	"testpro/internal/domain"
)

const tokenAudience = "testpro-api"

// Claims represents the JWT claims carried by catalog users.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID       `json:"user_id"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
}

// Viewer converts the claims into the catalog's view of the caller.
func (c *Claims) Viewer() domain.Viewer {
	return domain.Viewer{UserID: c.UserID, Name: c.Name, Role: c.Role}
}

// IssuedToken is a signed access token.
type IssuedToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService defines the token contract. Users live in an external identity
// provider; this service only signs and verifies tokens.
type AuthService interface {
	GenerateToken(userID uuid.UUID, name string, role domain.UserRole) (*IssuedToken, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) GenerateToken(userID uuid.UUID, name string, role domain.UserRole) (*IssuedToken, error) {
	if !domain.ValidUserRoles[role] || role == domain.RoleGuest {
		return nil, fmt.Errorf("auth.GenerateToken: role %q: %w", role, domain.ErrInvalidInput)
	}

	now := s.now()
	expiry := now.Add(s.cfg.Expiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{tokenAudience},
		},
		UserID: userID,
		Name:   name,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &IssuedToken{AccessToken: signed, ExpiresAt: expiry}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithAudience(tokenAudience),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", domain.ErrUnauthorized)
	}
	if !token.Valid || claims.UserID == uuid.Nil || !domain.ValidUserRoles[claims.Role] {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
