package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumina/internal/config"
	"lumina/internal/domain"
	"lumina/internal/dto"
	"lumina/internal/logger"
	"lumina/internal/validation"
)

const tokenTypeAccess = "access"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// userNamespace scopes the name-based user ids derived from email addresses.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("lumina.app"))

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Login(ctx context.Context, name, email string) (accessToken string, user *domain.UserProfile, err error)
	CreateJWT(userID string) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	// Logout removes the learner's enrolled courses and profile.
	Logout(ctx context.Context, userID string) error
}

type authServiceImpl struct {
	courses   domain.CourseRepository
	profiles  ProfileService
	jwtCfg    config.JWTConfig
	validator *validation.Validator
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(courses domain.CourseRepository, profiles ProfileService, jwtCfg config.JWTConfig) (AuthService, error) {
	if len(jwtCfg.SecretKey) < config.MinJWTSecretLength {
		return nil, fmt.Errorf("jwt secret key must be at least %d bytes long", config.MinJWTSecretLength)
	}
	return &authServiceImpl{
		courses:   courses,
		profiles:  profiles,
		jwtCfg:    jwtCfg,
		validator: validation.NewValidator(),
		now:       time.Now,
	}, nil
}

// UserIDForEmail derives the stable user id of an email address.
func UserIDForEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return uuid.NewSHA1(userNamespace, []byte(normalized)).String()
}

func (s *authServiceImpl) Login(ctx context.Context, name, email string) (string, *domain.UserProfile, error) {
	if verrs := s.validator.ValidateLogin(name, email); len(verrs) > 0 {
		return "", nil, verrs
	}

	userID := UserIDForEmail(email)
	profile, err := s.profiles.EnsureProfile(ctx, userID, name, email)
	if err != nil {
		return "", nil, err
	}

	token, err := s.CreateJWT(userID)
	if err != nil {
		return "", nil, domain.NewInternalError("Failed to create access token", err)
	}

	logger.Get().Info("User logged in", zap.String("user_id", userID), zap.Bool("onboarded", profile.Onboarded))
	return token, profile, nil
}

func (s *authServiceImpl) CreateJWT(userID string) (string, error) {
	now := s.now()
	claims := dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("%w: unexpected token type %q", ErrInvalidJWTToken, claims.TokenType)
	}
	return claims, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.courses.Clear(ctx, userID); err != nil {
		return domain.NewInternalError("Failed to clear courses", err)
	}
	if err := s.profiles.DeleteProfile(ctx, userID); err != nil {
		return err
	}
	logger.Get().Info("User logged out", zap.String("user_id", userID))
	return nil
}
