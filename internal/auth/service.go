package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates access tokens for workspace users
type AuthService struct {
	config   *AuthConfig
	userRepo repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"7d0b6c9e-3f7a-4e55-9d1e-6a3a7b0c1d2e"`
	WorkspaceID          string `json:"workspace_id" example:"0f4c2a8e-1b2d-4c3e-8f9a-0b1c2d3e4f5a"`
	Email                string `json:"email" example:"jane.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Session converts validated claims into a Session
func (c *AuthClaims) Session() (Session, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Session{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	workspaceID, err := uuid.Parse(c.WorkspaceID)
	if err != nil {
		return Session{}, fmt.Errorf("invalid workspace_id claim: %w", err)
	}
	return Session{UserID: userID, WorkspaceID: workspaceID, Email: c.Email}, nil
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// UserProfile is the public view of the signed-in user
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
}

// LoginResponse represents the response for the login endpoint
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType" example:"bearer"`
	ExpiresIn   int64       `json:"expiresIn" example:"3600"`
	Profile     UserProfile `json:"profile"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, userRepo: userRepo}, nil
}

// Login checks the password against the stored bcrypt hash and issues an access token.
// Unknown emails and wrong passwords return the same error.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	log := logger.WithContext(ctx).WithField("email", req.Email)

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistenceTimeout)
	defer cancel()

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		err = apperrors.FromPersistence("load user", err, apperrors.ErrInvalidCredentials)
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			log.WithError(err).Error("login lookup failed")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info("login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info("login succeeded")
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		Profile: UserProfile{
			ID:          user.ID,
			WorkspaceID: user.WorkspaceID,
			Email:       user.Email,
			Name:        user.Name,
		},
	}, nil
}

// GenerateJWT generates a signed access token for user
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		UserID:      user.ID.String(),
		WorkspaceID: user.WorkspaceID.String(),
		Email:       user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword returns the bcrypt hash stored for a user password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
