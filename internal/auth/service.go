package auth

import (
	"log/slog"
	"strconv"

	"github.com/frizen94/ERPRO/internal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = internal.NewUnauthorizedError("invalid email or password", internal.ErrCodeInvalidCredentials)
	ErrUserInactive       = internal.NewForbiddenError("user account is inactive", internal.ErrCodeUserInactive)
	ErrInvalidToken       = internal.NewUnauthorizedError("invalid token", internal.ErrCodeInvalidToken)
)

// Repository loads operator accounts for authentication.
type Repository interface {
	GetByEmail(email string) (*UserRecord, error)
	GetByID(id int64) (*UserRecord, error)
}

type Service struct {
	repo   Repository
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(repo Repository, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

func (s *Service) Authenticate(dto LoginDTO) (*AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: user lookup", "email", dto.Email, "error", err)
		return nil, ErrInvalidCredentials
	}
	if record == nil {
		return nil, ErrInvalidCredentials
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", record.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(record)
}

func (s *Service) RefreshTokens(refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	record, err := s.repo.GetByID(userID)
	if err != nil || record == nil {
		return nil, ErrInvalidToken
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}

	return s.issueTokens(record)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser loads the operator for validated claims, used by the auth
// middleware to build the request context user.
func (s *Service) ResolveUser(claims *Claims) (*User, error) {
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	record, err := s.repo.GetByID(userID)
	if err != nil || record == nil {
		return nil, ErrInvalidToken
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}

	return &User{
		ID:      record.ID,
		Email:   record.Email,
		Name:    record.Name,
		IsAdmin: record.IsAdmin,
	}, nil
}

func (s *Service) issueTokens(record *UserRecord) (*AuthTokens, error) {
	access, err := s.tokens.GenerateAccessToken(record.ID, record.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(record.ID, record.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to generate refresh token", err)
	}
	return &AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
