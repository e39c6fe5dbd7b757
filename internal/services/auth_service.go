package services

import (
	"strings"

	"tappyid_backend/internal/auth"
	"tappyid_backend/internal/dto"
	"tappyid_backend/internal/metrics"
	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	redirectAdmin     = "/dashboard"
	redirectAssinante = "/assinante/meu-perfil"

	// Shown when a user has no profile yet.
	fallbackDisplayName = "Usuário"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	// VerifyLogin answers "are these credentials valid and where should the
	// client go". It does not issue the session token.
	VerifyLogin(db *gorm.DB, req *dto.VerifyLoginRequest) (*dto.VerifyLoginResponse, error)
	// Login verifies credentials and mints a session token.
	Login(db *gorm.DB, req *dto.VerifyLoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.JWTService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.JWTService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(db, req.Email)
	if err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InternalError(err)
	}
	if exists {
		metrics.AuthRegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAssinante,
	}
	profile := &models.Profile{
		Name:      req.Name,
		Biography: "",
	}

	if err := s.userRepo.CreateWithProfile(db, user, profile); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			metrics.AuthRegistrationsTotal.WithLabelValues("duplicate").Inc()
			return nil, apperrors.ErrDuplicateEmail
		}
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InternalError(err)
	}

	metrics.AuthRegistrationsTotal.WithLabelValues("ok").Inc()
	return userProjection(user), nil
}

func (s *AuthServiceImpl) VerifyLogin(db *gorm.DB, req *dto.VerifyLoginRequest) (*dto.VerifyLoginResponse, error) {
	user, err := s.authenticate(db, req)
	if err != nil {
		return nil, err
	}

	return &dto.VerifyLoginResponse{
		Success:     true,
		User:        *userProjection(user),
		RedirectURL: redirectTarget(user.Role),
	}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.VerifyLoginRequest) (*dto.LoginResponse, error) {
	user, err := s.authenticate(db, req)
	if err != nil {
		return nil, err
	}

	profileID := ""
	if user.Profile != nil {
		profileID = user.Profile.ID
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role, profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token:       token,
		User:        *userProjection(user),
		RedirectURL: redirectTarget(user.Role),
	}, nil
}

func (s *AuthServiceImpl) authenticate(db *gorm.DB, req *dto.VerifyLoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			metrics.AuthLoginsTotal.WithLabelValues("not_found").Inc()
			return nil, apperrors.ErrUserNotFound
		}
		metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.AuthLoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	metrics.AuthLoginsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// redirectTarget maps role to the post-login destination. ADMIN matches
// regardless of case; every other role lands on the subscriber area.
func redirectTarget(role models.UserRole) string {
	if strings.EqualFold(string(role), string(models.UserRoleAdmin)) {
		return redirectAdmin
	}
	return redirectAssinante
}

func userProjection(user *models.User) *dto.UserResponse {
	name := fallbackDisplayName
	if user.Profile != nil && user.Profile.Name != "" {
		name = user.Profile.Name
	}
	return &dto.UserResponse{
		ID:    user.ID,
		Name:  name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
