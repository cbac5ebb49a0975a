package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pathway-infinity/pathway-api/internal/model"
	"github.com/pathway-infinity/pathway-api/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	passwordHashCost  = 12
	minPasswordLength = 8
	// bcrypt only hashes the first 72 bytes and rejects longer input
	maxPasswordBytes  = 72
)

var (
	ErrMissingCredentials = &AppError{Kind: KindValidation, Message: "Email and password are required"}
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = &AppError{Kind: KindUnauthenticated, Message: "Invalid credentials"}
	ErrEmailTaken         = &AppError{Kind: KindValidation, Message: "Email already registered"}
	ErrPasswordTooLong    = &AppError{Kind: KindValidation, Message: "Password must be at most 72 bytes"}
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users     repository.UserRepository
	cost      int
	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users, cost: passwordHashCost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, NewValidationError("Missing required fields")
	}
	if !strings.Contains(email, "@") {
		return nil, NewValidationError("Invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, NewValidationError("Password must be at least 8 characters")
	}
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapError(KindInternal, "Registration failed", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, wrapError(KindInternal, "Registration failed", err)
	}
	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, wrapError(KindInternal, "Registration failed", err)
	}
	log.Info().Str("user_id", user.ID).Msg("AuthService: user registered")
	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapError(KindInternal, "Login failed", err)
	}
	if user == nil {
		// compare anyway so unknown emails take as long as wrong passwords
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewUnauthenticatedError("Unauthorized")
	}
	if err != nil {
		return nil, wrapError(KindInternal, "Failed to load user", err)
	}
	return user, nil
}

func (s *authService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pathway-dummy-password"), s.cost)
	})
	return s.dummyHash
}
