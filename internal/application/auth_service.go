package application

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/internal/domain/service"
)

var (
	ErrCredentialsRequired = apperr.Validation("Username and password are required")
	ErrNewPasswordRequired = apperr.Validation("Username and new password are required")
	ErrUsernameTaken       = apperr.Conflict("Username already exists")
	ErrInvalidCredentials  = apperr.Authentication("Invalid username or password")
	ErrUserNotFound        = apperr.NotFound("User not found")
	ErrPasswordTooLong     = apperr.Validation("Password must be at most 72 bytes")
)

// bcrypt only keys on the first 72 bytes and refuses longer input.
const maxPasswordBytes = 72

// AuthService handles registration, login and password reset. It holds no
// session state; login only proves the credentials.
type AuthService struct {
	Repo     repo.UserRepository
	Hasher   service.PasswordHasher
	Notifier service.Notifier
	Logger   *logrus.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo repo.UserRepository, hasher service.PasswordHasher, notifier service.Notifier, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Hasher: hasher, Notifier: notifier, Logger: logger}
}

// Register creates a user and returns its id.
func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ErrCredentialsRequired
	}
	if len(password) > maxPasswordBytes {
		return 0, ErrPasswordTooLong
	}
	_, err := s.Repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return 0, ErrUsernameTaken
	case !errors.Is(err, repo.ErrNotFound):
		return 0, apperr.IO("lookup user", err)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, apperr.IO("hash password", err)
	}
	id, err := s.Repo.Create(ctx, username, hash)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repo.ErrAlreadyExists) {
			return 0, ErrUsernameTaken
		}
		return 0, apperr.IO("create user", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user registered")
	}
	return id, nil
}

// Login verifies the credentials and returns the user id. Unknown usernames
// and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ErrCredentialsRequired
	}
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// burn a comparison so response time does not reveal the miss
			s.Hasher.Check(password, s.dummy())
			return 0, ErrInvalidCredentials
		}
		return 0, apperr.IO("lookup user", err)
	}
	if !s.Hasher.Check(password, u.PasswordHash) {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}

// ResetPassword overwrites the password of username. No proof of the old
// password is required: anyone who knows a username can reset it.
func (s *AuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return ErrNewPasswordRequired
	}
	if len(newPassword) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return apperr.IO("lookup user", err)
	}
	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return apperr.IO("hash password", err)
	}
	if err := s.Repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return apperr.IO("update password", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Warn("password reset without prior credential check")
	}

	if u.Email != nil && *u.Email != "" {
		s.notify(ctx, service.Notification{Type: service.NotifyPasswordChanged, To: *u.Email, Username: u.Username})
	}
	return nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("saffco-login-timing-placeholder")
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).Warn("build login timing hash failed")
			}
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func (s *AuthService) notify(ctx context.Context, n service.Notification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("type", n.Type).Warn("enqueue notification failed")
	}
}
