package application

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/internal/domain/service"
)

// ProfileFields is the full replacement set for the editable profile columns.
// A nil field is written as NULL: callers that omit a field clear it.
type ProfileFields struct {
	Email   *string
	Phone   *string
	Address *string
}

// Upload is an avatar file received with a profile update.
type Upload struct {
	Filename string
	Body     io.Reader
}

type ProfileService struct {
	Repo     repo.UserRepository
	Stager   service.FileStager
	Notifier service.Notifier
	Logger   *logrus.Logger
}

func NewProfileService(repo repo.UserRepository, stager service.FileStager, notifier service.Notifier, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: repo, Stager: stager, Notifier: notifier, Logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.IO("lookup user", err)
	}
	p := u.Profile()
	return &p, nil
}

// UpdateProfile replaces email, phone and address unconditionally and, when
// upload is set, stores the file and points avatar_path at it. It returns the
// new avatar reference, or nil when no file was sent.
func (s *ProfileService) UpdateProfile(ctx context.Context, username string, fields ProfileFields, upload *Upload) (*string, error) {
	if upload != nil {
		if err := s.Stager.Validate(upload.Filename); err != nil {
			return nil, err
		}
	}

	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.IO("lookup user", err)
	}

	var avatar *string
	if upload != nil {
		ref, err := s.Stager.Stage(ctx, upload.Filename, upload.Body)
		if err != nil {
			return nil, err
		}
		avatar = &ref
	}

	err = s.Repo.UpdateProfile(ctx, username, repo.ProfileUpdate{
		Email:      fields.Email,
		Phone:      fields.Phone,
		Address:    fields.Address,
		AvatarPath: avatar,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.IO("update profile", err)
	}

	s.notifyUpdated(ctx, u, fields, avatar)
	return avatar, nil
}

func (s *ProfileService) notifyUpdated(ctx context.Context, u *entity.User, fields ProfileFields, avatar *string) {
	if s.Notifier == nil {
		return
	}
	to := fields.Email
	if to == nil || *to == "" {
		to = u.Email
	}
	if to == nil || *to == "" {
		return
	}
	changes := map[string]string{
		"email":   valueOrCleared(fields.Email),
		"phone":   valueOrCleared(fields.Phone),
		"address": valueOrCleared(fields.Address),
	}
	if avatar != nil {
		changes["avatar"] = *avatar
	}
	n := service.Notification{Type: service.NotifyProfileUpdated, To: *to, Username: u.Username, Changes: changes}
	if err := s.Notifier.Notify(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("type", n.Type).Warn("enqueue notification failed")
	}
}

func valueOrCleared(v *string) string {
	if v == nil {
		return "(cleared)"
	}
	return *v
}
