package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// ProfileService implements the administrative profile operations.
type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

func (s *ProfileService) Create(ctx context.Context, input ports.CreateProfileInput) (*domain.Profile, error) {
	if input.Name == "" {
		return nil, domain.ErrProfileNameRequired
	}

	profile := &domain.Profile{Name: input.Name, Description: input.Description}
	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("profile_id", created.ID).Str("name", created.Name).Msg("profile created")
	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, id string, update ports.UpdateProfileInput) error {
	if update.Name != nil && *update.Name == "" {
		return domain.ErrProfileNameRequired
	}
	return s.repo.Update(ctx, id, update)
}

// Delete removes the profile record only. References from users and
// buttons are left dangling; the access filter never matches them, so the
// affected launchers silently disappear for those accounts.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("profile_id", id).Msg("profile deleted")
	return nil
}
