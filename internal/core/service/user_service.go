package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
	"github.com/Asfa64/DOC-ASFA/pkg/datekey"
)

// UserService implements the administrative account operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create validates the date password up front and stores only its
// normalized form. Accounts with the user role must reference a profile;
// admin accounts may go without (they reach the admin surface instead of
// the filtered grid).
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidUserInput
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
		return nil, domain.ErrInvalidUserInput
	}
	if input.Role == domain.RoleUser && input.ProfileID == "" {
		return nil, domain.ErrProfileRequired
	}
	if !datekey.IsValidCalendarDate(input.Password) {
		return nil, domain.ErrInvalidDateKey
	}

	key, err := datekey.Normalize(input.Password)
	if err != nil {
		return nil, domain.ErrInvalidDateKey
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  key,
		Role:      input.Role,
		ProfileID: input.ProfileID,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
