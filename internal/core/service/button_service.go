package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
	"github.com/Asfa64/DOC-ASFA/internal/core/ports"
)

// ButtonService implements launcher-button operations on top of the
// repository and the TTL cache. Reads prefer the cache; every mutation
// invalidates it so the next read refetches.
type ButtonService struct {
	repo   ports.ButtonRepository
	cache  ports.ButtonCache
	logger zerolog.Logger
}

func NewButtonService(repo ports.ButtonRepository, cache ports.ButtonCache, logger zerolog.Logger) *ButtonService {
	return &ButtonService{repo: repo, cache: cache, logger: logger}
}

// ListAll returns every launcher button, serving from the cache when it is
// fresh. Cache backend errors degrade to a repository read.
func (s *ButtonService) ListAll(ctx context.Context) ([]domain.Button, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("button cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	buttons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, buttons); err != nil {
		s.logger.Warn().Err(err).Msg("button cache write failed")
	}
	return buttons, nil
}

// ListVisible applies the profile access filter for the principal's home
// grid. Principals without a profile (admins) see nothing here.
func (s *ButtonService) ListVisible(ctx context.Context, principal *domain.User) ([]domain.Button, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.VisibleButtons(all, principal), nil
}

// Create adds a launcher button. The system-wide cap is checked against
// the current list before the insert is attempted, so a full grid never
// reaches the store with a mutation.
func (s *ButtonService) Create(ctx context.Context, input ports.CreateButtonInput) (*domain.Button, error) {
	if err := input.Link.Validate(); err != nil {
		return nil, err
	}

	shape := input.Shape
	if shape == "" {
		shape = domain.ShapeRounded
	}
	if !shape.IsValid() {
		return nil, domain.ErrInvalidShape
	}
	color := input.Color
	if color == "" {
		color = domain.DefaultButtonColor
	}

	existing, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) >= domain.MaxButtons {
		return nil, domain.ErrButtonLimit
	}

	button := &domain.Button{
		Title:      input.Title,
		Color:      color,
		Shape:      shape,
		Tooltip:    input.Tooltip,
		Link:       input.Link,
		ProfileIDs: input.ProfileIDs,
	}
	if button.ProfileIDs == nil {
		button.ProfileIDs = []string{}
	}

	created, err := s.repo.Create(ctx, button)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("button_id", created.ID).Str("kind", string(created.Link.Kind)).Msg("button created")
	return created, nil
}

// Update applies a partial update and invalidates the cache.
func (s *ButtonService) Update(ctx context.Context, id string, update ports.UpdateButtonInput) error {
	if update.Link != nil {
		if err := update.Link.Validate(); err != nil {
			return err
		}
	}
	if update.Shape != nil && !update.Shape.IsValid() {
		return domain.ErrInvalidShape
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("button_id", id).Msg("button updated")
	return nil
}

func (s *ButtonService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("button_id", id).Msg("button deleted")
	return nil
}

// Resolve maps a viewer url parameter back to the link of a button the
// principal can see, so the viewer only ever embeds targets the principal
// was shown. Admins resolve against the full set.
func (s *ButtonService) Resolve(ctx context.Context, url string, principal *domain.User) (*domain.Link, error) {
	var (
		buttons []domain.Button
		err     error
	)
	if principal != nil && principal.IsAdmin() {
		buttons, err = s.ListAll(ctx)
	} else {
		buttons, err = s.ListVisible(ctx, principal)
	}
	if err != nil {
		return nil, err
	}

	for _, b := range buttons {
		switch b.Link.Kind {
		case domain.LinkExternal, domain.LinkDocument:
			if b.Link.URL == url {
				link := b.Link
				return &link, nil
			}
		case domain.LinkPDF:
			if b.Link.Filename == url {
				link := b.Link
				return &link, nil
			}
		}
	}
	return nil, domain.ErrUnknownLinkTarget
}

func (s *ButtonService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("button cache invalidation failed")
	}
}
