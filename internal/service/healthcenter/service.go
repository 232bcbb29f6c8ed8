package healthcenter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/repository"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
)

const (
	centerListKey   = "health_centers"
	centerListTTL   = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

type HealthCenterService interface {
	Seed(ctx context.Context) error
	FirstOrDefault(ctx context.Context) (*model.HealthCenter, error)
	Find(ctx context.Context, userLocation string) ([]*model.HealthCenter, error)
}

type Service struct {
	repo    repository.HealthCenterRepository
	matcher LocationMatcher
	cache   *gocache.Cache
}

func NewService(repo repository.HealthCenterRepository, matcher LocationMatcher) *Service {
	return &Service{
		repo:    repo,
		matcher: matcher,
		cache:   gocache.New(centerListTTL, cleanupInterval),
	}
}

// defaultCenters are inserted once when the table is empty.
func defaultCenters() []*model.HealthCenter {
	return []*model.HealthCenter{
		{Base: model.Base{ID: uuid.New()}, Name: "City Hospital", Location: "456 Main St, Lagos"},
		{Base: model.Base{ID: uuid.New()}, Name: "Community Clinic", Location: "789 Side Rd, Abuja"},
		{Base: model.Base{ID: uuid.New()}, Name: "Rural Health Center", Location: "101 Back Rd, Port Harcourt"},
	}
}

// Seed inserts the fixed health centers iff the table is empty, so it is
// idempotent across restarts.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count health centers: %w", err)
	}
	if count > 0 {
		return nil
	}

	centers := defaultCenters()
	if err := s.repo.Seed(ctx, centers); err != nil {
		return fmt.Errorf("failed to seed health centers: %w", err)
	}

	log.Info().Int("count", len(centers)).Msg("seeded health centers")
	s.cache.Delete(centerListKey)
	return nil
}

// FirstOrDefault returns the first health center, lazily creating a
// fallback clinic when none exist.
func (s *Service) FirstOrDefault(ctx context.Context) (*model.HealthCenter, error) {
	center, err := s.repo.First(ctx)
	if err == nil {
		return center, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	center = &model.HealthCenter{
		Base:     model.Base{ID: uuid.New()},
		Name:     "Default Clinic",
		Location: "Unknown",
	}
	if err := s.repo.Create(ctx, center); err != nil {
		return nil, fmt.Errorf("failed to create default clinic: %w", err)
	}

	s.cache.Delete(centerListKey)
	return center, nil
}

// Find lists all health centers, filtered to those the matcher scores
// below the threshold when a user location is given.
func (s *Service) Find(ctx context.Context, userLocation string) ([]*model.HealthCenter, error) {
	centers, err := s.listCached(ctx)
	if err != nil {
		return nil, err
	}

	if userLocation == "" {
		return centers, nil
	}

	nearby := make([]*model.HealthCenter, 0, len(centers))
	for _, center := range centers {
		if s.matcher.Score(userLocation, center.Location) < MatchThreshold {
			nearby = append(nearby, center)
		}
	}
	return nearby, nil
}

func (s *Service) listCached(ctx context.Context) ([]*model.HealthCenter, error) {
	if cached, ok := s.cache.Get(centerListKey); ok {
		return cached.([]*model.HealthCenter), nil
	}

	centers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(centerListKey, centers, gocache.DefaultExpiration)
	return centers, nil
}
