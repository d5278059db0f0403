package usecase

import (
	"context"
	"time"

	"jobboard/internal/domain/citizen"
	"jobboard/internal/repository"
)

const (
	continentCacheKey = "continents:all"
	continentCacheTTL = time.Hour
)

type ContinentUsecase interface {
	All(ctx context.Context) ([]citizen.Continent, error)
}

type Continents struct {
	repo  repository.ContinentRepository
	cache Cache
}

func NewContinentUsecase(repo repository.ContinentRepository, cache Cache) *Continents {
	return &Continents{repo: repo, cache: cache}
}

// All returns the static continent set, served from cache when possible. The
// rows never change after seeding, so a long TTL is fine.
func (u *Continents) All(ctx context.Context) ([]citizen.Continent, error) {
	if u.cache != nil {
		var cached []citizen.Continent
		if hit, err := u.cache.GetJSON(ctx, continentCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	continents, err := u.repo.All(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, continentCacheKey, continents, continentCacheTTL)
	}
	return continents, nil
}

var _ ContinentUsecase = (*Continents)(nil)
