package usecase

import (
	"context"

	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/listing"
	"jobboard/internal/repository"
)

type ListingUsecase interface {
	Mine(ctx context.Context, citizenID ids.CitizenID) ([]listing.Listing, error)
}

type Listings struct {
	repo repository.ListingRepository
}

func NewListingUsecase(repo repository.ListingRepository) *Listings {
	return &Listings{repo: repo}
}

func (u *Listings) Mine(ctx context.Context, citizenID ids.CitizenID) ([]listing.Listing, error) {
	items, err := u.repo.FindByCitizen(ctx, citizenID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

var _ ListingUsecase = (*Listings)(nil)
