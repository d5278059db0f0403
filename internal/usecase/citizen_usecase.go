package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/citizen"
	"jobboard/internal/domain/ids"
	"jobboard/internal/infrastructure/identity"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
)

// LogOnResult is returned after a successful authorization-code exchange.
type LogOnResult struct {
	Token       string
	CitizenID   ids.CitizenID
	CitizenName string
}

type CitizenUsecase interface {
	LogOn(ctx context.Context, authCode string) (LogOnResult, error)
	Get(ctx context.Context, rawID string) (citizen.Citizen, error)
	Remove(ctx context.Context, current ids.CitizenID, rawID string) error
}

type Citizens struct {
	db       database.DB
	citizens repository.CitizenRepository
	provider identity.Client
	tokens   jwt.Service

	now func() time.Time
}

func NewCitizenUsecase(db database.DB, citizens repository.CitizenRepository, provider identity.Client, tokens jwt.Service) *Citizens {
	return &Citizens{
		db:       db,
		citizens: citizens,
		provider: provider,
		tokens:   tokens,
		now:      time.Now,
	}
}

// LogOn exchanges the authorization code with the identity provider, creates
// the citizen on first sign-in or refreshes display name and last-seen on a
// return visit, and mints the bearer credential.
func (u *Citizens) LogOn(ctx context.Context, authCode string) (LogOnResult, error) {
	if authCode == "" {
		return LogOnResult{}, fmt.Errorf("%w: authorization code is required", ErrInvalidInput)
	}

	account, err := u.provider.Verify(ctx, authCode)
	if err != nil {
		return LogOnResult{}, fmt.Errorf("%w: identity verification failed: %v", ErrInvalidInput, err)
	}

	now := u.now().UTC()
	c, err := u.citizens.FindByAccount(ctx, account.Username)
	switch {
	case err == nil:
		c.DisplayName = account.DisplayName
		c.LastSeenOn = now
		if err := u.citizens.RefreshOnLogOn(ctx, c.ID, c.DisplayName, c.LastSeenOn); err != nil {
			return LogOnResult{}, ErrInternal
		}
	case errors.Is(err, repository.ErrCitizenNotFound):
		id, err := ids.NewCitizenID()
		if err != nil {
			return LogOnResult{}, ErrInternal
		}
		c = citizen.Citizen{
			ID:          id,
			Account:     account.Username,
			DisplayName: account.DisplayName,
			ProfileURL:  account.URL,
			JoinedOn:    now,
			LastSeenOn:  now,
		}
		if err := u.citizens.Create(ctx, c); err != nil {
			return LogOnResult{}, ErrInternal
		}
	default:
		return LogOnResult{}, ErrInternal
	}

	token, err := u.tokens.Generate(c.ID, c.Name())
	if err != nil {
		return LogOnResult{}, ErrInternal
	}

	return LogOnResult{Token: token, CitizenID: c.ID, CitizenName: c.Name()}, nil
}

func (u *Citizens) Get(ctx context.Context, rawID string) (citizen.Citizen, error) {
	id, err := ids.ParseCitizenID(rawID)
	if err != nil {
		return citizen.Citizen{}, fmt.Errorf("%w: citizen id: %v", ErrInvalidInput, err)
	}

	c, err := u.citizens.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return citizen.Citizen{}, ErrNotFound
		}
		return citizen.Citizen{}, ErrInternal
	}
	return c, nil
}

// Remove deletes the account and everything hanging off it. A citizen may
// only remove themselves.
func (u *Citizens) Remove(ctx context.Context, current ids.CitizenID, rawID string) error {
	id, err := ids.ParseCitizenID(rawID)
	if err != nil {
		return fmt.Errorf("%w: citizen id: %v", ErrInvalidInput, err)
	}
	if id != current {
		return ErrForbidden
	}

	err = database.WithTx(ctx, u.db, func(q database.Queryer) error {
		return u.citizens.Delete(ctx, q, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

var _ CitizenUsecase = (*Citizens)(nil)
