package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/success"
	"jobboard/internal/repository"
)

// NewStoryID marks a story submission that has not been persisted yet.
const NewStoryID = "new"

type StoryInput struct {
	ID       string
	FromHere bool
	Story    string
}

type SuccessUsecase interface {
	Get(ctx context.Context, rawID string) (success.Story, error)
	List(ctx context.Context) ([]repository.StoryListRow, error)
	Save(ctx context.Context, citizenID ids.CitizenID, in StoryInput) error
}

type Successes struct {
	repo repository.SuccessRepository

	now func() time.Time
}

func NewSuccessUsecase(repo repository.SuccessRepository) *Successes {
	return &Successes{repo: repo, now: time.Now}
}

func (u *Successes) Get(ctx context.Context, rawID string) (success.Story, error) {
	id, err := ids.ParseSuccessID(rawID)
	if err != nil {
		return success.Story{}, fmt.Errorf("%w: story id: %v", ErrInvalidInput, err)
	}

	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return success.Story{}, ErrNotFound
		}
		return success.Story{}, ErrInternal
	}
	return s, nil
}

func (u *Successes) List(ctx context.Context) ([]repository.StoryListRow, error) {
	stories, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return stories, nil
}

func (u *Successes) Save(ctx context.Context, citizenID ids.CitizenID, in StoryInput) error {
	if in.ID == NewStoryID {
		id, err := ids.NewSuccessID()
		if err != nil {
			return ErrInternal
		}
		s := success.Story{
			ID:         id,
			CitizenID:  citizenID,
			RecordedOn: u.now().UTC(),
			FromHere:   in.FromHere,
			Story:      in.Story,
		}
		if err := u.repo.Create(ctx, s); err != nil {
			return ErrInternal
		}
		return nil
	}

	id, err := ids.ParseSuccessID(in.ID)
	if err != nil {
		return fmt.Errorf("%w: story id: %v", ErrInvalidInput, err)
	}

	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if existing.CitizenID != citizenID {
		return ErrForbidden
	}

	existing.FromHere = in.FromHere
	existing.Story = in.Story
	if err := u.repo.Update(ctx, existing); err != nil {
		return ErrInternal
	}
	return nil
}

var _ SuccessUsecase = (*Successes)(nil)
