package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/success"
	"jobboard/internal/repository"
)

type stubSuccessRepo struct {
	stories map[ids.SuccessID]success.Story
	created *success.Story
	updated *success.Story
}

func (s *stubSuccessRepo) FindByID(ctx context.Context, id ids.SuccessID) (success.Story, error) {
	if st, ok := s.stories[id]; ok {
		return st, nil
	}
	return success.Story{}, repository.ErrStoryNotFound
}

func (s *stubSuccessRepo) List(ctx context.Context) ([]repository.StoryListRow, error) {
	return nil, nil
}

func (s *stubSuccessRepo) Create(ctx context.Context, st success.Story) error {
	s.created = &st
	return nil
}

func (s *stubSuccessRepo) Update(ctx context.Context, st success.Story) error {
	s.updated = &st
	return nil
}

func TestSaveStoryMintsIDForNewSubmission(t *testing.T) {
	repo := &stubSuccessRepo{stories: map[ids.SuccessID]success.Story{}}
	uc := NewSuccessUsecase(repo)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	author := mustCitizenID(t)

	err := uc.Save(context.Background(), author, StoryInput{ID: NewStoryID, FromHere: true, Story: "Hired!"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.created == nil {
		t.Fatalf("new submission must create a story")
	}
	if repo.created.ID == ids.SuccessID("") || repo.created.ID.String() == NewStoryID {
		t.Fatalf("story must get a fresh id, got %q", repo.created.ID)
	}
	if repo.created.CitizenID != author || !repo.created.FromHere {
		t.Fatalf("unexpected story %+v", repo.created)
	}
	if !repo.created.RecordedOn.Equal(uc.now()) {
		t.Fatalf("recorded-on must come from the clock, got %v", repo.created.RecordedOn)
	}
}

func TestSaveStoryOwnerOnly(t *testing.T) {
	owner := mustCitizenID(t)
	intruder := mustCitizenID(t)
	id, err := ids.NewSuccessID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	repo := &stubSuccessRepo{stories: map[ids.SuccessID]success.Story{
		id: {ID: id, CitizenID: owner, FromHere: false},
	}}
	uc := NewSuccessUsecase(repo)

	err = uc.Save(context.Background(), intruder, StoryInput{ID: id.String(), FromHere: true})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("a foreign story must not be updated")
	}

	if err := uc.Save(context.Background(), owner, StoryInput{ID: id.String(), FromHere: true, Story: "Updated"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updated == nil || !repo.updated.FromHere || repo.updated.Story != "Updated" {
		t.Fatalf("owner update must persist, got %+v", repo.updated)
	}
}

func TestSaveStoryUnknownID(t *testing.T) {
	repo := &stubSuccessRepo{stories: map[ids.SuccessID]success.Story{}}
	uc := NewSuccessUsecase(repo)

	id, err := ids.NewSuccessID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.Save(context.Background(), mustCitizenID(t), StoryInput{ID: id.String()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
