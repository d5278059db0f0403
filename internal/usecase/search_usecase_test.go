package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"
	"jobboard/internal/repository"
)

type stubSearchRepo struct {
	profileCriteria *repository.ProfileCriteria
	publicCriteria  *repository.PublicCriteria

	profileRows []repository.ProfileSearchRow
	publicRows  []repository.PublicSearchRow
	err         error
}

func (s *stubSearchRepo) SearchProfiles(ctx context.Context, c repository.ProfileCriteria) ([]repository.ProfileSearchRow, error) {
	s.profileCriteria = &c
	return s.profileRows, s.err
}

func (s *stubSearchRepo) SearchPublicProfiles(ctx context.Context, c repository.PublicCriteria) ([]repository.PublicSearchRow, error) {
	s.publicCriteria = &c
	return s.publicRows, s.err
}

func mustCitizenID(t *testing.T) ids.CitizenID {
	t.Helper()
	id, err := ids.NewCitizenID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return id
}

func TestSearchProfilesEmptyCriteriaMatchesEverything(t *testing.T) {
	repo := &stubSearchRepo{}
	uc := NewSearchUsecase(repo, nil)

	if _, err := uc.SearchProfiles(context.Background(), ProfileSearchCriteria{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.profileCriteria == nil || !repo.profileCriteria.IsEmpty() {
		t.Fatalf("empty input must reach the repository as empty criteria")
	}
}

func TestSearchProfilesInvalidRemoteWorkRejected(t *testing.T) {
	repo := &stubSearchRepo{}
	uc := NewSearchUsecase(repo, nil)

	_, err := uc.SearchProfiles(context.Background(), ProfileSearchCriteria{RemoteWork: "maybe"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.profileCriteria != nil {
		t.Fatalf("repository must not be consulted on invalid input")
	}
}

func TestSearchProfilesNameFallback(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubSearchRepo{profileRows: []repository.ProfileSearchRow{
		{CitizenID: mustCitizenID(t), Account: "alice", RealName: "Alice Real", DisplayName: "Ally", LastUpdatedOn: updated},
		{CitizenID: mustCitizenID(t), Account: "bob", DisplayName: "Bobby"},
		{CitizenID: mustCitizenID(t), Account: "carol"},
	}}
	uc := NewSearchUsecase(repo, nil)

	results, err := uc.SearchProfiles(context.Background(), ProfileSearchCriteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].CitizenName != "Alice Real" {
		t.Fatalf("real name wins, got %q", results[0].CitizenName)
	}
	if results[1].CitizenName != "Bobby" {
		t.Fatalf("display name is the second choice, got %q", results[1].CitizenName)
	}
	if results[2].CitizenName != "carol" {
		t.Fatalf("account handle is the last resort, got %q", results[2].CitizenName)
	}
	if !results[0].LastUpdatedOn.Equal(updated) {
		t.Fatalf("last-updated must pass through, got %v", results[0].LastUpdatedOn)
	}
}

func TestSearchPublicProfilesStaysAnonymous(t *testing.T) {
	repo := &stubSearchRepo{publicRows: []repository.PublicSearchRow{
		{
			CitizenID:  mustCitizenID(t),
			Continent:  "Europe",
			Region:     "Berlin",
			RemoteWork: true,
			Skills: []profile.Skill{
				{Description: "Go"},
				{Description: "SQL", Notes: "window functions"},
			},
		},
	}}
	uc := NewSearchUsecase(repo, nil)

	results, err := uc.SearchPublicProfiles(context.Background(), PublicSearchCriteria{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Continent != "Europe" || r.Region != "Berlin" || !r.RemoteWork {
		t.Fatalf("unexpected projection: %+v", r)
	}
	if len(r.Skills) != 2 || r.Skills[0] != "Go" || r.Skills[1] != "SQL (window functions)" {
		t.Fatalf("skill formatting wrong: %v", r.Skills)
	}
}

func TestSearchPublicProfilesWritesThroughCache(t *testing.T) {
	repo := &stubSearchRepo{}
	c := newFakeCache()
	uc := NewSearchUsecase(repo, c)

	if _, err := uc.SearchPublicProfiles(context.Background(), PublicSearchCriteria{Skill: "go"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.gets != 1 || c.sets != 1 {
		t.Fatalf("expected one cache read and one write, got %d/%d", c.gets, c.sets)
	}
}

func TestSearchRepositoryFailureMasked(t *testing.T) {
	repo := &stubSearchRepo{err: errors.New("connection refused")}
	uc := NewSearchUsecase(repo, nil)

	if _, err := uc.SearchProfiles(context.Background(), ProfileSearchCriteria{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
