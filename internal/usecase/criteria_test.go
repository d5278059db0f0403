package usecase

import (
	"errors"
	"testing"

	"jobboard/internal/domain/ids"
)

func TestProfileSearchCriteriaIsEmpty(t *testing.T) {
	if !(ProfileSearchCriteria{}).IsEmpty() {
		t.Fatalf("zero criteria must be empty")
	}
	if (ProfileSearchCriteria{Skill: "go"}).IsEmpty() {
		t.Fatalf("criteria with a skill filter must not be empty")
	}
	if (ProfileSearchCriteria{RemoteWork: RemoteWorkYes}).IsEmpty() {
		t.Fatalf("criteria with a remote-work filter must not be empty")
	}
}

func TestPublicSearchCriteriaIsEmpty(t *testing.T) {
	if !(PublicSearchCriteria{}).IsEmpty() {
		t.Fatalf("zero criteria must be empty")
	}
	if (PublicSearchCriteria{Region: "Berlin"}).IsEmpty() {
		t.Fatalf("criteria with a region filter must not be empty")
	}
}

func TestNormalizeRemoteWork(t *testing.T) {
	if v, err := normalizeRemoteWork(RemoteWorkUnset); err != nil || v != nil {
		t.Fatalf("blank literal must mean no filter, got %v, %v", v, err)
	}

	v, err := normalizeRemoteWork(RemoteWorkYes)
	if err != nil || v == nil || !*v {
		t.Fatalf("expected true filter, got %v, %v", v, err)
	}

	v, err = normalizeRemoteWork(RemoteWorkNo)
	if err != nil || v == nil || *v {
		t.Fatalf("expected false filter, got %v, %v", v, err)
	}

	if _, err := normalizeRemoteWork("maybe"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown literal, got %v", err)
	}
}

func TestNormalizeContinent(t *testing.T) {
	if id, err := normalizeContinent(""); err != nil || id != nil {
		t.Fatalf("blank continent must mean no filter, got %v, %v", id, err)
	}

	valid, err := ids.NewContinentID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	id, err := normalizeContinent(valid.String())
	if err != nil || id == nil || *id != valid {
		t.Fatalf("expected parsed continent id, got %v, %v", id, err)
	}

	if _, err := normalizeContinent("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed id, got %v", err)
	}
}

func TestProfileCriteriaNormalizePreservesText(t *testing.T) {
	c := ProfileSearchCriteria{Skill: " Go ", BioExperience: "distributed"}
	normalized, err := c.normalize()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if normalized.Skill != " Go " {
		t.Fatalf("skill text must pass through unchanged, got %q", normalized.Skill)
	}
	if normalized.BioExperience != "distributed" {
		t.Fatalf("bio text must pass through unchanged, got %q", normalized.BioExperience)
	}
	if normalized.ContinentID != nil || normalized.RemoteWork != nil {
		t.Fatalf("unset filters must stay nil")
	}
}
