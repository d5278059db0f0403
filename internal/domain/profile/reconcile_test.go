package profile

import (
	"errors"
	"testing"

	"jobboard/internal/domain/ids"
)

func TestResolveSkills_MintsForNewSentinel(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	skills, err := ResolveSkills(cid, []SkillEntry{
		{ID: "new", Description: "Go", Notes: "5y"},
		{ID: "new-1", Description: "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	for _, s := range skills {
		if _, err := ids.ParseSkillID(s.ID.String()); err != nil {
			t.Fatalf("minted id %q does not parse: %v", s.ID, err)
		}
		if s.CitizenID != cid {
			t.Fatalf("skill not bound to owning citizen")
		}
	}
	if skills[0].ID == skills[1].ID {
		t.Fatalf("minted ids collide")
	}
}

func TestResolveSkills_KeepsExistingID(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	existing, _ := ids.NewSkillID()
	skills, err := ResolveSkills(cid, []SkillEntry{{ID: existing.String(), Description: "Go"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if skills[0].ID != existing {
		t.Fatalf("expected %q, got %q", existing, skills[0].ID)
	}
}

func TestResolveSkills_MalformedIDRejectsWholeList(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	_, err := ResolveSkills(cid, []SkillEntry{
		{ID: "new", Description: "Go"},
		{ID: "nope!", Description: "Rust"},
	})
	if !errors.Is(err, ids.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestDiffSkills_Partition(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	kept, _ := ids.NewSkillID()
	gone, _ := ids.NewSkillID()
	added, _ := ids.NewSkillID()

	diff := DiffSkills(
		[]ids.SkillID{kept, gone},
		[]Skill{
			{ID: kept, CitizenID: cid, Description: "Go", Notes: "updated"},
			{ID: added, CitizenID: cid, Description: "Rust"},
		},
	)

	if len(diff.ToInsert) != 1 || diff.ToInsert[0].ID != added {
		t.Fatalf("unexpected inserts: %+v", diff.ToInsert)
	}
	if len(diff.ToUpdate) != 1 || diff.ToUpdate[0].ID != kept {
		t.Fatalf("unexpected updates: %+v", diff.ToUpdate)
	}
	if len(diff.ToDelete) != 1 || diff.ToDelete[0] != gone {
		t.Fatalf("unexpected deletes: %+v", diff.ToDelete)
	}
}

func TestDiffSkills_Idempotent(t *testing.T) {
	cid, _ := ids.NewCitizenID()
	id, _ := ids.NewSkillID()
	target := []Skill{{ID: id, CitizenID: cid, Description: "Go", Notes: "5y"}}

	first := DiffSkills(nil, target)
	if len(first.ToInsert) != 1 || len(first.ToUpdate) != 0 || len(first.ToDelete) != 0 {
		t.Fatalf("unexpected first diff: %+v", first)
	}

	// Re-submitting the identical resulting set: no inserts, no deletes.
	second := DiffSkills([]ids.SkillID{id}, target)
	if len(second.ToInsert) != 0 || len(second.ToDelete) != 0 {
		t.Fatalf("reconciliation not idempotent: %+v", second)
	}
	if len(second.ToUpdate) != 1 || second.ToUpdate[0].Description != "Go" {
		t.Fatalf("update should restate identical content: %+v", second.ToUpdate)
	}
}

func TestDiffSkills_EmptySubmissionLeavesPersistedSkills(t *testing.T) {
	a, _ := ids.NewSkillID()
	b, _ := ids.NewSkillID()

	diff := DiffSkills([]ids.SkillID{a, b}, nil)
	if len(diff.ToDelete) != 0 {
		t.Fatalf("empty submission must not delete, got %+v", diff.ToDelete)
	}
	if len(diff.ToInsert) != 0 || len(diff.ToUpdate) != 0 {
		t.Fatalf("empty submission must be a no-op, got %+v", diff)
	}
}
