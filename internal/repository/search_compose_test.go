package repository

import (
	"reflect"
	"strings"
	"testing"

	"jobboard/internal/domain/ids"
)

func boolPtr(b bool) *bool { return &b }

func continentPtr(t *testing.T) *ids.ContinentID {
	t.Helper()
	id, err := ids.NewContinentID()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return &id
}

func TestComposeProfileSearch_EmptyCriteria(t *testing.T) {
	query, args := composeProfileSearch(ProfileCriteria{}, nil, false)
	if strings.Contains(query, "WHERE") {
		t.Fatalf("empty criteria must not filter, got: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestComposeProfileSearch_AllFilters(t *testing.T) {
	c := ProfileCriteria{
		ContinentID:   continentPtr(t),
		Skill:         "go",
		BioExperience: "banking",
		RemoteWork:    boolPtr(true),
	}
	candidates := []string{"abcdefghijkl"}
	query, args := composeProfileSearch(c, candidates, true)

	for _, want := range []string{
		"p.continent_id = $1",
		"p.remote_work = $2",
		"p.citizen_id = ANY($3::text[])",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("missing %q in: %s", want, query)
		}
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != c.ContinentID.String() {
		t.Fatalf("continent arg mismatch: %v", args[0])
	}
	if !reflect.DeepEqual(args[2], candidates) {
		t.Fatalf("candidate arg mismatch: %v", args[2])
	}
}

func TestComposeProfileSearch_EmptyCandidateSetStillFilters(t *testing.T) {
	// A supplied text filter that matched nobody must produce zero rows, not
	// fall back to an unfiltered scan.
	query, args := composeProfileSearch(ProfileCriteria{Skill: "cobol"}, []string{}, true)
	if !strings.Contains(query, "p.citizen_id = ANY($1::text[])") {
		t.Fatalf("candidate clause missing: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}

func TestComposePublicSearch_BaseVisibilityAlwaysApplied(t *testing.T) {
	query, _ := composePublicSearch(PublicCriteria{}, nil, false)
	if !strings.Contains(query, "p.is_public = TRUE") {
		t.Fatalf("public base predicate missing: %s", query)
	}

	query, args := composePublicSearch(PublicCriteria{Region: "Texas", RemoteWork: boolPtr(false)}, nil, false)
	if !strings.Contains(query, "p.is_public = TRUE") {
		t.Fatalf("public base predicate lost with filters: %s", query)
	}
	if !strings.Contains(query, "LOWER(p.region) LIKE '%' || LOWER($1) || '%'") {
		t.Fatalf("region clause missing: %s", query)
	}
	if !strings.Contains(query, "p.remote_work = $2") {
		t.Fatalf("remote clause missing: %s", query)
	}
	if len(args) != 2 || args[0] != "Texas" || args[1] != false {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUnionCandidates_DisjointSetsWiden(t *testing.T) {
	a := []string{"aaaaaaaaaaaa", "bbbbbbbbbbbb"}
	b := []string{"cccccccccccc"}
	got := unionCandidates(a, b)
	if len(got) != 3 {
		t.Fatalf("expected union of 3, got %v", got)
	}
}

func TestUnionCandidates_Deduplicates(t *testing.T) {
	a := []string{"aaaaaaaaaaaa", "bbbbbbbbbbbb"}
	b := []string{"bbbbbbbbbbbb", "cccccccccccc"}
	got := unionCandidates(a, b)
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct ids, got %v", got)
	}
}
