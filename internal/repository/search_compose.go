package repository

import (
	"fmt"
	"strings"
)

// The search queries are assembled from a list of predicates built up
// functionally from the normalized criteria, then folded into one statement.
// Keeping the fold in one place keeps the candidate-set combination decision
// (union, see unionCandidates) explicit instead of scattered.

type predicate struct {
	clause string
	arg    any
}

func (p predicate) render(n int) (string, any) {
	return fmt.Sprintf(p.clause, n), p.arg
}

func foldPredicates(base string, hasWhere bool, preds []predicate) (string, []any) {
	if len(preds) == 0 {
		return base, nil
	}

	var sb strings.Builder
	sb.WriteString(base)
	args := make([]any, 0, len(preds))
	for i, p := range preds {
		if i == 0 && !hasWhere {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		clause, arg := p.render(len(args) + 1)
		sb.WriteString(clause)
		args = append(args, arg)
	}
	return sb.String(), args
}

// unionCandidates merges the candidate citizen-ID sets produced by the
// individual free-text filters. Union, not intersection: supplying both a
// skill and a bio/experience term widens the match to citizens hit by either
// term. This reproduces the behavior of the system this one replaces; see
// DESIGN.md for the recorded decision.
func unionCandidates(sets ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, set := range sets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

const profileSearchBase = `SELECT p.citizen_id, c.account, COALESCE(c.display_name, ''), COALESCE(c.real_name, ''),
       p.seeking_employment, p.remote_work, p.full_time, p.last_updated_on
FROM profiles p
JOIN citizens c ON c.id = p.citizen_id`

func composeProfileSearch(c ProfileCriteria, candidates []string, hasTextFilter bool) (string, []any) {
	var preds []predicate
	if c.ContinentID != nil {
		preds = append(preds, predicate{clause: "p.continent_id = $%d", arg: c.ContinentID.String()})
	}
	if c.RemoteWork != nil {
		preds = append(preds, predicate{clause: "p.remote_work = $%d", arg: *c.RemoteWork})
	}
	if hasTextFilter {
		preds = append(preds, predicate{clause: "p.citizen_id = ANY($%d::text[])", arg: candidates})
	}
	return foldPredicates(profileSearchBase, false, preds)
}

const publicSearchBase = `SELECT p.citizen_id, ct.name, p.region, p.remote_work
FROM profiles p
JOIN continents ct ON ct.id = p.continent_id
WHERE p.is_public = TRUE`

func composePublicSearch(c PublicCriteria, candidates []string, hasTextFilter bool) (string, []any) {
	var preds []predicate
	if c.ContinentID != nil {
		preds = append(preds, predicate{clause: "p.continent_id = $%d", arg: c.ContinentID.String()})
	}
	if c.Region != "" {
		preds = append(preds, predicate{clause: "LOWER(p.region) LIKE '%%' || LOWER($%d) || '%%'", arg: c.Region})
	}
	if c.RemoteWork != nil {
		preds = append(preds, predicate{clause: "p.remote_work = $%d", arg: *c.RemoteWork})
	}
	if hasTextFilter {
		preds = append(preds, predicate{clause: "p.citizen_id = ANY($%d::text[])", arg: candidates})
	}
	return foldPredicates(publicSearchBase, true, preds)
}
