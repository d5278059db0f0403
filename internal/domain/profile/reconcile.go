package profile

import (
	"strings"

	"jobboard/internal/domain/ids"
)

// NewSkillIDPrefix marks a submitted skill that has not been persisted yet;
// a fresh identifier is minted for it during resolution.
const NewSkillIDPrefix = "new"

// SkillEntry is one row of a submitted skill list, before identifier
// resolution.
type SkillEntry struct {
	ID          string
	Description string
	Notes       string
}

// ResolveSkills turns submitted entries into the target skill set for a
// citizen. Every identifier is validated (or minted for "new" entries) before
// any write happens, so a single malformed ID rejects the whole submission.
func ResolveSkills(citizenID ids.CitizenID, entries []SkillEntry) ([]Skill, error) {
	skills := make([]Skill, 0, len(entries))
	for _, e := range entries {
		var (
			skillID ids.SkillID
			err     error
		)
		if strings.HasPrefix(e.ID, NewSkillIDPrefix) {
			skillID, err = ids.NewSkillID()
		} else {
			skillID, err = ids.ParseSkillID(e.ID)
		}
		if err != nil {
			return nil, err
		}
		skills = append(skills, Skill{
			ID:          skillID,
			CitizenID:   citizenID,
			Description: e.Description,
			Notes:       e.Notes,
		})
	}
	return skills, nil
}

// SkillDiff is the explicit three-set reconciliation plan executed inside the
// profile-save transaction.
type SkillDiff struct {
	ToInsert []Skill
	ToUpdate []Skill
	ToDelete []ids.SkillID
}

// DiffSkills partitions the target set against the persisted IDs. An empty
// target produces no deletions: submitting an empty skill list leaves the
// persisted skills untouched rather than clearing them.
func DiffSkills(persisted []ids.SkillID, target []Skill) SkillDiff {
	existing := make(map[ids.SkillID]struct{}, len(persisted))
	for _, id := range persisted {
		existing[id] = struct{}{}
	}

	var diff SkillDiff
	keep := make(map[ids.SkillID]struct{}, len(target))
	for _, s := range target {
		keep[s.ID] = struct{}{}
		if _, ok := existing[s.ID]; ok {
			diff.ToUpdate = append(diff.ToUpdate, s)
		} else {
			diff.ToInsert = append(diff.ToInsert, s)
		}
	}

	if len(target) == 0 {
		return diff
	}
	for _, id := range persisted {
		if _, ok := keep[id]; !ok {
			diff.ToDelete = append(diff.ToDelete, id)
		}
	}
	return diff
}
