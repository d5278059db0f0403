package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/ids"
	"jobboard/internal/domain/profile"
	"jobboard/internal/pkg/markdown"
	"jobboard/internal/repository"
)

// SaveProfileInput is the full profile-plus-skills submission; the profile is
// replaced wholesale and the skill list is reconciled against the persisted
// set.
type SaveProfileInput struct {
	SeekingEmployment bool
	IsPublic          bool
	ContinentID       string
	Region            string
	RemoteWork        bool
	FullTime          bool
	Biography         string
	Experience        string
	Skills            []profile.SkillEntry
}

// ProfileDetail is a profile with its continent resolved and, when rendered
// for display, the rich-text fields converted to HTML.
type ProfileDetail struct {
	Profile        profile.Profile
	ContinentName  string
	BiographyHTML  string
	ExperienceHTML string
	Skills         []profile.Skill
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, citizenID ids.CitizenID) (ProfileDetail, error)
	View(ctx context.Context, rawCitizenID string) (ProfileDetail, error)
	Save(ctx context.Context, citizenID ids.CitizenID, in SaveProfileInput) error
	Skills(ctx context.Context, citizenID ids.CitizenID) ([]profile.Skill, error)
	ProfileCount(ctx context.Context) (int64, error)
	SkillCount(ctx context.Context, citizenID ids.CitizenID) (int64, error)
}

type Profiles struct {
	db         database.DB
	profiles   repository.ProfileRepository
	skills     repository.SkillRepository
	citizens   repository.CitizenRepository
	continents repository.ContinentRepository

	now func() time.Time
}

func NewProfileUsecase(
	db database.DB,
	profiles repository.ProfileRepository,
	skills repository.SkillRepository,
	citizens repository.CitizenRepository,
	continents repository.ContinentRepository,
) *Profiles {
	return &Profiles{
		db:         db,
		profiles:   profiles,
		skills:     skills,
		citizens:   citizens,
		continents: continents,
		now:        time.Now,
	}
}

func (u *Profiles) GetOwn(ctx context.Context, citizenID ids.CitizenID) (ProfileDetail, error) {
	return u.load(ctx, citizenID, false)
}

// View resolves another citizen's profile for display: 404-class error when
// the citizen does not exist at all, empty-body class when they exist but
// have no profile yet.
func (u *Profiles) View(ctx context.Context, rawCitizenID string) (ProfileDetail, error) {
	citizenID, err := ids.ParseCitizenID(rawCitizenID)
	if err != nil {
		return ProfileDetail{}, fmt.Errorf("%w: citizen id: %v", ErrInvalidInput, err)
	}

	if _, err := u.citizens.FindByID(ctx, citizenID); err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return ProfileDetail{}, ErrNotFound
		}
		return ProfileDetail{}, ErrInternal
	}

	return u.load(ctx, citizenID, true)
}

func (u *Profiles) load(ctx context.Context, citizenID ids.CitizenID, render bool) (ProfileDetail, error) {
	p, err := u.profiles.FindByCitizen(ctx, citizenID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ProfileDetail{}, ErrNoProfile
		}
		return ProfileDetail{}, ErrInternal
	}

	continent, err := u.continents.FindByID(ctx, p.ContinentID)
	if err != nil {
		return ProfileDetail{}, ErrInternal
	}

	skills, err := u.skills.FindByCitizen(ctx, citizenID)
	if err != nil {
		return ProfileDetail{}, ErrInternal
	}

	detail := ProfileDetail{Profile: p, ContinentName: continent.Name, Skills: skills}
	if render {
		if detail.BiographyHTML, err = markdown.ToHTML(p.Biography); err != nil {
			return ProfileDetail{}, ErrInternal
		}
		if p.Experience != "" {
			if detail.ExperienceHTML, err = markdown.ToHTML(p.Experience); err != nil {
				return ProfileDetail{}, ErrInternal
			}
		}
	}
	return detail, nil
}

// Save validates everything up front, then runs the profile upsert and the
// full skill reconciliation inside one transaction. A failure at any step
// commits nothing.
func (u *Profiles) Save(ctx context.Context, citizenID ids.CitizenID, in SaveProfileInput) error {
	if strings.TrimSpace(in.Region) == "" {
		return fmt.Errorf("%w: region is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Biography) == "" {
		return fmt.Errorf("%w: biography is required", ErrInvalidInput)
	}

	continentID, err := ids.ParseContinentID(in.ContinentID)
	if err != nil {
		return fmt.Errorf("%w: continent id: %v", ErrInvalidInput, err)
	}
	if _, err := u.continents.FindByID(ctx, continentID); err != nil {
		if errors.Is(err, repository.ErrContinentNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	target, err := profile.ResolveSkills(citizenID, in.Skills)
	if err != nil {
		return fmt.Errorf("%w: skill id: %v", ErrInvalidInput, err)
	}

	p := profile.Profile{
		CitizenID:         citizenID,
		SeekingEmployment: in.SeekingEmployment,
		IsPublic:          in.IsPublic,
		ContinentID:       continentID,
		Region:            in.Region,
		RemoteWork:        in.RemoteWork,
		FullTime:          in.FullTime,
		Biography:         in.Biography,
		Experience:        in.Experience,
		LastUpdatedOn:     u.now().UTC(),
	}

	err = database.WithTx(ctx, u.db, func(q database.Queryer) error {
		if err := u.profiles.Upsert(ctx, q, p); err != nil {
			return err
		}

		persisted, err := u.skills.IDsByCitizen(ctx, q, citizenID)
		if err != nil {
			return err
		}

		diff := profile.DiffSkills(persisted, target)
		for _, s := range diff.ToInsert {
			if err := u.skills.Insert(ctx, q, s); err != nil {
				return err
			}
		}
		for _, s := range diff.ToUpdate {
			if err := u.skills.Update(ctx, q, s); err != nil {
				return err
			}
		}
		return u.skills.DeleteByIDs(ctx, q, citizenID, diff.ToDelete)
	})
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) Skills(ctx context.Context, citizenID ids.CitizenID) ([]profile.Skill, error) {
	skills, err := u.skills.FindByCitizen(ctx, citizenID)
	if err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}

func (u *Profiles) ProfileCount(ctx context.Context) (int64, error) {
	n, err := u.profiles.Count(ctx)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *Profiles) SkillCount(ctx context.Context, citizenID ids.CitizenID) (int64, error) {
	n, err := u.skills.CountByCitizen(ctx, citizenID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

var _ ProfileUsecase = (*Profiles)(nil)
