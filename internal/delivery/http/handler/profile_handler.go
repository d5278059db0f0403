package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/profile"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	profiles usecase.ProfileUsecase
	search   usecase.SearchUsecase
}

func NewProfileHandler(profiles usecase.ProfileUsecase, search usecase.SearchUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, search: search}
}

func (h *ProfileHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/count", h.Count)
	r.Get("/public-search", h.PublicSearch)
}

func (h *ProfileHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetOwn)
	r.Post("/save", h.Save)
	r.Get("/search", h.Search)
	r.Get("/skills", h.Skills)
	r.Get("/skill-count", h.SkillCount)
	r.Get("/view/:id", h.View)
}

// GetOwn returns the caller's editable profile. A citizen who has not saved
// one yet gets an empty 204 body rather than an error.
func (h *ProfileHandler) GetOwn(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	detail, err := h.profiles.GetOwn(c.Context(), citizenID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoProfile) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(detail))
}

func (h *ProfileHandler) View(c fiber.Ctx) error {
	detail, err := h.profiles.View(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNoProfile) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(detail))
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var form dto.ProfileForm
	if err := c.Bind().Body(&form); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	skills := make([]profile.SkillEntry, 0, len(form.Skills))
	for _, s := range form.Skills {
		skills = append(skills, profile.SkillEntry{
			ID:          s.ID,
			Description: s.Description,
			Notes:       s.Notes,
		})
	}

	err := h.profiles.Save(c.Context(), citizenID, usecase.SaveProfileInput{
		SeekingEmployment: form.SeekingEmployment,
		IsPublic:          form.IsPublic,
		ContinentID:       form.ContinentID,
		Region:            form.Region,
		RemoteWork:        form.RemoteWork,
		FullTime:          form.FullTime,
		Biography:         form.Biography,
		Experience:        form.Experience,
		Skills:            skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) Skills(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skills, err := h.profiles.Skills(c.Context(), citizenID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, skillResponses(skills))
}

func (h *ProfileHandler) Count(c fiber.Ctx) error {
	n, err := h.profiles.ProfileCount(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CountResponse{Count: n})
}

func (h *ProfileHandler) SkillCount(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	n, err := h.profiles.SkillCount(c.Context(), citizenID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CountResponse{Count: n})
}

func (h *ProfileHandler) Search(c fiber.Ctx) error {
	criteria := usecase.ProfileSearchCriteria{
		ContinentID:   c.Query("continent_id"),
		Skill:         c.Query("skill"),
		BioExperience: c.Query("bio_experience"),
		RemoteWork:    c.Query("remote_work"),
	}

	results, err := h.search.SearchProfiles(c.Context(), criteria)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ProfileSearchResponse, 0, len(results))
	for _, r := range results {
		res = append(res, dto.ProfileSearchResponse{
			CitizenID:         r.CitizenID.String(),
			CitizenName:       r.CitizenName,
			SeekingEmployment: r.SeekingEmployment,
			RemoteWork:        r.RemoteWork,
			FullTime:          r.FullTime,
			LastUpdatedOn:     r.LastUpdatedOn,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProfileHandler) PublicSearch(c fiber.Ctx) error {
	criteria := usecase.PublicSearchCriteria{
		ContinentID: c.Query("continent_id"),
		Region:      c.Query("region"),
		Skill:       c.Query("skill"),
		RemoteWork:  c.Query("remote_work"),
	}

	results, err := h.search.SearchPublicProfiles(c.Context(), criteria)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.PublicSearchResponse, 0, len(results))
	for _, r := range results {
		res = append(res, dto.PublicSearchResponse{
			Continent:  r.Continent,
			Region:     r.Region,
			RemoteWork: r.RemoteWork,
			Skills:     r.Skills,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func profileResponse(detail usecase.ProfileDetail) dto.ProfileResponse {
	p := detail.Profile
	return dto.ProfileResponse{
		CitizenID:         p.CitizenID.String(),
		SeekingEmployment: p.SeekingEmployment,
		IsPublic:          p.IsPublic,
		ContinentID:       p.ContinentID.String(),
		ContinentName:     detail.ContinentName,
		Region:            p.Region,
		RemoteWork:        p.RemoteWork,
		FullTime:          p.FullTime,
		Biography:         p.Biography,
		BiographyHTML:     detail.BiographyHTML,
		Experience:        p.Experience,
		ExperienceHTML:    detail.ExperienceHTML,
		LastUpdatedOn:     p.LastUpdatedOn,
		Skills:            skillResponses(detail.Skills),
	}
}

func skillResponses(skills []profile.Skill) []dto.SkillResponse {
	res := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, dto.SkillResponse{
			ID:          s.ID.String(),
			Description: s.Description,
			Notes:       s.Notes,
		})
	}
	return res
}
