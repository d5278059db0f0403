package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SuccessHandler struct {
	uc usecase.SuccessUsecase
}

func NewSuccessHandler(uc usecase.SuccessUsecase) *SuccessHandler {
	return &SuccessHandler{uc: uc}
}

func (h *SuccessHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/list", h.List)
	r.Post("/save", h.Save)
	r.Get("/:id", h.Get)
}

func (h *SuccessHandler) List(c fiber.Ctx) error {
	stories, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.StoryListItemResponse, 0, len(stories))
	for _, s := range stories {
		res = append(res, dto.StoryListItemResponse{
			ID:          s.ID.String(),
			CitizenID:   s.CitizenID.String(),
			CitizenName: s.CitizenName,
			RecordedOn:  s.RecordedOn,
			FromHere:    s.FromHere,
			HasStory:    s.HasStory,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SuccessHandler) Get(c fiber.Ctx) error {
	story, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.StoryResponse{
		ID:         story.ID.String(),
		CitizenID:  story.CitizenID.String(),
		RecordedOn: story.RecordedOn,
		FromHere:   story.FromHere,
		Story:      story.Story,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SuccessHandler) Save(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var form dto.StoryForm
	if err := c.Bind().Body(&form); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	err := h.uc.Save(c.Context(), citizenID, usecase.StoryInput{
		ID:       form.ID,
		FromHere: form.FromHere,
		Story:    form.Story,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
