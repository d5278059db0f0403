package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContinentHandler struct {
	uc usecase.ContinentUsecase
}

func NewContinentHandler(uc usecase.ContinentUsecase) *ContinentHandler {
	return &ContinentHandler{uc: uc}
}

func (h *ContinentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.All)
}

func (h *ContinentHandler) All(c fiber.Ctx) error {
	continents, err := h.uc.All(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ContinentResponse, 0, len(continents))
	for _, continent := range continents {
		res = append(res, dto.ContinentResponse{ID: continent.ID.String(), Name: continent.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
