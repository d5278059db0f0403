package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ListingHandler struct {
	uc usecase.ListingUsecase
}

func NewListingHandler(uc usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

func (h *ListingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/mine", h.Mine)
}

func (h *ListingHandler) Mine(c fiber.Ctx) error {
	citizenID, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	listings, err := h.uc.Mine(c.Context(), citizenID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		res = append(res, dto.ListingResponse{
			ID:          l.ID.String(),
			CitizenID:   l.CitizenID.String(),
			CreatedOn:   l.CreatedOn,
			Title:       l.Title,
			ContinentID: l.ContinentID.String(),
			Region:      l.Region,
			RemoteWork:  l.RemoteWork,
			IsExpired:   l.IsExpired,
			UpdatedOn:   l.UpdatedOn,
			Text:        l.Text,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
