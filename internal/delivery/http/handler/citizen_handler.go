package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CitizenHandler struct {
	uc usecase.CitizenUsecase
}

func NewCitizenHandler(uc usecase.CitizenUsecase) *CitizenHandler {
	return &CitizenHandler{uc: uc}
}

func (h *CitizenHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/log-on/:code", h.LogOn)
	r.Get("/:id", h.Get)
}

func (h *CitizenHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Delete("/:id", h.Delete)
}

func (h *CitizenHandler) LogOn(c fiber.Ctx) error {
	result, err := h.uc.LogOn(c.Context(), c.Params("code"))
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.LogOnResponse{
		JWT:         result.Token,
		CitizenID:   result.CitizenID.String(),
		CitizenName: result.CitizenName,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CitizenHandler) Get(c fiber.Ctx) error {
	cit, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.CitizenResponse{
		ID:          cit.ID.String(),
		Account:     cit.Account,
		DisplayName: cit.DisplayName,
		RealName:    cit.RealName,
		ProfileURL:  cit.ProfileURL,
		JoinedOn:    cit.JoinedOn,
		LastSeenOn:  cit.LastSeenOn,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CitizenHandler) Delete(c fiber.Ctx) error {
	current, ok := middleware.CurrentCitizenID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.Remove(c.Context(), current, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
