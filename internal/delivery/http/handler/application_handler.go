package handler

import (
	"crewcall/internal/delivery/http/dto"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/domain/application"
	"crewcall/internal/pkg/response"
	"crewcall/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	Message string `json:"message"`
}

type applicationStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterTalentRoutes mounts the applicant-side routes.
func (h *ApplicationHandler) RegisterTalentRoutes(r fiber.Router) {
	r.Post("/jobs/:id/applications", h.Apply)
	r.Get("/users/me/applications", h.ListOwn)
}

// RegisterCompanyRoutes mounts the review-queue routes.
func (h *ApplicationHandler) RegisterCompanyRoutes(r fiber.Router) {
	r.Get("/companies/me/applications", h.ListForCompany)
	r.Patch("/applications/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.uc.Apply(c.Context(), userID, jobID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewApplicationResponse(app))
}

func (h *ApplicationHandler) ListOwn(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserApplicationResponse(items))
}

func (h *ApplicationHandler) ListForCompany(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListForCompany(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyQueueResponse(items))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	appID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req applicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), userID, appID, application.Status(req.Status))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}
