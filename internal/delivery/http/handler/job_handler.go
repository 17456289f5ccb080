package handler

import (
	"time"

	"crewcall/internal/delivery/http/dto"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/domain/job"
	"crewcall/internal/pkg/response"
	"crewcall/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	PayRate      string   `json:"pay_rate"`
	StartDate    string   `json:"start_date"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type jobPatchRequest struct {
	Title        *string  `json:"title"`
	Location     *string  `json:"location"`
	JobType      *string  `json:"job_type"`
	PayRate      *string  `json:"pay_rate"`
	StartDate    *string  `json:"start_date"`
	Status       *string  `json:"status"`
	Description  *string  `json:"description"`
	Requirements []string `json:"requirements"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes mounts the public job board.
func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs", h.ListActive)
	r.Get("/jobs/:id", h.GetByID)
}

// RegisterCompanyRoutes mounts the company-side posting management.
func (h *JobHandler) RegisterCompanyRoutes(r fiber.Router) {
	r.Get("/companies/me/jobs", h.ListOwn)
	r.Post("/companies/me/jobs", h.Create)
	r.Patch("/jobs/:id", h.Update)
}

func (h *JobHandler) ListActive(c fiber.Ctx) error {
	listings, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(listings))
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	l, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(l))
}

func (h *JobHandler) ListOwn(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	listings, err := h.uc.ListForCompany(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(listings))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.JobInput{
		Title:        req.Title,
		Location:     req.Location,
		JobType:      req.JobType,
		PayRate:      req.PayRate,
		StartDate:    startDate,
		Status:       job.Status(req.Status),
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req jobPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	patch := job.Update{
		Title:        req.Title,
		Location:     req.Location,
		JobType:      req.JobType,
		PayRate:      req.PayRate,
		Description:  req.Description,
		Requirements: req.Requirements,
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid start_date", nil, err)
		}
		patch.StartDate = t
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		patch.Status = &status
	}

	updated, err := h.uc.Update(c.Context(), userID, jobID, patch)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

// parseDate accepts both date-only and full RFC3339 timestamps, since the
// posting form sends whichever its date picker produced.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
