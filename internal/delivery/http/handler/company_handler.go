package handler

import (
	"crewcall/internal/delivery/http/dto"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/domain/company"
	"crewcall/internal/pkg/response"
	"crewcall/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

type companyRequest struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	LogoURL           string `json:"logo_url"`
	Website           string `json:"website"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Description       string `json:"description"`
	Founded           *int   `json:"founded"`
	NumberOfEmployees string `json:"number_of_employees"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zip_code"`
	Facebook          string `json:"facebook"`
	Twitter           string `json:"twitter"`
	Instagram         string `json:"instagram"`
	LinkedIn          string `json:"linkedin"`
}

type companyPatchRequest struct {
	Name              *string `json:"name"`
	Type              *string `json:"type"`
	LogoURL           *string `json:"logo_url"`
	Website           *string `json:"website"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Description       *string `json:"description"`
	Founded           *int    `json:"founded"`
	NumberOfEmployees *string `json:"number_of_employees"`
	Street            *string `json:"street"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	ZipCode           *string `json:"zip_code"`
	Facebook          *string `json:"facebook"`
	Twitter           *string `json:"twitter"`
	Instagram         *string `json:"instagram"`
	LinkedIn          *string `json:"linkedin"`
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes mounts the public company detail route.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/companies/:id", h.GetByID)
}

// RegisterCompanyRoutes mounts the company-role-only profile routes.
func (h *CompanyHandler) RegisterCompanyRoutes(r fiber.Router) {
	r.Get("/companies/me", h.GetOwn)
	r.Post("/companies/me", h.Save)
	r.Patch("/companies/me", h.Update)
	r.Get("/companies/me/completion", h.Completion)
}

func (h *CompanyHandler) GetOwn(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(p))
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(p))
}

func (h *CompanyHandler) Save(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Save(c.Context(), userID, company.Profile{
		Name:              req.Name,
		Type:              req.Type,
		LogoURL:           req.LogoURL,
		Website:           req.Website,
		Email:             req.Email,
		Phone:             req.Phone,
		Description:       req.Description,
		Founded:           req.Founded,
		NumberOfEmployees: req.NumberOfEmployees,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		Facebook:          req.Facebook,
		Twitter:           req.Twitter,
		Instagram:         req.Instagram,
		LinkedIn:          req.LinkedIn,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewCompanyResponse(saved))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req companyPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), userID, company.Update{
		Name:              req.Name,
		Type:              req.Type,
		LogoURL:           req.LogoURL,
		Website:           req.Website,
		Email:             req.Email,
		Phone:             req.Phone,
		Description:       req.Description,
		Founded:           req.Founded,
		NumberOfEmployees: req.NumberOfEmployees,
		Street:            req.Street,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		Facebook:          req.Facebook,
		Twitter:           req.Twitter,
		Instagram:         req.Instagram,
		LinkedIn:          req.LinkedIn,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(updated))
}

func (h *CompanyHandler) Completion(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	completion, err := h.uc.CompletionForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompletionResponse(completion))
}
