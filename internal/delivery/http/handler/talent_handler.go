package handler

import (
	"time"

	"crewcall/internal/delivery/http/dto"
	"crewcall/internal/delivery/http/middleware"
	"crewcall/internal/domain/talent"
	"crewcall/internal/pkg/response"
	"crewcall/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TalentHandler struct {
	uc usecase.TalentUsecase
}

type talentRequest struct {
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	Address              string   `json:"address"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	ExperienceYears      int      `json:"experience_years"`
	ExperienceMonths     int      `json:"experience_months"`
	Gender               string   `json:"gender"`
	BirthDate            string   `json:"birth_date"`
	HeightFeet           int      `json:"height_feet"`
	HeightInches         int      `json:"height_inches"`
	FacebookURL          string   `json:"facebook_url"`
	InstagramURL         string   `json:"instagram_url"`
	TwitterURL           string   `json:"twitter_url"`
	LinkedInURL          string   `json:"linkedin_url"`
	Skills               []string `json:"skills"`
	AvatarURL            string   `json:"avatar_url"`
	ResumeURL            string   `json:"resume_url"`
	TravelNationally     bool     `json:"travel_nationally"`
	TravelDuration       string   `json:"travel_duration"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	TermsAccepted        bool     `json:"terms_accepted"`
	IsOnboarded          bool     `json:"is_onboarded"`
}

type talentPatchRequest struct {
	FirstName            *string  `json:"first_name"`
	LastName             *string  `json:"last_name"`
	Address              *string  `json:"address"`
	Email                *string  `json:"email"`
	Phone                *string  `json:"phone"`
	ExperienceYears      *int     `json:"experience_years"`
	ExperienceMonths     *int     `json:"experience_months"`
	Gender               *string  `json:"gender"`
	BirthDate            *string  `json:"birth_date"`
	HeightFeet           *int     `json:"height_feet"`
	HeightInches         *int     `json:"height_inches"`
	FacebookURL          *string  `json:"facebook_url"`
	InstagramURL         *string  `json:"instagram_url"`
	TwitterURL           *string  `json:"twitter_url"`
	LinkedInURL          *string  `json:"linkedin_url"`
	Skills               []string `json:"skills"`
	AvatarURL            *string  `json:"avatar_url"`
	ResumeURL            *string  `json:"resume_url"`
	TravelNationally     *bool    `json:"travel_nationally"`
	TravelDuration       *string  `json:"travel_duration"`
	NotificationsEnabled *bool    `json:"notifications_enabled"`
	TermsAccepted        *bool    `json:"terms_accepted"`
	IsOnboarded          *bool    `json:"is_onboarded"`
}

func NewTalentHandler(uc usecase.TalentUsecase) *TalentHandler {
	return &TalentHandler{uc: uc}
}

func (h *TalentHandler) RegisterTalentRoutes(r fiber.Router) {
	r.Get("/profiles/me", h.GetOwn)
	r.Post("/profiles/me", h.Save)
	r.Patch("/profiles/me", h.Update)
}

func (h *TalentHandler) GetOwn(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentProfileResponse(p))
}

func (h *TalentHandler) Save(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req talentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid birth_date", nil, err)
	}

	saved, err := h.uc.Save(c.Context(), userID, talent.Profile{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Address:              req.Address,
		Email:                req.Email,
		Phone:                req.Phone,
		ExperienceYears:      req.ExperienceYears,
		ExperienceMonths:     req.ExperienceMonths,
		Gender:               req.Gender,
		BirthDate:            birthDate,
		HeightFeet:           req.HeightFeet,
		HeightInches:         req.HeightInches,
		FacebookURL:          req.FacebookURL,
		InstagramURL:         req.InstagramURL,
		TwitterURL:           req.TwitterURL,
		LinkedInURL:          req.LinkedInURL,
		Skills:               req.Skills,
		AvatarURL:            req.AvatarURL,
		ResumeURL:            req.ResumeURL,
		TravelNationally:     req.TravelNationally,
		TravelDuration:       req.TravelDuration,
		NotificationsEnabled: req.NotificationsEnabled,
		TermsAccepted:        req.TermsAccepted,
		IsOnboarded:          req.IsOnboarded,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewTalentProfileResponse(saved))
}

func (h *TalentHandler) Update(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req talentPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	patch := talent.Update{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Address:              req.Address,
		Email:                req.Email,
		Phone:                req.Phone,
		ExperienceYears:      req.ExperienceYears,
		ExperienceMonths:     req.ExperienceMonths,
		Gender:               req.Gender,
		HeightFeet:           req.HeightFeet,
		HeightInches:         req.HeightInches,
		FacebookURL:          req.FacebookURL,
		InstagramURL:         req.InstagramURL,
		TwitterURL:           req.TwitterURL,
		LinkedInURL:          req.LinkedInURL,
		Skills:               req.Skills,
		AvatarURL:            req.AvatarURL,
		ResumeURL:            req.ResumeURL,
		TravelNationally:     req.TravelNationally,
		TravelDuration:       req.TravelDuration,
		NotificationsEnabled: req.NotificationsEnabled,
		TermsAccepted:        req.TermsAccepted,
		IsOnboarded:          req.IsOnboarded,
	}
	if req.BirthDate != nil {
		t, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid birth_date", nil, err)
		}
		patch.BirthDate = t
	}

	updated, err := h.uc.Update(c.Context(), userID, patch)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentProfileResponse(updated))
}

func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
