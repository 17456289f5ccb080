package dto

import (
	"crewcall/internal/usecase"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SkillCategoryResponse struct {
	Category string          `json:"category"`
	Skills   []SkillResponse `json:"skills"`
}

func NewSkillCategoryResponse(categories []usecase.SkillCategory) []SkillCategoryResponse {
	out := make([]SkillCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		skills := make([]SkillResponse, 0, len(cat.Roles))
		for _, role := range cat.Roles {
			skills = append(skills, SkillResponse{ID: role.ID, Name: role.Name})
		}
		out = append(out, SkillCategoryResponse{Category: cat.Name, Skills: skills})
	}
	return out
}
