package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"tappyid_backend/internal/dto"
	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const installmentCount = 6

// Plan names carrying these substrings get the "popular" badge.
var popularNameHints = []string{"prata", "profissional"}

type PlanService interface {
	// ListPlans is the raw projection; store failures surface as 500.
	ListPlans(db *gorm.DB) ([]dto.PlanResponse, error)
	// ListPlanPresentation is the checkout shape; an empty catalog is a
	// distinct 404 condition and store failures surface as 503.
	ListPlanPresentation(db *gorm.DB) ([]dto.PlanPresentation, error)
}

type PlanServiceImpl struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanService {
	return &PlanServiceImpl{planRepo: planRepo}
}

func (s *PlanServiceImpl) ListPlans(db *gorm.DB) ([]dto.PlanResponse, error) {
	plans, err := s.planRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			IsActive: p.IsActive != nil && *p.IsActive,
			Features: decodeFeatures(p),
		})
	}
	return out, nil
}

func (s *PlanServiceImpl) ListPlanPresentation(db *gorm.DB) ([]dto.PlanPresentation, error) {
	plans, err := s.planRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.ServiceUnavailable(err)
	}
	if len(plans) == 0 {
		return nil, apperrors.ErrNoPlansAvailable
	}

	out := make([]dto.PlanPresentation, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanPresentation{
			ID:               p.ID,
			Name:             p.Name,
			Price:            FormatBRL(p.Price),
			InstallmentPrice: FormatBRL(p.Price / installmentCount),
			Features:         decodeFeatures(p),
			Popular:          isPopular(p.Name),
			CheckoutURL:      fmt.Sprintf("/checkout/%s", p.ID),
		})
	}
	return out, nil
}

// FormatBRL renders a price as "R$ 29,90".
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

func isPopular(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range popularNameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func decodeFeatures(p models.Plan) []string {
	features := []string{}
	if len(p.Features) == 0 {
		return features
	}
	if err := json.Unmarshal(p.Features, &features); err != nil {
		return []string{}
	}
	return features
}
