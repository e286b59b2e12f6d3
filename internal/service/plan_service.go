package service

import (
	"context"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
)

type PlanService interface {
	CreatePlan(ctx context.Context, plan *models.Plan) (*models.Plan, error)
	GetPlans(ctx context.Context) ([]models.Plan, error)
	GetPlanByID(ctx context.Context, planID int64) (*models.Plan, error)
	UpdatePlan(ctx context.Context, plan *models.Plan) (*models.Plan, error)
	DeletePlan(ctx context.Context, planID int64) error
}

type planService struct {
	planRepo repository.PlanRepository
}

func NewPlanService(planRepo repository.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) CreatePlan(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) GetPlans(ctx context.Context) ([]models.Plan, error) {
	return s.planRepo.GetAll(ctx)
}

func (s *planService) GetPlanByID(ctx context.Context, planID int64) (*models.Plan, error) {
	return s.planRepo.GetByID(ctx, planID)
}

func (s *planService) UpdatePlan(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) DeletePlan(ctx context.Context, planID int64) error {
	return s.planRepo.Delete(ctx, planID)
}
