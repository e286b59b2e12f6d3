package service

import (
	"context"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
)

type ChallengeService interface {
	CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	GetChallenges(ctx context.Context) ([]models.Challenge, error)
	GetChallengeByID(ctx context.Context, challengeID int64) (*models.Challenge, error)
	UpdateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	DeleteChallenge(ctx context.Context, challengeID int64) error
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
}

func NewChallengeService(challengeRepo repository.ChallengeRepository) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo}
}

// порядок startDate и endDate не проверяется, клиент волен прислать любую пару
func (s *challengeService) CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func (s *challengeService) GetChallenges(ctx context.Context) ([]models.Challenge, error) {
	return s.challengeRepo.GetAll(ctx)
}

func (s *challengeService) GetChallengeByID(ctx context.Context, challengeID int64) (*models.Challenge, error) {
	return s.challengeRepo.GetByID(ctx, challengeID)
}

func (s *challengeService) UpdateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func (s *challengeService) DeleteChallenge(ctx context.Context, challengeID int64) error {
	return s.challengeRepo.Delete(ctx, challengeID)
}
