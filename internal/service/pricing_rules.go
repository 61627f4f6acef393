package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrInvalidPricingRules is returned when a rules document fails validation.
var ErrInvalidPricingRules = errors.New("invalid pricing rules")

// PricingRulesService provides pricing rules-related operations.
type PricingRulesService interface {
	GetActive(ctx context.Context) (*repository.PricingRulesConfig, error)
	Create(ctx context.Context, rules model.PricingRules, createdBy string) (*repository.PricingRulesConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*repository.PricingRulesConfig, error)
	List(ctx context.Context, limit int) ([]repository.PricingRulesConfig, error)
}

// PricingRulesServiceImpl implements PricingRulesService.
type PricingRulesServiceImpl struct {
	rulesRepo repository.PricingRulesRepositoryInterface
}

// NewPricingRulesService creates a new pricing rules service.
func NewPricingRulesService(rulesRepo repository.PricingRulesRepositoryInterface) PricingRulesService {
	if rulesRepo == nil {
		return &PricingRulesServiceImpl{}
	}
	return &PricingRulesServiceImpl{
		rulesRepo: rulesRepo,
	}
}

func (s *PricingRulesServiceImpl) GetActive(ctx context.Context) (*repository.PricingRulesConfig, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.rulesRepo.GetActive(ctx)
}

func (s *PricingRulesServiceImpl) Create(ctx context.Context, rules model.PricingRules, createdBy string) (*repository.PricingRulesConfig, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := rules.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidPricingRules, err)
	}
	return s.rulesRepo.Create(ctx, rules, createdBy)
}

func (s *PricingRulesServiceImpl) Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*repository.PricingRulesConfig, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := rules.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidPricingRules, err)
	}
	return s.rulesRepo.Update(ctx, id, rules, updatedBy)
}

func (s *PricingRulesServiceImpl) List(ctx context.Context, limit int) ([]repository.PricingRulesConfig, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.rulesRepo.List(ctx, limit)
}
