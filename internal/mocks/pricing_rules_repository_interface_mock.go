// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/repository"
)

type MockPricingRulesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPricingRulesRepositoryInterface) GetActive(ctx context.Context) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesRepositoryInterface) Create(ctx context.Context, rules model.PricingRules, createdBy string) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx, rules, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx, id, rules, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.PricingRulesConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PricingRulesConfig), args.Error(1)
}
