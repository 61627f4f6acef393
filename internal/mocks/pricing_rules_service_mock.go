// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/repository"
)

type MockPricingRulesService struct {
	mock.Mock
}

func (m *MockPricingRulesService) GetActive(ctx context.Context) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesService) Create(ctx context.Context, rules model.PricingRules, createdBy string) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx, rules, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesService) Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*repository.PricingRulesConfig, error) {
	args := m.Called(ctx, id, rules, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingRulesConfig), args.Error(1)
}

func (m *MockPricingRulesService) List(ctx context.Context, limit int) ([]repository.PricingRulesConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PricingRulesConfig), args.Error(1)
}

// NewMockPricingRulesService creates a new MockPricingRulesService bound to
// the test's lifecycle. Expectations are asserted on cleanup.
func NewMockPricingRulesService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPricingRulesService {
	m := &MockPricingRulesService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
