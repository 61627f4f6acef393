// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/discount-service/internal/domain/model"
)

type MockDiscountEngine struct {
	mock.Mock
}

func (m *MockDiscountEngine) GenerateCartOperations(cart model.Cart, discount model.DiscountContext) (model.OperationsResult, error) {
	args := m.Called(cart, discount)
	result, _ := args.Get(0).(model.OperationsResult)
	return result, args.Error(1)
}

func (m *MockDiscountEngine) GenerateCartOperationsWithRules(cart model.Cart, discount model.DiscountContext, rules model.PricingRules) (model.OperationsResult, error) {
	args := m.Called(cart, discount, rules)
	result, _ := args.Get(0).(model.OperationsResult)
	return result, args.Error(1)
}

func (m *MockDiscountEngine) GenerateTargetedDiscounts(cart model.Cart) model.DiscountsResult {
	args := m.Called(cart)
	result, _ := args.Get(0).(model.DiscountsResult)
	return result
}

func (m *MockDiscountEngine) GenerateTargetedDiscountsWithRules(cart model.Cart, rules model.PricingRules) model.DiscountsResult {
	args := m.Called(cart, rules)
	result, _ := args.Get(0).(model.DiscountsResult)
	return result
}

// NewMockDiscountEngine creates a new MockDiscountEngine bound to the test's
// lifecycle. Expectations are asserted on cleanup.
func NewMockDiscountEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDiscountEngine {
	m := &MockDiscountEngine{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
