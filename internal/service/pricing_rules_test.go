//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/mocks"
	"github.com/guttosm/discount-service/internal/repository"
)

func validRules() model.PricingRules {
	return model.PricingRules{
		Tables: map[string][]model.PriceTier{
			"wholesale": {
				{MinQuantity: 1, UnitPriceCents: 4000},
				{MinQuantity: 3, UnitPriceCents: 3500},
			},
		},
		CatalogAssignments: map[string]string{"Acme": "wholesale"},
		DefaultTable:       "wholesale",
		ProfessionalTable:  "wholesale",
	}
}

func TestPricingRulesService_NilRepository(t *testing.T) {
	svc := NewPricingRulesService(nil)
	ctx := context.Background()

	_, err := svc.GetActive(ctx)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.Create(ctx, validRules(), "admin")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.Update(ctx, primitive.NewObjectID(), validRules(), "admin")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.List(ctx, 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestPricingRulesService_GetActive(t *testing.T) {
	mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
	expected := &repository.PricingRulesConfig{Rules: validRules(), Active: true, Version: 1}
	mockRepo.On("GetActive", mock.Anything).Return(expected, nil)

	svc := NewPricingRulesService(mockRepo)
	got, err := svc.GetActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	mockRepo.AssertExpectations(t)
}

func TestPricingRulesService_Create(t *testing.T) {
	t.Run("valid rules pass through", func(t *testing.T) {
		mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
		rules := validRules()
		expected := &repository.PricingRulesConfig{Rules: rules, Active: true, Version: 1, CreatedBy: "admin"}
		mockRepo.On("Create", mock.Anything, rules, "admin").Return(expected, nil)

		svc := NewPricingRulesService(mockRepo)
		got, err := svc.Create(context.Background(), rules, "admin")

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid rules rejected before repository call", func(t *testing.T) {
		mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
		svc := NewPricingRulesService(mockRepo)

		bad := validRules()
		bad.Tables["wholesale"] = nil

		_, err := svc.Create(context.Background(), bad, "admin")
		assert.ErrorIs(t, err, ErrInvalidPricingRules)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
		mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("database down"))

		svc := NewPricingRulesService(mockRepo)
		_, err := svc.Create(context.Background(), validRules(), "admin")
		assert.Error(t, err)
	})
}

func TestPricingRulesService_Update(t *testing.T) {
	t.Run("valid update", func(t *testing.T) {
		mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
		id := primitive.NewObjectID()
		rules := validRules()
		expected := &repository.PricingRulesConfig{ID: id, Rules: rules, Version: 2}
		mockRepo.On("Update", mock.Anything, id, rules, "admin").Return(expected, nil)

		svc := NewPricingRulesService(mockRepo)
		got, err := svc.Update(context.Background(), id, rules, "admin")

		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid rules rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
		svc := NewPricingRulesService(mockRepo)

		_, err := svc.Update(context.Background(), primitive.NewObjectID(), model.PricingRules{}, "admin")
		assert.ErrorIs(t, err, ErrInvalidPricingRules)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestPricingRulesService_List(t *testing.T) {
	mockRepo := new(mocks.MockPricingRulesRepositoryInterface)
	configs := []repository.PricingRulesConfig{
		{Rules: validRules(), Version: 2, Active: true},
		{Rules: validRules(), Version: 1},
	}
	mockRepo.On("List", mock.Anything, 10).Return(configs, nil)

	svc := NewPricingRulesService(mockRepo)
	got, err := svc.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	mockRepo.AssertExpectations(t)
}
