package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/discount-service/internal/domain/model"
)

func TestCartDiscountsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cart    model.Cart
		wantErr string
	}{
		{
			name: "valid cart",
			cart: model.Cart{Lines: []model.CartLine{{ID: "l1", Quantity: 2}}},
		},
		{
			name: "empty cart passes structural validation",
			cart: model.Cart{},
		},
		{
			name:    "missing line id",
			cart:    model.Cart{Lines: []model.CartLine{{Quantity: 1}}},
			wantErr: "line without id",
		},
		{
			name:    "negative quantity",
			cart:    model.Cart{Lines: []model.CartLine{{ID: "l1", Quantity: -1}}},
			wantErr: "negative quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CartDiscountsRequest{Cart: tt.cart}
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdatePricingRulesRequestValidate(t *testing.T) {
	t.Run("valid rules", func(t *testing.T) {
		req := UpdatePricingRulesRequest{Rules: model.PricingRules{
			Tables: map[string][]model.PriceTier{
				"t1": {{MinQuantity: 1, UnitPriceCents: 4000}},
			},
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid rules surface as validation errors", func(t *testing.T) {
		req := UpdatePricingRulesRequest{Rules: model.PricingRules{}}
		var vErr *ValidationError
		assert.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "rules", vErr.Field)
	})
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "admin", Password: "password123"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "password123"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "admin", Password: "short"}).Validate())
}
