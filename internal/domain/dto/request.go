// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"strconv"

	"github.com/guttosm/discount-service/internal/domain/model"
)

// CartDiscountsRequest is the JSON request body for the catalog volume
// discount endpoint. The cart snapshot and discount context mirror the
// host platform's invocation payload.
//
// @Description Cart snapshot and discount context for catalog volume pricing
type CartDiscountsRequest struct {
	// Cart is the cart snapshot to price.
	Cart model.Cart `json:"cart" binding:"required"`
	// Discount carries the active discount classes.
	Discount model.DiscountContext `json:"discount"`
} // @name CartDiscountsRequest

// TargetedDiscountsRequest is the JSON request body for the targeted
// volume discount endpoint.
//
// @Description Cart snapshot for targeted volume pricing
type TargetedDiscountsRequest struct {
	// Cart is the cart snapshot to price.
	Cart model.Cart `json:"cart" binding:"required"`
} // @name TargetedDiscountsRequest

// UpdatePricingRulesRequest is the JSON request body for replacing the
// active pricing rules.
type UpdatePricingRulesRequest struct {
	// Rules is the full pricing rules document to activate.
	Rules model.PricingRules `json:"rules" binding:"required"`
	// UpdatedBy identifies who submitted this configuration.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdatePricingRulesRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validateCart checks the structural invariants common to both discount
// endpoints. Empty carts are not rejected here: only the catalog engine
// treats them as a fatal input error.
func validateCart(cart model.Cart) error {
	for i, line := range cart.Lines {
		if line.ID == "" {
			return &ValidationError{Field: "cart.lines", Message: "line without id at index " + strconv.Itoa(i)}
		}
		if line.Quantity < 0 {
			return &ValidationError{Field: "cart.lines", Message: "negative quantity on line " + line.ID}
		}
	}
	return nil
}

// Validate performs custom validation on the catalog request.
func (r *CartDiscountsRequest) Validate() error {
	return validateCart(r.Cart)
}

// Validate performs custom validation on the targeted request.
func (r *TargetedDiscountsRequest) Validate() error {
	return validateCart(r.Cart)
}

// Validate checks the submitted pricing rules document.
func (r *UpdatePricingRulesRequest) Validate() error {
	if err := r.Rules.Validate(); err != nil {
		return &ValidationError{Field: "rules", Message: err.Error()}
	}
	return nil
}
