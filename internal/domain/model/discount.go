package model

import "errors"

// ErrEmptyCart is the fatal input error for a catalog discount invocation
// with no cart lines. The computation aborts instead of returning an empty
// operation list.
var ErrEmptyCart = errors.New("no cart lines found")

// DiscountClass enumerates the discount classes active on an invocation.
type DiscountClass string

// DiscountClassProduct is the product discount class; catalog pricing only
// runs when it is present.
const DiscountClassProduct DiscountClass = "PRODUCT"

// SelectionStrategy is the host policy for combining candidate product
// discounts within one operation.
type SelectionStrategy string

// SelectionStrategyAll applies every candidate.
const SelectionStrategyAll SelectionStrategy = "All"

// ApplicationStrategy is the host policy for combining emitted discounts.
type ApplicationStrategy string

// ApplicationStrategyMaximum applies only the largest discount.
const ApplicationStrategyMaximum ApplicationStrategy = "Maximum"

// DiscountContext carries the discount classes active for the invocation.
type DiscountContext struct {
	DiscountClasses []DiscountClass `json:"discountClasses"`
}

// HasClass reports whether the given discount class is active.
func (d DiscountContext) HasClass(class DiscountClass) bool {
	for _, c := range d.DiscountClasses {
		if c == class {
			return true
		}
	}
	return false
}

// CartLineTarget targets a single cart line by ID.
type CartLineTarget struct {
	ID string `json:"id" example:"gid://shopify/CartLine/0"`
}

// Target is one discount target.
type Target struct {
	CartLine CartLineTarget `json:"cartLine"`
}

// FixedAmount is a fixed-amount discount value. Amount always carries
// exactly two fractional digits. AppliesToEachItem marks per-unit amounts
// (catalog output); CurrencyCode is set on targeted output.
type FixedAmount struct {
	Amount            string `json:"amount" example:"5.00"`
	AppliesToEachItem bool   `json:"appliesToEachItem,omitempty"`
	CurrencyCode      string `json:"currencyCode,omitempty" example:"USD"`
}

// DiscountValue wraps the value of a discount instruction.
type DiscountValue struct {
	FixedAmount FixedAmount `json:"fixedAmount"`
}

// Candidate is one candidate product discount inside an operation.
type Candidate struct {
	Targets []Target      `json:"targets"`
	Value   DiscountValue `json:"value"`
}

// ProductDiscountsAdd instructs the host to add product discounts.
type ProductDiscountsAdd struct {
	Candidates        []Candidate       `json:"candidates"`
	SelectionStrategy SelectionStrategy `json:"selectionStrategy"`
}

// Operation is one catalog discount operation.
type Operation struct {
	ProductDiscountsAdd ProductDiscountsAdd `json:"productDiscountsAdd"`
}

// OperationsResult is the catalog pricing output: one operation per
// discounted line, in input order within first-seen product groups.
//
// @Description Catalog volume discount operations
type OperationsResult struct {
	Operations []Operation `json:"operations"`
}

// EmptyOperationsResult returns the soft-ineligibility catalog output.
func EmptyOperationsResult() OperationsResult {
	return OperationsResult{Operations: []Operation{}}
}

// Discount is one targeted discount instruction.
type Discount struct {
	Message string        `json:"message" example:"Wholesale tier price"`
	Targets []Target      `json:"targets"`
	Value   DiscountValue `json:"value"`
}

// DiscountsResult is the targeted pricing output. The application strategy
// is always present, including on empty results.
//
// @Description Targeted volume discounts
type DiscountsResult struct {
	Discounts                   []Discount          `json:"discounts"`
	DiscountApplicationStrategy ApplicationStrategy `json:"discountApplicationStrategy"`
}

// EmptyDiscountsResult returns the soft-ineligibility targeted output.
func EmptyDiscountsResult() DiscountsResult {
	return DiscountsResult{
		Discounts:                   []Discount{},
		DiscountApplicationStrategy: ApplicationStrategyMaximum,
	}
}
