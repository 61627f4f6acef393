package service

import (
	"github.com/guttosm/discount-service/internal/domain/model"
)

// DefaultPricingRules returns the built-in volume pricing rules used when
// no rules document is configured. Quantities are minimums across all
// variants of a product; prices are per unit in minor currency units.
func DefaultPricingRules() model.PricingRules {
	return model.PricingRules{
		Tables: map[string][]model.PriceTier{
			"College/gyms/other": {
				{MinQuantity: 1, UnitPriceCents: 4000},
				{MinQuantity: 3, UnitPriceCents: 3500},
				{MinQuantity: 12, UnitPriceCents: 3200},
			},
			"Catalog Professional": {
				{MinQuantity: 1, UnitPriceCents: 3500},
				{MinQuantity: 2, UnitPriceCents: 3000},
				{MinQuantity: 10, UnitPriceCents: 2500},
			},
			"College/Gym/Other": {
				{MinQuantity: 1, UnitPriceCents: 4000},
				{MinQuantity: 2, UnitPriceCents: 3500},
				{MinQuantity: 3, UnitPriceCents: 3200},
			},
			"Professional": {
				{MinQuantity: 1, UnitPriceCents: 3500},
				{MinQuantity: 2, UnitPriceCents: 3000},
				{MinQuantity: 3, UnitPriceCents: 2500},
			},
		},
		CatalogAssignments: map[string]string{
			"College/gyms/other":   "College/gyms/other",
			"Catalog Professional": "Catalog Professional",
		},
		ProfessionalLocations: []string{
			"Das test",
			"Hiram My Company",
			"Texas Solutions",
		},
		TargetProducts: []string{
			"gid://shopify/Product/9114452263135",
		},
		DefaultTable:      "College/Gym/Other",
		ProfessionalTable: "Professional",
	}
}

// WholesaleTierMessage is the message attached to targeted discounts.
const WholesaleTierMessage = "Wholesale tier price"

// DiscountEngine defines the interface for volume discount generation.
// Both entry points are pure: identical input yields identical output and
// no state survives an invocation.
type DiscountEngine interface {
	// GenerateCartOperations runs catalog volume pricing over the cart.
	// An empty cart is a fatal input error.
	GenerateCartOperations(cart model.Cart, discount model.DiscountContext) (model.OperationsResult, error)
	// GenerateCartOperationsWithRules is GenerateCartOperations with
	// request-scoped pricing rules.
	GenerateCartOperationsWithRules(cart model.Cart, discount model.DiscountContext, rules model.PricingRules) (model.OperationsResult, error)
	// GenerateTargetedDiscounts runs targeted volume pricing over the cart.
	GenerateTargetedDiscounts(cart model.Cart) model.DiscountsResult
	// GenerateTargetedDiscountsWithRules is GenerateTargetedDiscounts with
	// request-scoped pricing rules.
	GenerateTargetedDiscountsWithRules(cart model.Cart, rules model.PricingRules) model.DiscountsResult
}

// Option configures a DiscountEngineService.
type Option func(*DiscountEngineService)

// DiscountEngineService implements DiscountEngine. The pipeline for both
// entry points is the same: eligibility gate, buyer classification, line
// aggregation, tier selection, discount emission.
type DiscountEngineService struct {
	rules model.PricingRules
}

// NewDiscountEngineService creates a new DiscountEngineService with the
// given options.
func NewDiscountEngineService(opts ...Option) *DiscountEngineService {
	s := &DiscountEngineService{
		rules: DefaultPricingRules(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPricingRules sets the baseline pricing rules for the engine.
func WithPricingRules(rules model.PricingRules) Option {
	return func(s *DiscountEngineService) {
		s.rules = rules
	}
}

// GenerateCartOperations runs catalog volume pricing with the engine's
// baseline rules.
func (s *DiscountEngineService) GenerateCartOperations(cart model.Cart, discount model.DiscountContext) (model.OperationsResult, error) {
	return s.GenerateCartOperationsWithRules(cart, discount, s.rules)
}

// GenerateCartOperationsWithRules computes catalog volume discounts.
//
// An empty cart aborts with model.ErrEmptyCart. A missing PRODUCT discount
// class or an unassigned purchasing company short-circuits to an empty
// operation list. Otherwise lines are grouped by product, the group's
// aggregated quantity selects the tier with the largest qualifying
// threshold, and each line priced above the tier emits one per-item
// fixed-amount operation.
func (s *DiscountEngineService) GenerateCartOperationsWithRules(cart model.Cart, discount model.DiscountContext, rules model.PricingRules) (model.OperationsResult, error) {
	if len(cart.Lines) == 0 {
		return model.EmptyOperationsResult(), model.ErrEmptyCart
	}

	if !discount.HasClass(model.DiscountClassProduct) {
		return model.EmptyOperationsResult(), nil
	}

	table, ok := rules.CatalogTable(cart.BuyerIdentity.PurchasingCompanyName())
	if !ok {
		return model.EmptyOperationsResult(), nil
	}

	// Catalog pricing considers every line: all products are eligible.
	groups := model.GroupLinesByProduct(cart.Lines, nil)

	operations := make([]model.Operation, 0, len(cart.Lines))
	for _, group := range groups {
		tier, ok := table.Pick(group.Quantity)
		if !ok {
			continue
		}

		for _, line := range group.Lines {
			reduction, ok := perUnitReduction(line, tier)
			if !ok {
				continue
			}
			operations = append(operations, model.Operation{
				ProductDiscountsAdd: model.ProductDiscountsAdd{
					Candidates: []model.Candidate{
						{
							Targets: []model.Target{{CartLine: model.CartLineTarget{ID: line.ID}}},
							Value: model.DiscountValue{
								FixedAmount: model.FixedAmount{
									Amount:            model.FormatMinorUnits(reduction),
									AppliesToEachItem: true,
								},
							},
						},
					},
					SelectionStrategy: model.SelectionStrategyAll,
				},
			})
		}
	}

	return model.OperationsResult{Operations: operations}, nil
}

// GenerateTargetedDiscounts runs targeted volume pricing with the engine's
// baseline rules.
func (s *DiscountEngineService) GenerateTargetedDiscounts(cart model.Cart) model.DiscountsResult {
	return s.GenerateTargetedDiscountsWithRules(cart, s.rules)
}

// GenerateTargetedDiscountsWithRules computes targeted volume discounts.
//
// Non-business buyers get an empty result. Business buyers always resolve
// to a table: the professional one when their company location is
// allow-listed, the default one otherwise. Only product-variant lines for
// target products participate. The emitted amounts carry each line's own
// currency code.
func (s *DiscountEngineService) GenerateTargetedDiscountsWithRules(cart model.Cart, rules model.PricingRules) model.DiscountsResult {
	if !cart.BuyerIdentity.IsBusinessAccount() {
		return model.EmptyDiscountsResult()
	}

	table, ok := rules.TargetedTable(cart.BuyerIdentity.CompanyLocationName())
	if !ok {
		return model.EmptyDiscountsResult()
	}

	groups := model.GroupLinesByProduct(cart.Lines, func(line model.CartLine) bool {
		return line.Merchandise.IsProductVariant() && rules.IsTargetProduct(line.Merchandise.Product.ID)
	})

	discounts := make([]model.Discount, 0, len(cart.Lines))
	for _, group := range groups {
		tier, ok := table.Pick(group.Quantity)
		if !ok {
			continue
		}

		for _, line := range group.Lines {
			reduction, ok := perUnitReduction(line, tier)
			if !ok {
				continue
			}
			discounts = append(discounts, model.Discount{
				Message: WholesaleTierMessage,
				Targets: []model.Target{{CartLine: model.CartLineTarget{ID: line.ID}}},
				Value: model.DiscountValue{
					FixedAmount: model.FixedAmount{
						Amount:       model.FormatMinorUnits(reduction),
						CurrencyCode: line.Cost.AmountPerQuantity.CurrencyCode,
					},
				},
			})
		}
	}

	return model.DiscountsResult{
		Discounts:                   discounts,
		DiscountApplicationStrategy: model.ApplicationStrategyMaximum,
	}
}

// perUnitReduction computes how far the line's unit price sits above the
// tier price, in cents. A non-positive reduction or an unparseable amount
// yields no discount for the line; the price never rises.
func perUnitReduction(line model.CartLine, tier model.PriceTier) (int64, bool) {
	unit, err := model.ParseMinorUnits(line.Cost.AmountPerQuantity.Amount)
	if err != nil {
		return 0, false
	}
	reduction := unit - tier.UnitPriceCents
	if reduction <= 0 {
		return 0, false
	}
	return reduction, true
}
