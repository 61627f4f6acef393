package model

import (
	"fmt"
	"sort"
)

// PriceTier is one volume-pricing tier: buying at least MinQuantity units
// of a product (summed across its variants) prices each unit at
// UnitPriceCents.
//
// @Description A volume pricing tier
// @Example {"min_quantity": 3, "unit_price_cents": 3500}
type PriceTier struct {
	// MinQuantity is the minimum aggregated quantity for this tier
	MinQuantity int `json:"min_quantity" bson:"min_quantity" example:"3" minimum:"1"`
	// UnitPriceCents is the per-unit price in minor currency units
	UnitPriceCents int64 `json:"unit_price_cents" bson:"unit_price_cents" example:"3500" minimum:"0"`
}

// TierTable is an ordered set of price tiers for one buyer classification.
// Tier selection does not depend on the slice order: Pick always returns
// the qualifying tier with the largest threshold.
type TierTable struct {
	Name  string      `json:"name" bson:"name"`
	Tiers []PriceTier `json:"tiers" bson:"tiers"`
}

// Pick returns the tier with the largest MinQuantity that the aggregated
// quantity meets, or false when no tier qualifies. The scan is
// order-independent so unsorted tables select the same tier as sorted ones.
func (t TierTable) Pick(quantity int) (PriceTier, bool) {
	var (
		best  PriceTier
		found bool
	)
	for _, tier := range t.Tiers {
		if quantity < tier.MinQuantity {
			continue
		}
		if !found || tier.MinQuantity > best.MinQuantity {
			best = tier
			found = true
		}
	}
	return best, found
}

// Validate checks the table invariants: at least one tier, thresholds
// positive and unique, prices non-negative, and unit price non-increasing
// as the threshold rises.
func (t TierTable) Validate() error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("tier table %q: must contain at least one tier", t.Name)
	}

	seen := make(map[int]bool, len(t.Tiers))
	for _, tier := range t.Tiers {
		if tier.MinQuantity < 1 {
			return fmt.Errorf("tier table %q: min_quantity %d must be at least 1", t.Name, tier.MinQuantity)
		}
		if tier.UnitPriceCents < 0 {
			return fmt.Errorf("tier table %q: unit_price_cents %d must not be negative", t.Name, tier.UnitPriceCents)
		}
		if seen[tier.MinQuantity] {
			return fmt.Errorf("tier table %q: duplicate min_quantity %d", t.Name, tier.MinQuantity)
		}
		seen[tier.MinQuantity] = true
	}

	// Check monotonicity on a sorted copy; the table itself may be unsorted.
	sorted := make([]PriceTier, len(t.Tiers))
	copy(sorted, t.Tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinQuantity < sorted[j].MinQuantity })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].UnitPriceCents > sorted[i-1].UnitPriceCents {
			return fmt.Errorf("tier table %q: unit price rises from %d to %d at min_quantity %d",
				t.Name, sorted[i-1].UnitPriceCents, sorted[i].UnitPriceCents, sorted[i].MinQuantity)
		}
	}

	return nil
}

// PricingRules is the complete static pricing configuration: the named tier
// tables plus the lookups that classify a buyer into one of them.
//
// @Description Volume pricing rules configuration
type PricingRules struct {
	// Tables maps table name to its tiers
	Tables map[string][]PriceTier `json:"tables" bson:"tables"`
	// CatalogAssignments maps a purchasing company name to a table name
	// (catalog pricing). Companies without an assignment are ineligible.
	CatalogAssignments map[string]string `json:"catalog_assignments" bson:"catalog_assignments"`
	// ProfessionalLocations lists company-location names that receive the
	// professional table under targeted pricing.
	ProfessionalLocations []string `json:"professional_locations" bson:"professional_locations"`
	// TargetProducts restricts targeted pricing to these product IDs.
	TargetProducts []string `json:"target_products" bson:"target_products"`
	// DefaultTable is the targeted-pricing table for non-professional buyers.
	DefaultTable string `json:"default_table" bson:"default_table"`
	// ProfessionalTable is the targeted-pricing table for professional locations.
	ProfessionalTable string `json:"professional_table" bson:"professional_table"`
}

// Table returns the named tier table, or false when the name is unknown.
func (r PricingRules) Table(name string) (TierTable, bool) {
	tiers, ok := r.Tables[name]
	if !ok {
		return TierTable{}, false
	}
	return TierTable{Name: name, Tiers: tiers}, true
}

// CatalogTable resolves a purchasing company name to its assigned tier
// table. Unassigned companies get no table.
func (r PricingRules) CatalogTable(companyName string) (TierTable, bool) {
	tableName, ok := r.CatalogAssignments[companyName]
	if !ok {
		return TierTable{}, false
	}
	return r.Table(tableName)
}

// TargetedTable resolves a company-location name to the professional table
// when the location is allow-listed, and to the default table otherwise.
// Every business buyer gets some table under targeted pricing.
func (r PricingRules) TargetedTable(locationName string) (TierTable, bool) {
	for _, name := range r.ProfessionalLocations {
		if name == locationName {
			return r.Table(r.ProfessionalTable)
		}
	}
	return r.Table(r.DefaultTable)
}

// IsTargetProduct reports whether the product participates in targeted
// pricing. An empty target list targets nothing.
func (r PricingRules) IsTargetProduct(productID string) bool {
	for _, id := range r.TargetProducts {
		if id == productID {
			return true
		}
	}
	return false
}

// Validate checks the whole rules document: every table valid, every
// catalog assignment and both targeted table names resolvable.
func (r PricingRules) Validate() error {
	if len(r.Tables) == 0 {
		return fmt.Errorf("pricing rules: no tier tables defined")
	}

	for name, tiers := range r.Tables {
		if err := (TierTable{Name: name, Tiers: tiers}).Validate(); err != nil {
			return err
		}
	}

	for company, tableName := range r.CatalogAssignments {
		if _, ok := r.Tables[tableName]; !ok {
			return fmt.Errorf("pricing rules: catalog assignment %q references unknown table %q", company, tableName)
		}
	}

	if r.DefaultTable != "" {
		if _, ok := r.Tables[r.DefaultTable]; !ok {
			return fmt.Errorf("pricing rules: default table %q is not defined", r.DefaultTable)
		}
	}
	if r.ProfessionalTable != "" {
		if _, ok := r.Tables[r.ProfessionalTable]; !ok {
			return fmt.Errorf("pricing rules: professional table %q is not defined", r.ProfessionalTable)
		}
	}

	return nil
}
