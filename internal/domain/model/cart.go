// Package model defines the core domain entities for the discount service.
package model

// MerchandiseTypeProductVariant is the merchandise type tag for product variants.
const MerchandiseTypeProductVariant = "ProductVariant"

// Money is a monetary amount as supplied by the commerce platform:
// a decimal string plus an ISO currency code.
//
// @Description Monetary amount with currency
// @Example {"amount": "40.00", "currencyCode": "USD"}
type Money struct {
	// Amount is the decimal string representation, e.g. "40.00"
	Amount string `json:"amount" example:"40.00"`
	// CurrencyCode is the ISO 4217 currency code
	CurrencyCode string `json:"currencyCode,omitempty" example:"USD"`
}

// ProductRef identifies the product a variant belongs to.
type ProductRef struct {
	// ID is the platform product identifier
	ID string `json:"id" example:"gid://shopify/Product/1"`
}

// Merchandise describes what a cart line purchases. Only product variants
// participate in volume pricing; other merchandise types are skipped.
type Merchandise struct {
	// Type is the merchandise type tag as sent by the platform
	Type string `json:"__typename,omitempty" example:"ProductVariant"`
	// Product is the owning product reference
	Product ProductRef `json:"product"`
}

// IsProductVariant reports whether the merchandise carries the product
// variant type tag. Inputs that omit the tag entirely are treated as
// untagged, not as variants.
func (m Merchandise) IsProductVariant() bool {
	return m.Type == MerchandiseTypeProductVariant
}

// LineCost holds the per-unit cost of a cart line.
type LineCost struct {
	// AmountPerQuantity is the current per-unit price
	AmountPerQuantity Money `json:"amountPerQuantity"`
}

// CartLine is one entry in the cart snapshot. It is immutable input and
// is never mutated by the computation.
//
// @Description A single cart line referencing a purchasable variant
type CartLine struct {
	// ID is the cart line identifier used to target discounts
	ID string `json:"id" example:"gid://shopify/CartLine/0"`
	// Quantity is the number of units on this line
	Quantity int `json:"quantity" example:"2" minimum:"0"`
	// Merchandise is the purchased variant and its product
	Merchandise Merchandise `json:"merchandise"`
	// Cost is the current pricing of the line
	Cost LineCost `json:"cost"`
}

// CompanyRef identifies a business buyer's company.
type CompanyRef struct {
	Name string `json:"name,omitempty" example:"College/gyms/other"`
}

// CompanyLocationRef identifies a company location on the buyer identity.
type CompanyLocationRef struct {
	Name string `json:"name,omitempty" example:"Texas Solutions"`
}

// PurchasingCompany is the resolved purchasing company on the buyer identity.
type PurchasingCompany struct {
	Company CompanyRef `json:"company"`
}

// BuyerIdentity carries the already-resolved buyer classification fields.
// Absent fields are modeled as nil pointers, not silently-traversed nulls.
type BuyerIdentity struct {
	// PurchasingCompany is set when the buyer checked out under a purchasing company
	PurchasingCompany *PurchasingCompany `json:"purchasingCompany,omitempty"`
	// Company is set for recognized business (B2B) accounts
	Company *CompanyRef `json:"company,omitempty"`
	// CompanyLocation is the buyer's company location, when known
	CompanyLocation *CompanyLocationRef `json:"companyLocation,omitempty"`
}

// PurchasingCompanyName returns the purchasing company name, or "" when the
// buyer has none.
func (b *BuyerIdentity) PurchasingCompanyName() string {
	if b == nil || b.PurchasingCompany == nil {
		return ""
	}
	return b.PurchasingCompany.Company.Name
}

// IsBusinessAccount reports whether the buyer carries a company reference.
func (b *BuyerIdentity) IsBusinessAccount() bool {
	return b != nil && b.Company != nil
}

// CompanyLocationName returns the company location name, or "" when unknown.
func (b *BuyerIdentity) CompanyLocationName() string {
	if b == nil || b.CompanyLocation == nil {
		return ""
	}
	return b.CompanyLocation.Name
}

// Cart is the immutable cart snapshot supplied per invocation.
//
// @Description Cart snapshot with lines and buyer identity
type Cart struct {
	Lines         []CartLine     `json:"lines"`
	BuyerIdentity *BuyerIdentity `json:"buyerIdentity,omitempty"`
}

// ProductGroup is the transient per-product aggregate built during one
// invocation: the member lines in input order and their summed quantity.
type ProductGroup struct {
	ProductID string
	Lines     []CartLine
	Quantity  int
}

// GroupLinesByProduct groups cart lines by product identity in a single
// linear pass, preserving first-seen product order and input line order
// within each group. Lines rejected by the filter receive no group
// membership at all. A nil filter accepts every line.
func GroupLinesByProduct(lines []CartLine, accept func(CartLine) bool) []*ProductGroup {
	groups := make(map[string]*ProductGroup, len(lines))
	ordered := make([]*ProductGroup, 0, len(lines))

	for _, line := range lines {
		if accept != nil && !accept(line) {
			continue
		}
		productID := line.Merchandise.Product.ID
		group, ok := groups[productID]
		if !ok {
			group = &ProductGroup{ProductID: productID}
			groups[productID] = group
			ordered = append(ordered, group)
		}
		group.Lines = append(group.Lines, line)
		group.Quantity += line.Quantity
	}

	return ordered
}
