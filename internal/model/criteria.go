package model

import "github.com/shopspring/decimal"

// PropertySearchCriteria are the optional property search filters.
// A nil field places no constraint on the search.
//
// Prices are in major units (dollars); the query builder converts them
// to the cents stored in properties.cost_per_night.
type PropertySearchCriteria struct {
	City                 *string          `json:"city,omitempty" validate:"omitnil,max=255"`
	OwnerID              *int64           `json:"owner_id,omitempty" validate:"omitnil,gt=0"`
	MinimumPricePerNight *decimal.Decimal `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight *decimal.Decimal `json:"maximum_price_per_night,omitempty"`
	MinimumRating        *float64         `json:"minimum_rating,omitempty" validate:"omitnil,gte=0,lte=5"`
}

// IsEmpty reports whether no filter is set.
func (c PropertySearchCriteria) IsEmpty() bool {
	return c.City == nil &&
		c.OwnerID == nil &&
		c.MinimumPricePerNight == nil &&
		c.MaximumPricePerNight == nil &&
		c.MinimumRating == nil
}
