package model

import (
	"math"
	"strings"

	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/shopspring/decimal"
)

// Validate checks present criteria values. Absent (nil) fields are never
// an error.
//
// Tag rule failures and the checks below are reported together.
func (c PropertySearchCriteria) Validate() error {
	var problems validation.CustomValidationErrors

	if err := validation.Struct(c); err != nil {
		tagProblems, ok := validation.TagProblems(err)
		if !ok {
			return err
		}
		problems = append(problems, tagProblems...)
	}

	if c.City != nil && strings.TrimSpace(*c.City) == "" {
		problems = append(problems, validation.CustomValidationError{
			Field:   "city",
			Message: "must not be blank",
		})
	}

	problems = append(problems, checkPrice("minimum_price_per_night", c.MinimumPricePerNight)...)
	problems = append(problems, checkPrice("maximum_price_per_night", c.MaximumPricePerNight)...)

	if c.MinimumPricePerNight != nil && c.MaximumPricePerNight != nil &&
		c.MinimumPricePerNight.GreaterThan(*c.MaximumPricePerNight) {
		problems = append(problems, validation.CustomValidationError{
			Field:   "minimum_price_per_night",
			Message: "must not exceed maximum_price_per_night",
		})
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// MaxCostPerNight is the largest value properties.cost_per_night (a
// Postgres integer) can hold, in cents.
const MaxCostPerNight = math.MaxInt32

var maxCostPerNight = decimal.NewFromInt(MaxCostPerNight)

// checkPrice rejects negative prices, prices that do not convert to a
// whole number of cents and prices whose cents overflow cost_per_night.
func checkPrice(field string, price *decimal.Decimal) validation.CustomValidationErrors {
	if price == nil {
		return nil
	}

	var problems validation.CustomValidationErrors
	if price.IsNegative() {
		problems = append(problems, validation.CustomValidationError{
			Field:   field,
			Message: "must not be negative",
		})
	}
	if !price.Shift(2).IsInteger() {
		problems = append(problems, validation.CustomValidationError{
			Field:   field,
			Message: "must not have fractions of a cent",
		})
	}
	if price.Shift(2).GreaterThan(maxCostPerNight) {
		problems = append(problems, validation.CustomValidationError{
			Field:   field,
			Message: "must not exceed " + maxCostPerNight.Shift(-2).String(),
		})
	}
	return problems
}

func (u NewUser) Validate() error {
	return validation.Struct(u)
}

func (p NewProperty) Validate() error {
	return validation.Struct(p)
}
