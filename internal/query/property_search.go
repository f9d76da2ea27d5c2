package query

import (
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/shopspring/decimal"
)

// DefaultSearchLimit is used when the caller passes no positive limit.
const DefaultSearchLimit = 10

// PropertyColumns are the properties columns every property query selects,
// in scan order. average_rating always follows them.
var PropertyColumns = []string{
	"id",
	"owner_id",
	"title",
	"description",
	"thumbnail_photo_url",
	"cover_photo_url",
	"cost_per_night",
	"parking_spaces",
	"number_of_bathrooms",
	"number_of_bedrooms",
	"country",
	"street",
	"city",
	"province",
	"post_code",
	"active",
}

// QualifiedColumns prefixes every column with table.
func QualifiedColumns(table string, columns []string) string {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = table + "." + c
	}
	return strings.Join(qualified, ", ")
}

// propertySearchBase averages reviews through a LEFT JOIN so properties
// without reviews are still returned, with a NULL average_rating.
var propertySearchBase = "SELECT " + QualifiedColumns("properties", PropertyColumns) +
	", avg(property_reviews.rating) AS average_rating" +
	"\nFROM properties" +
	"\nLEFT JOIN property_reviews ON properties.id = property_reviews.property_id"

// centsPerUnit converts major-unit prices to the cents stored in cost_per_night.
var centsPerUnit = decimal.NewFromInt(100)

// PropertySearch builds the property search statement.
//
// Criteria are applied in a fixed order: city, owner, minimum price,
// maximum price, minimum rating. Each present criterion adds one predicate
// and one bound value; the limit is bound last. A non-positive limit is
// replaced by DefaultSearchLimit.
//
// Present but invalid criteria (see PropertySearchCriteria.Validate) yield an
// errs.KindInvalidCriteria error and no statement.
func PropertySearch(criteria model.PropertySearchCriteria, limit int) (string, []any, error) {
	if err := validation.Criteria(criteria); err != nil {
		return "", nil, err
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	b := New(propertySearchBase)

	if criteria.City != nil {
		b.Where("city LIKE", "%"+*criteria.City+"%")
	}

	if criteria.OwnerID != nil {
		b.Where("owner_id =", *criteria.OwnerID)
	}

	if criteria.MinimumPricePerNight != nil {
		b.Where("cost_per_night >=", toCents(*criteria.MinimumPricePerNight))
	}

	if criteria.MaximumPricePerNight != nil {
		b.Where("cost_per_night <=", toCents(*criteria.MaximumPricePerNight))
	}

	if criteria.MinimumRating != nil {
		b.Where("property_reviews.rating >=", *criteria.MinimumRating)
	}

	b.GroupBy("properties.id").
		OrderBy("cost_per_night").
		Limit(limit)

	text, args := b.Build()
	return text, args, nil
}

// toCents is exact: validation has already rejected fractions of a cent.
func toCents(price decimal.Decimal) int64 {
	return price.Mul(centsPerUnit).IntPart()
}
