package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

var insertPropertySQL = `INSERT INTO properties (
  owner_id,
  title,
  description,
  thumbnail_photo_url,
  cover_photo_url,
  cost_per_night,
  street,
  city,
  province,
  post_code,
  country,
  parking_spaces,
  number_of_bathrooms,
  number_of_bedrooms
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + query.QualifiedColumns("properties", query.PropertyColumns) + ";"

// PropertyRepository reads and writes the properties table.
type PropertyRepository struct {
	db Querier
}

func NewPropertyRepository(db Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Search returns up to limit properties matching criteria, cheapest first,
// each with the average rating of its reviews.
func (r *PropertyRepository) Search(ctx context.Context, criteria model.PropertySearchCriteria, limit int) ([]model.Property, error) {
	stmt, args, err := query.PropertySearch(criteria, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		var p model.Property
		var avg pgtype.Float8

		if err := rows.Scan(append(propertyTargets(&p), &avg)...); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		p.AverageRating = ratingOrNil(avg)
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return properties, nil
}

// Add inserts a property and returns the stored row. A new property has
// no reviews, so AverageRating is nil.
func (r *PropertyRepository) Add(ctx context.Context, property model.NewProperty) (*model.Property, error) {
	if err := validation.Input(property); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, insertPropertySQL,
		property.OwnerID,
		property.Title,
		property.Description,
		property.ThumbnailPhotoURL,
		property.CoverPhotoURL,
		property.CostPerNight,
		property.Street,
		property.City,
		property.Province,
		property.PostCode,
		property.Country,
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
	)

	var p model.Property
	if err := row.Scan(propertyTargets(&p)...); err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable("properties", err))
	}
	return &p, nil
}

// propertyTargets returns scan destinations in query.PropertyColumns order.
func propertyTargets(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}

func ratingOrNil(avg pgtype.Float8) *float64 {
	if !avg.Valid {
		return nil
	}
	v := avg.Float64
	return &v
}
