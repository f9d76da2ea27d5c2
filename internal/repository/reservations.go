package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultReservationLimit is used when the caller passes no positive limit.
const DefaultReservationLimit = 2000

// Past reservations only: the stay has ended before today (database clock).
var listPastReservationsSQL = `SELECT reservations.id, reservations.start_date, reservations.end_date,
  reservations.property_id, reservations.guest_id,
  ` + query.QualifiedColumns("properties", query.PropertyColumns) + `,
  avg(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON properties.id = reservations.property_id
LEFT JOIN property_reviews ON property_reviews.property_id = properties.id
WHERE reservations.end_date < now()::date AND reservations.guest_id = $1
GROUP BY reservations.id, properties.id
ORDER BY reservations.start_date
LIMIT $2;`

// ReservationRepository reads the reservations table.
type ReservationRepository struct {
	db Querier
}

func NewReservationRepository(db Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ListPastForGuest returns the guest's finished reservations, oldest first,
// each with its property and that property's average rating.
func (r *ReservationRepository) ListPastForGuest(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	if limit <= 0 {
		limit = DefaultReservationLimit
	}

	rows, err := r.db.Query(ctx, listPastReservationsSQL, guestID, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	reservations := []model.Reservation{}
	for rows.Next() {
		var res model.Reservation
		var avg pgtype.Float8

		targets := []any{&res.ID, &res.StartDate, &res.EndDate, &res.PropertyID, &res.GuestID}
		targets = append(targets, propertyTargets(&res.Property)...)
		targets = append(targets, &avg)

		if err := rows.Scan(targets...); err != nil {
			return nil, sqlerr.HandleError(err)
		}
		res.Property.AverageRating = ratingOrNil(avg)
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	return reservations, nil
}
