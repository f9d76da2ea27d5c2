// Package model holds the row types of the LightBnB schema and the
// inputs accepted by the repositories.
package model

import "time"

// User is a row of the users table.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the insert payload for users.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// Property is a row of the properties table plus the average rating of
// its reviews. AverageRating is nil when the property has no reviews.
//
// CostPerNight is stored in cents.
type Property struct {
	ID                int64    `json:"id"`
	OwnerID           int64    `json:"owner_id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url"`
	CoverPhotoURL     string   `json:"cover_photo_url"`
	CostPerNight      int64    `json:"cost_per_night"`
	ParkingSpaces     int32    `json:"parking_spaces"`
	NumberOfBathrooms int32    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32    `json:"number_of_bedrooms"`
	Country           string   `json:"country"`
	Street            string   `json:"street"`
	City              string   `json:"city"`
	Province          string   `json:"province"`
	PostCode          string   `json:"post_code"`
	Active            bool     `json:"active"`
	AverageRating     *float64 `json:"average_rating"`
}

// NewProperty is the insert payload for properties. CostPerNight is in cents.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province" validate:"required"`
	PostCode          string `json:"post_code" validate:"required"`
	Country           string `json:"country" validate:"required"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"gte=0"`
}

// Reservation is a row of the reservations table joined with the
// reserved property and that property's average rating.
type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
	Property   Property  `json:"property"`
}
