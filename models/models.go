package models

import "time"

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Tour struct {
	TourID      string   `json:"_id" bson:"tourid"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Duration    int      `json:"duration" bson:"duration"`
	Location    string   `json:"location" bson:"location"`
	Image       string   `json:"image" bson:"image"`
	Highlights  []string `json:"highlights" bson:"highlights"`
	Rating      float64  `json:"rating" bson:"rating"`
	IsActive    bool     `json:"isActive" bson:"isActive"`
}

type Booking struct {
	BookingID       string    `json:"_id" bson:"bookingid"`
	TourID          string    `json:"tourId" bson:"tourid"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Date            time.Time `json:"date" bson:"date"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
	// TotalAmount is frozen from the tour's price at booking time and is
	// never recomputed, even if the tour's price changes later.
	TotalAmount float64   `json:"totalAmount" bson:"totalAmount"`
	Status      string    `json:"status" bson:"status"`
	Persisted   bool      `json:"persisted" bson:"-"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Contact struct {
	ContactID    string    `json:"-" bson:"contactid"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Subject      string    `json:"subject" bson:"subject"`
	Message      string    `json:"message" bson:"message"`
	TourInterest string    `json:"tourInterest,omitempty" bson:"tourInterest,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt    time.Time `json:"-" bson:"createdAt"`
}

type Destination struct {
	DestinationID string  `json:"_id" bson:"destinationid"`
	Name          string  `json:"name" bson:"name"`
	Location      string  `json:"location" bson:"location"`
	Rating        float64 `json:"rating" bson:"rating"`
	Price         float64 `json:"price" bson:"price"`
	IsActive      bool    `json:"isActive" bson:"isActive"`
}

// FieldError is a single failed validation rule, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
