// Package store is the persistence gateway. Every operation returns either a
// record, ErrNotFound, or a store error; callers decide whether to degrade.
package store

import (
	"context"
	"errors"

	"oyow/models"
)

// ErrNotFound marks a missing document, as opposed to a store failure.
var ErrNotFound = errors.New("store: not found")

type TourStore interface {
	FindActive(ctx context.Context) ([]models.Tour, error)
	FindByID(ctx context.Context, id string) (models.Tour, error)
	ReplaceAll(ctx context.Context, tours []models.Tour) error
}

type BookingStore interface {
	Insert(ctx context.Context, b models.Booking) error
	FindByID(ctx context.Context, id string) (models.Booking, error)
}

type ContactStore interface {
	Insert(ctx context.Context, c models.Contact) error
}

type DestinationStore interface {
	FindActive(ctx context.Context) ([]models.Destination, error)
	FindByID(ctx context.Context, id string) (models.Destination, error)
	Insert(ctx context.Context, d models.Destination) error
	Update(ctx context.Context, id string, d models.Destination) (models.Destination, error)
	SoftDelete(ctx context.Context, id string) error
	Search(ctx context.Context, f DestinationFilter) ([]models.Destination, error)
}

// DestinationFilter carries the optional search criteria. Set filters combine
// with AND semantics.
type DestinationFilter struct {
	Name      string
	Location  string
	MinRating *float64
	MaxPrice  *float64
}
