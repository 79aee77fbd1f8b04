package booking

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Repository persists bookings. Implementations must reject a second
// pending or confirmed booking for the same (user, listing) with
// domain.ErrDuplicate.
type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// FindByID loads the booking with its user and listing.
	FindByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	HasActive(
		ctx context.Context,
		userID string,
		listingID string,
	) (bool, error)

	ListByUser(
		ctx context.Context,
		userID string,
		status string,
	) ([]models.Booking, error)

	ListByListings(
		ctx context.Context,
		listingIDs []string,
		status string,
	) ([]models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error
}
