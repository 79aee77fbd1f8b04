package listing

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		l *models.Listing,
	) error

	// FindByID loads the listing with its landlord.
	FindByID(
		ctx context.Context,
		id string,
	) (*models.Listing, error)

	Update(
		ctx context.Context,
		l *models.Listing,
	) error

	// Delete removes the listing together with its bookings and reviews.
	Delete(
		ctx context.Context,
		id string,
	) error

	// List returns active listings matching f, newest first, and the total
	// number of matches ignoring pagination.
	List(
		ctx context.Context,
		f Filter,
		page domain.Page,
	) ([]models.Listing, int64, error)

	IDsByLandlord(
		ctx context.Context,
		landlordID string,
	) ([]string, error)
}
