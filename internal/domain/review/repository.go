package review

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Repository persists reviews. Create, Update and Delete recompute the
// parent listing's rating in the same transaction as the review write,
// holding the listing row lock, so the stored aggregate always matches the
// stored reviews. A second review by the same user on the same listing
// returns domain.ErrDuplicate.
type Repository interface {
	ListByListing(
		ctx context.Context,
		listingID string,
	) ([]models.Review, error)

	FindByID(
		ctx context.Context,
		id string,
	) (*models.Review, error)

	Create(
		ctx context.Context,
		r *models.Review,
	) (models.Rating, error)

	Update(
		ctx context.Context,
		r *models.Review,
	) (models.Rating, error)

	Delete(
		ctx context.Context,
		r *models.Review,
	) (models.Rating, error)
}
