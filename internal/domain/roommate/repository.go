package roommate

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Repository persists roommate requests. At most one active request per
// user may exist; a write breaking that returns domain.ErrDuplicate, and a
// budget with min >= max returns domain.ErrCheckViolation.
type Repository interface {
	Create(
		ctx context.Context,
		r *models.RoommateRequest,
	) error

	// FindByID loads the request with its user.
	FindByID(
		ctx context.Context,
		id string,
	) (*models.RoommateRequest, error)

	// HasActive reports whether userID owns an active request other than
	// excludeID (which may be empty).
	HasActive(
		ctx context.Context,
		userID string,
		excludeID string,
	) (bool, error)

	List(
		ctx context.Context,
		f Filter,
		page domain.Page,
	) ([]models.RoommateRequest, int64, error)

	ListByUser(
		ctx context.Context,
		userID string,
	) ([]models.RoommateRequest, error)

	Update(
		ctx context.Context,
		r *models.RoommateRequest,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
