package user

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Repository persists users. Emails are unique; Create returns
// domain.ErrDuplicate for an address already registered.
type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	FindByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error
}
