package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const (
	MessageNotFound        = "Booking not found"
	MessageListingNotFound = "Listing not found"
	MessageOwnListing      = "You cannot book your own listing"
	MessageActiveExists    = "You already have a pending or confirmed booking for this listing"
)

func load(ctx context.Context, repo bookingDomain.Repository, id string) (*models.Booking, error) {
	b, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
