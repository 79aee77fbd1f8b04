package booking

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// MINE
// ======================================================

type ListMine struct {
	bookings bookingDomain.Repository
}

func NewListMine(bookings bookingDomain.Repository) *ListMine {
	return &ListMine{bookings: bookings}
}

func (uc *ListMine) Execute(
	ctx context.Context,
	userID string,
	status string,
) ([]models.Booking, error) {
	return uc.bookings.ListByUser(ctx, userID, status)
}

// ======================================================
// LANDLORD
// ======================================================

type ListForLandlord struct {
	bookings bookingDomain.Repository
	listings listingDomain.Repository
}

func NewListForLandlord(
	bookings bookingDomain.Repository,
	listings listingDomain.Repository,
) *ListForLandlord {
	return &ListForLandlord{
		bookings: bookings,
		listings: listings,
	}
}

func (uc *ListForLandlord) Execute(
	ctx context.Context,
	landlordID string,
	status string,
) ([]models.Booking, error) {

	ids, err := uc.listings.IDsByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Booking{}, nil
	}
	return uc.bookings.ListByListings(ctx, ids, status)
}

// ======================================================
// GET
// ======================================================

type Get struct {
	bookings bookingDomain.Repository
}

func NewGet(bookings bookingDomain.Repository) *Get {
	return &Get{bookings: bookings}
}

// Execute returns the booking to its requester, the listing's landlord or
// an admin.
func (uc *Get) Execute(
	ctx context.Context,
	caller authz.Caller,
	id string,
) (*models.Booking, error) {

	b, err := load(ctx, uc.bookings, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(caller, authz.BookingOwnership(b), authz.ViewBooking); err != nil {
		return nil, err
	}
	return b, nil
}
