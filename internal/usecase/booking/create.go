package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID    string
	ListingID string

	ViewingDate time.Time
	ViewingTime string
	MoveInDate  time.Time
	Message     string
	PhoneNumber string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	bookings bookingDomain.Repository
	listings listingDomain.Repository
	audit    *audit.Dispatcher
}

func NewCreate(
	bookings bookingDomain.Repository,
	listings listingDomain.Repository,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		bookings: bookings,
		listings: listings,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Listing
	// --------------------------------------------------
	l, err := uc.listings.FindByID(ctx, in.ListingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageListingNotFound)
	}
	if err != nil {
		return nil, err
	}

	if l.LandlordID == in.UserID {
		return nil, httperr.BadRequest(MessageOwnListing)
	}

	// --------------------------------------------------
	// One active booking per (user, listing)
	// --------------------------------------------------
	active, err := uc.bookings.HasActive(ctx, in.UserID, l.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, httperr.Conflict(MessageActiveExists)
	}

	b := &models.Booking{
		UserID:      in.UserID,
		ListingID:   l.ID,
		ViewingDate: in.ViewingDate,
		ViewingTime: in.ViewingTime,
		MoveInDate:  in.MoveInDate,
		Message:     strings.TrimSpace(in.Message),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Status:      string(bookingDomain.InitialStatus()),
	}

	// the partial unique index catches a concurrent duplicate
	if err := uc.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Conflict(MessageActiveExists)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"listing": l.ID},
	})

	return load(ctx, uc.bookings, b.ID)
}
