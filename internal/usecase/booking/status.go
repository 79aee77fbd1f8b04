package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// UPDATE STATUS (landlord)
// ======================================================

type UpdateStatusInput struct {
	Caller           authz.Caller
	ID               string
	Status           string
	LandlordResponse string
}

type UpdateStatus struct {
	bookings bookingDomain.Repository
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewUpdateStatus(
	bookings bookingDomain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		bookings: bookings,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	b, err := load(ctx, uc.bookings, in.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(in.Caller, authz.BookingOwnership(b), authz.RespondToBooking); err != nil {
		return nil, err
	}

	from := b.Status
	if err := bookingDomain.Respond(
		b,
		bookingDomain.Status(in.Status),
		strings.TrimSpace(in.LandlordResponse),
		uc.now().UTC(),
	); err != nil {
		return nil, err
	}

	if err := save(ctx, uc.bookings, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionBookingStatusChanged,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"from": from, "to": b.Status},
	})

	return b, nil
}

// ======================================================
// CANCEL (requester)
// ======================================================

type CancelInput struct {
	Caller authz.Caller
	ID     string
}

type Cancel struct {
	bookings bookingDomain.Repository
	audit    *audit.Dispatcher
}

func NewCancel(
	bookings bookingDomain.Repository,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		bookings: bookings,
		audit:    audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	in CancelInput,
) (*models.Booking, error) {

	b, err := load(ctx, uc.bookings, in.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(in.Caller, authz.BookingOwnership(b), authz.CancelBooking); err != nil {
		return nil, err
	}

	from := b.Status
	if err := bookingDomain.Cancel(b); err != nil {
		return nil, err
	}

	if err := save(ctx, uc.bookings, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"from": from},
	})

	return b, nil
}

func save(ctx context.Context, repo bookingDomain.Repository, b *models.Booking) error {
	err := repo.Update(ctx, b)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound(MessageNotFound)
	}
	return err
}
