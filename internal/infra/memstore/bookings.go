package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if bookingDomain.Status(b.Status).IsActive() && r.hasActive(b.UserID, b.ListingID, "") {
		return domain.ErrDuplicate
	}

	b.ID = models.EnsureID(b.ID)
	now := r.s.tick()
	b.CreatedAt, b.UpdatedAt = now, now

	r.s.bookings[b.ID] = stripBooking(*b)
	return nil
}

func (r *BookingRepository) Update(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if bookingDomain.Status(b.Status).IsActive() && r.hasActive(b.UserID, b.ListingID, b.ID) {
		return domain.ErrDuplicate
	}

	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = r.s.tick()
	r.s.bookings[b.ID] = stripBooking(*b)
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = r.populate(b)
	return &b, nil
}

func (r *BookingRepository) HasActive(_ context.Context, userID, listingID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.hasActive(userID, listingID, ""), nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID, status string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool {
		return b.UserID == userID && (status == "" || b.Status == status)
	}), nil
}

func (r *BookingRepository) ListByListings(_ context.Context, listingIDs []string, status string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool {
		return slices.Contains(listingIDs, b.ListingID) && (status == "" || b.Status == status)
	}), nil
}

func (r *BookingRepository) list(keep func(models.Booking) bool) []models.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if keep(b) {
			out = append(out, r.populate(b))
		}
	}
	newestFirst(out, func(b models.Booking) time.Time { return b.CreatedAt })
	return out
}

func (r *BookingRepository) hasActive(userID, listingID, exceptID string) bool {
	for id, b := range r.s.bookings {
		if id != exceptID &&
			b.UserID == userID &&
			b.ListingID == listingID &&
			bookingDomain.Status(b.Status).IsActive() {
			return true
		}
	}
	return false
}

func (r *BookingRepository) populate(b models.Booking) models.Booking {
	b.User = r.s.userRef(b.UserID)
	b.Listing = r.s.listingRef(b.ListingID)
	return b
}

func stripBooking(b models.Booking) models.Booking {
	b.User = nil
	b.Listing = nil
	return b
}

var _ bookingDomain.Repository = (*BookingRepository)(nil)
