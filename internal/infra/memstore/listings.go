package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type ListingRepository struct {
	s *Store
}

func (r *ListingRepository) Create(_ context.Context, l *models.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = models.EnsureID(l.ID)
	now := r.s.tick()
	l.CreatedAt, l.UpdatedAt = now, now

	r.s.listings[l.ID] = cloneListing(*l)
	return nil
}

func (r *ListingRepository) FindByID(_ context.Context, id string) (*models.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l := r.s.listingRef(id)
	if l == nil {
		return nil, domain.ErrNotFound
	}
	l.Landlord = r.s.userRef(l.LandlordID)
	return l, nil
}

func (r *ListingRepository) Update(_ context.Context, l *models.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.listings[l.ID]
	if !ok {
		return domain.ErrNotFound
	}

	// the aggregate belongs to review writes
	l.Rating = current.Rating
	l.CreatedAt = current.CreatedAt
	l.UpdatedAt = r.s.tick()
	r.s.listings[l.ID] = cloneListing(*l)
	return nil
}

func (r *ListingRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.listings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.listings, id)

	for bid, b := range r.s.bookings {
		if b.ListingID == id {
			delete(r.s.bookings, bid)
		}
	}
	for rid, rv := range r.s.reviews {
		if rv.ListingID == id {
			delete(r.s.reviews, rid)
		}
	}
	return nil
}

func (r *ListingRepository) List(
	_ context.Context,
	f listingDomain.Filter,
	page domain.Page,
) ([]models.Listing, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.Listing
	for _, l := range r.s.listings {
		if matchListing(l, f) {
			l = cloneListing(l)
			l.Landlord = r.s.userRef(l.LandlordID)
			matched = append(matched, l)
		}
	}

	newestFirst(matched, func(l models.Listing) time.Time { return l.CreatedAt })
	return paginate(matched, page), int64(len(matched)), nil
}

func (r *ListingRepository) IDsByLandlord(_ context.Context, landlordID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := []string{}
	for id, l := range r.s.listings {
		if l.LandlordID == landlordID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func matchListing(l models.Listing, f listingDomain.Filter) bool {
	if !l.IsActive {
		return false
	}
	if f.Location != "" && !containsFold(l.Location, f.Location) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && l.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.RoomType != "" && l.RoomType != f.RoomType {
		return false
	}
	if len(f.Amenities) > 0 && !slices.ContainsFunc(f.Amenities, func(a string) bool {
		return slices.Contains(l.Amenities, a)
	}) {
		return false
	}
	if f.Search != "" && !matchesSearch(l.Title+" "+l.Description+" "+l.Location, f.Search) {
		return false
	}
	return true
}

var _ listingDomain.Repository = (*ListingRepository)(nil)
