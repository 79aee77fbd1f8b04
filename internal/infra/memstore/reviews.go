package memstore

import (
	"context"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	reviewDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/review"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type ReviewRepository struct {
	s *Store
}

func (r *ReviewRepository) ListByListing(_ context.Context, listingID string) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Review{}
	for _, rv := range r.s.reviews {
		if rv.ListingID == listingID {
			rv.User = r.s.userRef(rv.UserID)
			out = append(out, rv)
		}
	}
	newestFirst(out, func(rv models.Review) time.Time { return rv.CreatedAt })
	return out, nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id string) (*models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rv.User = r.s.userRef(rv.UserID)
	return &rv, nil
}

func (r *ReviewRepository) Create(_ context.Context, rv *models.Review) (models.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.listings[rv.ListingID]; !ok {
		return models.Rating{}, domain.ErrNotFound
	}
	for _, existing := range r.s.reviews {
		if existing.UserID == rv.UserID && existing.ListingID == rv.ListingID {
			return models.Rating{}, domain.ErrDuplicate
		}
	}

	rv.ID = models.EnsureID(rv.ID)
	now := r.s.tick()
	rv.CreatedAt, rv.UpdatedAt = now, now

	stored := *rv
	stored.User, stored.Listing = nil, nil
	r.s.reviews[rv.ID] = stored

	return r.recalculate(rv.ListingID), nil
}

func (r *ReviewRepository) Update(_ context.Context, rv *models.Review) (models.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.reviews[rv.ID]
	if !ok {
		return models.Rating{}, domain.ErrNotFound
	}

	rv.CreatedAt = current.CreatedAt
	rv.UpdatedAt = r.s.tick()

	stored := *rv
	stored.User, stored.Listing = nil, nil
	r.s.reviews[rv.ID] = stored

	return r.recalculate(rv.ListingID), nil
}

func (r *ReviewRepository) Delete(_ context.Context, rv *models.Review) (models.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[rv.ID]; !ok {
		return models.Rating{}, domain.ErrNotFound
	}
	delete(r.s.reviews, rv.ID)

	return r.recalculate(rv.ListingID), nil
}

// recalculate runs under the write lock, so the aggregate and the review
// set change atomically.
func (r *ReviewRepository) recalculate(listingID string) models.Rating {
	var ratings []int
	for _, rv := range r.s.reviews {
		if rv.ListingID == listingID {
			ratings = append(ratings, rv.Rating)
		}
	}

	rating := reviewDomain.Aggregate(ratings)
	if l, ok := r.s.listings[listingID]; ok {
		l.Rating = rating
		r.s.listings[listingID] = l
	}
	return rating
}

var _ reviewDomain.Repository = (*ReviewRepository)(nil)
