package memstore

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type RoommateRepository struct {
	s *Store
}

func (r *RoommateRepository) Create(_ context.Context, req *models.RoommateRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(req, ""); err != nil {
		return err
	}

	req.ID = models.EnsureID(req.ID)
	now := r.s.tick()
	req.CreatedAt, req.UpdatedAt = now, now

	r.s.roommates[req.ID] = cloneRoommate(*req)
	return nil
}

func (r *RoommateRepository) Update(_ context.Context, req *models.RoommateRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.roommates[req.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.check(req, req.ID); err != nil {
		return err
	}

	req.CreatedAt = current.CreatedAt
	req.UpdatedAt = r.s.tick()
	r.s.roommates[req.ID] = cloneRoommate(*req)
	return nil
}

func (r *RoommateRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.roommates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.roommates, id)
	return nil
}

func (r *RoommateRepository) FindByID(_ context.Context, id string) (*models.RoommateRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.roommates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	req = cloneRoommate(req)
	req.User = r.s.userRef(req.UserID)
	return &req, nil
}

func (r *RoommateRepository) HasActive(_ context.Context, userID, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.hasActive(userID, excludeID), nil
}

func (r *RoommateRepository) List(
	_ context.Context,
	f roommateDomain.Filter,
	page domain.Page,
) ([]models.RoommateRequest, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.RoommateRequest
	for _, req := range r.s.roommates {
		if matchRoommate(req, f) {
			req = cloneRoommate(req)
			req.User = r.s.userRef(req.UserID)
			matched = append(matched, req)
		}
	}

	newestFirst(matched, func(req models.RoommateRequest) time.Time { return req.CreatedAt })
	return paginate(matched, page), int64(len(matched)), nil
}

func (r *RoommateRepository) ListByUser(_ context.Context, userID string) ([]models.RoommateRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.RoommateRequest{}
	for _, req := range r.s.roommates {
		if req.UserID == userID {
			out = append(out, cloneRoommate(req))
		}
	}
	newestFirst(out, func(req models.RoommateRequest) time.Time { return req.CreatedAt })
	return out, nil
}

// check mirrors the budget CHECK constraint and the partial unique index on
// active requests.
func (r *RoommateRepository) check(req *models.RoommateRequest, selfID string) error {
	if req.Budget.Min >= req.Budget.Max {
		return domain.ErrCheckViolation
	}
	if req.IsActive && r.hasActive(req.UserID, selfID) {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *RoommateRepository) hasActive(userID, excludeID string) bool {
	for id, req := range r.s.roommates {
		if id != excludeID && req.UserID == userID && req.IsActive {
			return true
		}
	}
	return false
}

func matchRoommate(req models.RoommateRequest, f roommateDomain.Filter) bool {
	if !req.IsActive {
		return false
	}
	if f.Location != "" && !containsFold(req.Location, f.Location) &&
		!slices.ContainsFunc(req.PreferredAreas, func(area string) bool { return containsFold(area, f.Location) }) {
		return false
	}
	if f.MinBudget != nil && req.Budget.Min < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && req.Budget.Max > *f.MaxBudget {
		return false
	}
	if f.RoomType != "" && req.RoomType != f.RoomType {
		return false
	}
	if f.MoveInFrom != nil && req.MoveInDate.Before(*f.MoveInFrom) {
		return false
	}
	if f.Search != "" {
		doc := req.Title + " " + req.Location + " " + strings.Join(req.PreferredAreas, " ")
		if !matchesSearch(doc, f.Search) {
			return false
		}
	}
	return true
}

var _ roommateDomain.Repository = (*RoommateRepository)(nil)
