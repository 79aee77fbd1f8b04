package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type AuditRepository struct {
	s *Store
}

func (r *AuditRepository) Create(_ context.Context, entry *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = models.EnsureID(entry.ID)
	entry.CreatedAt = r.s.tick()
	r.s.audit = append(r.s.audit, *entry)
	return nil
}

func (r *AuditRepository) List(
	_ context.Context,
	f audit.Filter,
	page domain.Page,
) ([]models.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.AuditLog
	for _, e := range slices.Backward(r.s.audit) {
		if matchAudit(e, f) {
			matched = append(matched, e)
		}
	}
	newestFirst(matched, func(e models.AuditLog) time.Time { return e.CreatedAt })
	return paginate(matched, page), int64(len(matched)), nil
}

func matchAudit(e models.AuditLog, f audit.Filter) bool {
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	if f.Entity != "" && e.Entity != f.Entity {
		return false
	}
	if f.UserID != "" && (e.UserID == nil || *e.UserID != f.UserID) {
		return false
	}
	if f.From != nil && e.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !e.CreatedAt.Before(*f.To) {
		return false
	}
	return true
}

var _ audit.Store = (*AuditRepository)(nil)
