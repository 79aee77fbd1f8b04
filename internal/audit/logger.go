package audit

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Actions recorded by the use cases.
const (
	ActionUserRegistered       = "user_registered"
	ActionUserLoggedOut        = "user_logged_out"
	ActionProfileUpdated       = "profile_updated"
	ActionListingCreated       = "listing_created"
	ActionListingUpdated       = "listing_updated"
	ActionListingDeleted       = "listing_deleted"
	ActionBookingCreated       = "booking_created"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionBookingCancelled     = "booking_cancelled"
	ActionRoommateCreated      = "roommate_request_created"
	ActionRoommateUpdated      = "roommate_request_updated"
	ActionRoommateDeleted      = "roommate_request_deleted"
	ActionReviewCreated        = "review_created"
	ActionReviewUpdated        = "review_updated"
	ActionReviewDeleted        = "review_deleted"
	ActionImageUploaded        = "image_uploaded"
)

type Filter struct {
	Action string
	Entity string
	UserID string
	From   *time.Time
	To     *time.Time
}

type Store interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, f Filter, page domain.Page) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.store.Create(ctx, &models.AuditLog{
		UserID:   optional(ev.UserID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
