package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

// --------------------------------------------------
// Create / update
// --------------------------------------------------

// Create relies on the partial unique index over active bookings; a
// concurrent duplicate surfaces as domain.ErrDuplicate.
func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.populated(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) HasActive(
	ctx context.Context,
	userID string,
	listingID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"user_id = ? AND listing_id = ? AND status IN ?",
			userID,
			listingID,
			activeStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID string,
	status string,
) ([]models.Booking, error) {

	q := r.populated(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []models.Booking
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *BookingGormRepository) ListByListings(
	ctx context.Context,
	listingIDs []string,
	status string,
) ([]models.Booking, error) {

	if len(listingIDs) == 0 {
		return []models.Booking{}, nil
	}

	q := r.populated(ctx).Where("listing_id IN ?", listingIDs)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []models.Booking
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *BookingGormRepository) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Listing")
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
