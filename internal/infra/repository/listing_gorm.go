package repository

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const listingDocument = "to_tsvector('simple', title || ' ' || description || ' ' || location)"

type ListingGormRepository struct {
	db *gorm.DB
}

func NewListingGormRepository(db *gorm.DB) *ListingGormRepository {
	return &ListingGormRepository{db: db}
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ListingGormRepository) Create(
	ctx context.Context,
	l *models.Listing,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error)
}

func (r *ListingGormRepository) Update(
	ctx context.Context,
	l *models.Listing,
) error {
	// rating columns are owned by the locked recalculation in review writes
	res := r.db.WithContext(ctx).
		Model(l).
		Select("*").
		Omit(clause.Associations, "id", "created_at", "rating_average", "rating_count").
		Updates(l)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ListingGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Listing{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ListingGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Listing, error) {

	var l models.Listing
	if err := r.db.WithContext(ctx).
		Preload("Landlord").
		First(&l, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *ListingGormRepository) List(
	ctx context.Context,
	f listingDomain.Filter,
	page domain.Page,
) ([]models.Listing, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("is_active = ?", true)

	if f.Location != "" {
		q = q.Where("location ILIKE ?", contains(f.Location))
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *f.Bedrooms)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if len(f.Amenities) > 0 {
		q = q.Where("amenities && ?", pq.StringArray(f.Amenities))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where(listingDocument+" @@ plainto_tsquery('simple', ?)", s)
	}

	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var out []models.Listing
	if err := base.
		Preload("Landlord").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&out).Error; err != nil {
		return nil, 0, translate(err)
	}

	return out, total, nil
}

func (r *ListingGormRepository) IDsByLandlord(
	ctx context.Context,
	landlordID string,
) ([]string, error) {

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("landlord_id = ?", landlordID).
		Pluck("id", &ids).Error; err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// Compile-time check
var _ listingDomain.Repository = (*ListingGormRepository)(nil)
