package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const roommateDocument = "to_tsvector('simple', title || ' ' || location || ' ' || array_to_string(preferred_areas, ' '))"

type RoommateGormRepository struct {
	db *gorm.DB
}

func NewRoommateGormRepository(db *gorm.DB) *RoommateGormRepository {
	return &RoommateGormRepository{db: db}
}

func (r *RoommateGormRepository) Create(
	ctx context.Context,
	req *models.RoommateRequest,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error)
}

func (r *RoommateGormRepository) Update(
	ctx context.Context,
	req *models.RoommateRequest,
) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(req).Error)
}

func (r *RoommateGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.RoommateRequest{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RoommateGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.RoommateRequest, error) {

	var req models.RoommateRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&req, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (r *RoommateGormRepository) HasActive(
	ctx context.Context,
	userID string,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.RoommateRequest{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *RoommateGormRepository) List(
	ctx context.Context,
	f roommateDomain.Filter,
	page domain.Page,
) ([]models.RoommateRequest, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.RoommateRequest{}).
		Where("is_active = ?", true)

	if f.Location != "" {
		pattern := contains(f.Location)
		q = q.Where(
			"(location ILIKE ? OR EXISTS (SELECT 1 FROM unnest(preferred_areas) AS area WHERE area ILIKE ?))",
			pattern,
			pattern,
		)
	}
	if f.MinBudget != nil {
		q = q.Where("budget_min >= ?", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		q = q.Where("budget_max <= ?", *f.MaxBudget)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.MoveInFrom != nil {
		q = q.Where("move_in_date >= ?", *f.MoveInFrom)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where(roommateDocument+" @@ plainto_tsquery('simple', ?)", s)
	}

	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var out []models.RoommateRequest
	if err := base.
		Preload("User").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&out).Error; err != nil {
		return nil, 0, translate(err)
	}

	return out, total, nil
}

func (r *RoommateGormRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]models.RoommateRequest, error) {

	var out []models.RoommateRequest
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Compile-time check
var _ roommateDomain.Repository = (*RoommateGormRepository)(nil)
