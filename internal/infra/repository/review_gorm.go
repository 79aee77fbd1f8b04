package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/flatmate-finder/internal/domain/review"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ReviewGormRepository) ListByListing(
	ctx context.Context,
	listingID string,
) ([]models.Review, error) {

	var out []models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *ReviewGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&rv, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

// --------------------------------------------------
// Writes (review + rating in one transaction)
// --------------------------------------------------

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.Review,
) (models.Rating, error) {
	return r.withRecalculation(ctx, rv.ListingID, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(rv).Error
	})
}

func (r *ReviewGormRepository) Update(
	ctx context.Context,
	rv *models.Review,
) (models.Rating, error) {
	return r.withRecalculation(ctx, rv.ListingID, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(rv).Error
	})
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	rv *models.Review,
) (models.Rating, error) {
	return r.withRecalculation(ctx, rv.ListingID, func(tx *gorm.DB) error {
		return tx.Delete(&models.Review{}, "id = ?", rv.ID).Error
	})
}

// withRecalculation locks the listing row, applies write and stores the
// fresh aggregate before committing.
func (r *ReviewGormRepository) withRecalculation(
	ctx context.Context,
	listingID string,
	write func(tx *gorm.DB) error,
) (models.Rating, error) {

	var rating models.Rating

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked models.Listing
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&locked, "id = ?", listingID).Error; err != nil {
			return err
		}

		if err := write(tx); err != nil {
			return err
		}

		var ratings []int
		if err := tx.
			Model(&models.Review{}).
			Where("listing_id = ?", listingID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		rating = domain.Aggregate(ratings)

		return tx.
			Model(&models.Listing{}).
			Where("id = ?", listingID).
			Updates(map[string]any{
				"rating_average": rating.Average,
				"rating_count":   rating.Count,
			}).Error
	})
	if err != nil {
		return models.Rating{}, translate(err)
	}

	return rating, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
