package review

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	reviewDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/review"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const (
	MessageNotFound        = "Review not found"
	MessageListingNotFound = "Listing not found"
)

// ======================================================
// LIST
// ======================================================

type List struct {
	reviews  reviewDomain.Repository
	listings listingDomain.Repository
}

func NewList(
	reviews reviewDomain.Repository,
	listings listingDomain.Repository,
) *List {
	return &List{
		reviews:  reviews,
		listings: listings,
	}
}

func (uc *List) Execute(ctx context.Context, listingID string) ([]models.Review, error) {
	if _, err := loadListing(ctx, uc.listings, listingID); err != nil {
		return nil, err
	}
	return uc.reviews.ListByListing(ctx, listingID)
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	UserID    string
	ListingID string
	Rating    int
	Comment   string
}

type Create struct {
	reviews  reviewDomain.Repository
	listings listingDomain.Repository
	audit    *audit.Dispatcher
}

func NewCreate(
	reviews reviewDomain.Repository,
	listings listingDomain.Repository,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		reviews:  reviews,
		listings: listings,
		audit:    audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Review, error) {

	l, err := loadListing(ctx, uc.listings, in.ListingID)
	if err != nil {
		return nil, err
	}

	if l.LandlordID == in.UserID {
		return nil, httperr.BadRequest(reviewDomain.MessageOwn)
	}

	r := &models.Review{
		ListingID: l.ID,
		UserID:    in.UserID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}

	if err := reviewDomain.Validate(r); err != nil {
		return nil, err
	}

	rating, err := uc.reviews.Create(ctx, r)
	if err != nil {
		return nil, writeError(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: r.ID,
		Metadata: ratingMetadata(l.ID, rating),
	})

	return reload(ctx, uc.reviews, r.ID)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateInput struct {
	Caller    authz.Caller
	ListingID string
	ReviewID  string
	Patch     reviewDomain.Patch
}

type Update struct {
	reviews reviewDomain.Repository
	audit   *audit.Dispatcher
}

func NewUpdate(
	reviews reviewDomain.Repository,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		reviews: reviews,
		audit:   audit,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Review, error) {

	r, err := loadReview(ctx, uc.reviews, in.ListingID, in.ReviewID)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(in.Caller, authz.ReviewOwnership(r), authz.EditReview); err != nil {
		return nil, err
	}

	in.Patch.Apply(r)
	r.Comment = strings.TrimSpace(r.Comment)

	if err := reviewDomain.Validate(r); err != nil {
		return nil, err
	}

	rating, err := uc.reviews.Update(ctx, r)
	if err != nil {
		return nil, writeError(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionReviewUpdated,
		Entity:   "review",
		EntityID: r.ID,
		Metadata: ratingMetadata(r.ListingID, rating),
	})

	return reload(ctx, uc.reviews, r.ID)
}

// ======================================================
// DELETE
// ======================================================

type DeleteInput struct {
	Caller    authz.Caller
	ListingID string
	ReviewID  string
}

type Delete struct {
	reviews reviewDomain.Repository
	audit   *audit.Dispatcher
}

func NewDelete(
	reviews reviewDomain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		reviews: reviews,
		audit:   audit,
	}
}

func (uc *Delete) Execute(ctx context.Context, in DeleteInput) error {
	r, err := loadReview(ctx, uc.reviews, in.ListingID, in.ReviewID)
	if err != nil {
		return err
	}

	if err := authz.Require(in.Caller, authz.ReviewOwnership(r), authz.DeleteReview); err != nil {
		return err
	}

	rating, err := uc.reviews.Delete(ctx, r)
	if err != nil {
		return writeError(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "review",
		EntityID: r.ID,
		Metadata: ratingMetadata(r.ListingID, rating),
	})
	return nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func loadListing(ctx context.Context, repo listingDomain.Repository, id string) (*models.Listing, error) {
	l, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageListingNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// loadReview also rejects a review that exists but belongs to another
// listing than the one in the path.
func loadReview(ctx context.Context, repo reviewDomain.Repository, listingID, reviewID string) (*models.Review, error) {
	r, err := repo.FindByID(ctx, reviewID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageNotFound)
	}
	if err != nil {
		return nil, err
	}
	if r.ListingID != listingID {
		return nil, httperr.NotFound(MessageNotFound)
	}
	return r, nil
}

func reload(ctx context.Context, repo reviewDomain.Repository, id string) (*models.Review, error) {
	r, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, writeError(err)
	}
	return r, nil
}

func writeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return httperr.Conflict(reviewDomain.MessageDuplicate)
	case errors.Is(err, domain.ErrNotFound):
		return httperr.NotFound(MessageNotFound)
	}
	return err
}

func ratingMetadata(listingID string, rating models.Rating) map[string]any {
	return map[string]any{
		"listing": listingID,
		"average": rating.Average,
		"count":   rating.Count,
	}
}
