package listing

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type UpdateInput struct {
	Caller authz.Caller
	ID     string
	Patch  listingDomain.Patch
}

type Update struct {
	repo  listingDomain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(
	repo listingDomain.Repository,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

// Execute merges the patch and re-validates the whole record with the
// create rules before saving.
func (uc *Update) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Listing, error) {

	l, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(in.Caller, authz.ListingOwnership(l), authz.EditListing); err != nil {
		return nil, err
	}

	in.Patch.Apply(l)

	if err := listingDomain.Validate(l); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionListingUpdated,
		Entity:   "listing",
		EntityID: l.ID,
	})

	return load(ctx, uc.repo, l.ID)
}

// ======================================================
// DELETE
// ======================================================

type DeleteInput struct {
	Caller authz.Caller
	ID     string
}

type Delete struct {
	repo  listingDomain.Repository
	audit *audit.Dispatcher
}

func NewDelete(
	repo listingDomain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(ctx context.Context, in DeleteInput) error {
	l, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return err
	}

	if err := authz.Require(in.Caller, authz.ListingOwnership(l), authz.DeleteListing); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, l.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionListingDeleted,
		Entity:   "listing",
		EntityID: l.ID,
		Metadata: map[string]any{"title": l.Title},
	})
	return nil
}
