package roommate

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type UpdateInput struct {
	Caller authz.Caller
	ID     string
	Patch  roommateDomain.Patch
}

type Update struct {
	repo  roommateDomain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(
	repo roommateDomain.Repository,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.RoommateRequest, error) {

	r, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return nil, err
	}

	if err := authz.Require(in.Caller, authz.RoommateOwnership(r), authz.EditRoommateRequest); err != nil {
		return nil, err
	}

	wasActive := r.IsActive
	in.Patch.Apply(r)

	if err := check(r); err != nil {
		return nil, err
	}

	// re-activating must not leave the owner with two active requests
	if r.IsActive && !wasActive {
		active, err := uc.repo.HasActive(ctx, r.UserID, r.ID)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, httperr.Conflict(roommateDomain.MessageActiveExists)
		}
	}

	if err := write(uc.repo.Update(ctx, r)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionRoommateUpdated,
		Entity:   "roommate_request",
		EntityID: r.ID,
		Metadata: map[string]any{"isActive": r.IsActive},
	})

	return load(ctx, uc.repo, r.ID)
}

// ======================================================
// DELETE
// ======================================================

type DeleteInput struct {
	Caller authz.Caller
	ID     string
}

type Delete struct {
	repo  roommateDomain.Repository
	audit *audit.Dispatcher
}

func NewDelete(
	repo roommateDomain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(ctx context.Context, in DeleteInput) error {
	r, err := load(ctx, uc.repo, in.ID)
	if err != nil {
		return err
	}

	if err := authz.Require(in.Caller, authz.RoommateOwnership(r), authz.DeleteRoommateRequest); err != nil {
		return err
	}

	if err := write(uc.repo.Delete(ctx, r.ID)); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Caller.ID,
		Action:   audit.ActionRoommateDeleted,
		Entity:   "roommate_request",
		EntityID: r.ID,
	})
	return nil
}
