package roommate

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const MessageNotFound = "Roommate request not found"

func load(ctx context.Context, repo roommateDomain.Repository, id string) (*models.RoommateRequest, error) {
	r, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// check runs the budget range rule first so a bad range is reported with
// its own message, then the remaining field rules.
func check(r *models.RoommateRequest) error {
	if err := roommateDomain.CheckBudget(r.Budget); err != nil {
		return budgetError(err)
	}
	return roommateDomain.Validate(r)
}

func budgetError(err error) error {
	var fields validators.Errors
	if errors.As(err, &fields) {
		return httperr.Validation(roommateDomain.MessageBudgetRange, fields)
	}
	return httperr.Validation(roommateDomain.MessageBudgetRange, nil)
}

// write maps storage constraint failures onto the same answers the
// pre-checks give.
func write(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return httperr.Conflict(roommateDomain.MessageActiveExists)
	case errors.Is(err, domain.ErrCheckViolation):
		return budgetError(err)
	case errors.Is(err, domain.ErrNotFound):
		return httperr.NotFound(MessageNotFound)
	}
	return err
}
