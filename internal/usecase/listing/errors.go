package listing

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const MessageNotFound = "Listing not found"

func load(ctx context.Context, repo listingDomain.Repository, id string) (*models.Listing, error) {
	l, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
