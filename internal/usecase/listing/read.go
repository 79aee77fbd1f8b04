package listing

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListInput struct {
	Filter listingDomain.Filter
	Page   domain.Page
}

type ListOutput struct {
	Listings []models.Listing
	Total    int64
	Page     domain.Page
}

type List struct {
	repo listingDomain.Repository
}

func NewList(repo listingDomain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, in ListInput) (*ListOutput, error) {
	items, total, err := uc.repo.List(ctx, in.Filter, in.Page)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Listings: items, Total: total, Page: in.Page}, nil
}

// ======================================================
// GET
// ======================================================

type Get struct {
	repo listingDomain.Repository
}

func NewGet(repo listingDomain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id string) (*models.Listing, error) {
	return load(ctx, uc.repo, id)
}
