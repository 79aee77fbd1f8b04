package roommate

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type ListInput struct {
	Filter roommateDomain.Filter
	Page   domain.Page
}

type ListOutput struct {
	Requests []models.RoommateRequest
	Total    int64
	Page     domain.Page
}

type List struct {
	repo roommateDomain.Repository
}

func NewList(repo roommateDomain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, in ListInput) (*ListOutput, error) {
	items, total, err := uc.repo.List(ctx, in.Filter, in.Page)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Requests: items, Total: total, Page: in.Page}, nil
}

type ListMine struct {
	repo roommateDomain.Repository
}

func NewListMine(repo roommateDomain.Repository) *ListMine {
	return &ListMine{repo: repo}
}

func (uc *ListMine) Execute(ctx context.Context, userID string) ([]models.RoommateRequest, error) {
	return uc.repo.ListByUser(ctx, userID)
}

type Get struct {
	repo roommateDomain.Repository
}

func NewGet(repo roommateDomain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(ctx context.Context, id string) (*models.RoommateRequest, error) {
	return load(ctx, uc.repo, id)
}
