package auditlog

import (
	"context"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type ListInput struct {
	Caller authz.Caller
	Filter audit.Filter
	Page   domain.Page
}

type ListOutput struct {
	Logs  []models.AuditLog
	Total int64
	Page  domain.Page
}

type List struct {
	store audit.Store
}

func NewList(store audit.Store) *List {
	return &List{store: store}
}

// Execute is restricted to admins.
func (uc *List) Execute(ctx context.Context, in ListInput) (*ListOutput, error) {
	if err := authz.Require(in.Caller, authz.Ownership{}, authz.ViewAuditLog); err != nil {
		return nil, err
	}

	logs, total, err := uc.store.List(ctx, in.Filter, in.Page)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Logs: logs, Total: total, Page: in.Page}, nil
}
