package roommate

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID string

	Title          string
	Bio            string
	Location       string
	PreferredAreas []string
	Budget         models.Budget
	RoomType       string
	MoveInDate     time.Time
	Lifestyle      models.Lifestyle

	Interests         []string
	IdealRoommate     string
	DealBreakers      string
	ContactPreference string
	ProfileImage      string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  roommateDomain.Repository
	audit *audit.Dispatcher
}

func NewCreate(
	repo roommateDomain.Repository,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.RoommateRequest, error) {

	r := &models.RoommateRequest{
		UserID:            in.UserID,
		Title:             strings.TrimSpace(in.Title),
		Bio:               strings.TrimSpace(in.Bio),
		Location:          strings.TrimSpace(in.Location),
		PreferredAreas:    in.PreferredAreas,
		Budget:            in.Budget,
		RoomType:          in.RoomType,
		MoveInDate:        in.MoveInDate,
		Lifestyle:         in.Lifestyle,
		Interests:         in.Interests,
		IdealRoommate:     strings.TrimSpace(in.IdealRoommate),
		DealBreakers:      strings.TrimSpace(in.DealBreakers),
		ContactPreference: in.ContactPreference,
		ProfileImage:      strings.TrimSpace(in.ProfileImage),
		IsActive:          true,
	}
	roommateDomain.ApplyDefaults(r)

	if err := check(r); err != nil {
		return nil, err
	}

	active, err := uc.repo.HasActive(ctx, in.UserID, "")
	if err != nil {
		return nil, err
	}
	if active {
		return nil, httperr.Conflict(roommateDomain.MessageActiveExists)
	}

	if err := write(uc.repo.Create(ctx, r)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionRoommateCreated,
		Entity:   "roommate_request",
		EntityID: r.ID,
	})

	return load(ctx, uc.repo, r.ID)
}
