package listing

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	LandlordID string

	Title       string
	Description string
	Location    string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	Roommates   models.Occupancy

	Images        []string
	Amenities     []string
	RoomType      string
	AvailableFrom time.Time
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  listingDomain.Repository
	audit *audit.Dispatcher
}

func NewCreate(
	repo listingDomain.Repository,
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
) (*models.Listing, error) {

	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	l := &models.Listing{
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Location:      strings.TrimSpace(in.Location),
		Price:         in.Price,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Roommates:     in.Roommates,
		Images:        in.Images,
		Amenities:     amenities,
		RoomType:      in.RoomType,
		AvailableFrom: in.AvailableFrom,
		LandlordID:    in.LandlordID,
		IsActive:      true,
	}

	if err := listingDomain.Validate(l); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.LandlordID,
		Action:   audit.ActionListingCreated,
		Entity:   "listing",
		EntityID: l.ID,
		Metadata: map[string]any{"title": l.Title, "price": l.Price},
	})

	// reload so the landlord is populated
	return load(ctx, uc.repo, l.ID)
}
