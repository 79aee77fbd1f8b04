package memstore

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Test User", Email: email, PasswordHash: "x"}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func seedListing(t *testing.T, s *Store, landlordID string, mutate func(*models.Listing)) *models.Listing {
	t.Helper()
	l := &models.Listing{
		Title:         "Cozy room downtown",
		Description:   "A cozy room close to everything.",
		Location:      "Downtown",
		Price:         1000,
		Bedrooms:      1,
		Bathrooms:     1,
		Roommates:     models.Occupancy{Max: 2},
		Images:        []string{"https://img.example.com/a.webp"},
		Amenities:     []string{"wifi"},
		RoomType:      "Private Room",
		AvailableFrom: time.Now(),
		LandlordID:    landlordID,
		IsActive:      true,
	}
	if mutate != nil {
		mutate(l)
	}
	require.NoError(t, s.Listings().Create(context.Background(), l))
	return l
}

func TestUsersEmailIsUniqueAndLowercased(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := seedUser(t, s, "A@X.com")
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)

	err := s.Users().Create(ctx, &models.User{Name: "Dup", Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := s.Users().FindByEmail(ctx, " A@x.COM ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = s.Users().FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListingsFilterAndPaginate(t *testing.T) {
	s := New()
	ctx := context.Background()
	landlord := seedUser(t, s, "l@x.com")

	seedListing(t, s, landlord.ID, func(l *models.Listing) { l.Location = "Koramangala"; l.Price = 500 })
	seedListing(t, s, landlord.ID, func(l *models.Listing) { l.Amenities = []string{"gym", "pool"}; l.Price = 2000 })
	seedListing(t, s, landlord.ID, func(l *models.Listing) { l.IsActive = false })
	newest := seedListing(t, s, landlord.ID, func(l *models.Listing) { l.Title = "Studio with balcony view"; l.RoomType = "Studio" })

	all, total, err := s.Listings().List(ctx, listingDomain.Filter{}, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, newest.ID, all[0].ID)
	require.NotNil(t, all[0].Landlord)
	assert.Equal(t, landlord.Email, all[0].Landlord.Email)

	byLoc, _, _ := s.Listings().List(ctx, listingDomain.Filter{Location: "kora"}, domain.NewPage(1, 10))
	assert.Len(t, byLoc, 1)

	maxPrice := 1500.0
	cheap, _, _ := s.Listings().List(ctx, listingDomain.Filter{MaxPrice: &maxPrice}, domain.NewPage(1, 10))
	assert.Len(t, cheap, 2)

	withPool, _, _ := s.Listings().List(ctx, listingDomain.Filter{Amenities: []string{"pool", "parking"}}, domain.NewPage(1, 10))
	assert.Len(t, withPool, 1)

	search, _, _ := s.Listings().List(ctx, listingDomain.Filter{Search: "balcony studio"}, domain.NewPage(1, 10))
	require.Len(t, search, 1)
	assert.Equal(t, newest.ID, search[0].ID)

	page2, total, _ := s.Listings().List(ctx, listingDomain.Filter{}, domain.NewPage(2, 2))
	assert.EqualValues(t, 3, total)
	assert.Len(t, page2, 1)
}

func TestListingDeleteCascades(t *testing.T) {
	s := New()
	ctx := context.Background()
	landlord := seedUser(t, s, "l@x.com")
	tenant := seedUser(t, s, "t@x.com")
	l := seedListing(t, s, landlord.ID, nil)

	b := &models.Booking{UserID: tenant.ID, ListingID: l.ID, Status: "pending"}
	require.NoError(t, s.Bookings().Create(ctx, b))
	_, err := s.Reviews().Create(ctx, &models.Review{UserID: tenant.ID, ListingID: l.ID, Rating: 4})
	require.NoError(t, err)

	require.NoError(t, s.Listings().Delete(ctx, l.ID))

	_, err = s.Bookings().FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	reviews, _ := s.Reviews().ListByListing(ctx, l.ID)
	assert.Empty(t, reviews)
	assert.ErrorIs(t, s.Listings().Delete(ctx, l.ID), domain.ErrNotFound)
}

func TestBookingsAllowOneActivePerUserAndListing(t *testing.T) {
	s := New()
	ctx := context.Background()
	landlord := seedUser(t, s, "l@x.com")
	tenant := seedUser(t, s, "t@x.com")
	l := seedListing(t, s, landlord.ID, nil)

	first := &models.Booking{UserID: tenant.ID, ListingID: l.ID, Status: "pending"}
	require.NoError(t, s.Bookings().Create(ctx, first))

	err := s.Bookings().Create(ctx, &models.Booking{UserID: tenant.ID, ListingID: l.ID, Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	first.Status = "cancelled"
	require.NoError(t, s.Bookings().Update(ctx, first))
	require.NoError(t, s.Bookings().Create(ctx, &models.Booking{UserID: tenant.ID, ListingID: l.ID, Status: "pending"}))

	mine, err := s.Bookings().ListByUser(ctx, tenant.ID, "pending")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Listing)
	assert.Equal(t, landlord.ID, mine[0].Listing.LandlordID)

	forLandlord, err := s.Bookings().ListByListings(ctx, []string{l.ID}, "")
	require.NoError(t, err)
	assert.Len(t, forLandlord, 2)
}

func TestRoommateConstraints(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := seedUser(t, s, "r@x.com")

	bad := &models.RoommateRequest{UserID: u.ID, Budget: models.Budget{Min: 40000, Max: 30000}, IsActive: true}
	assert.ErrorIs(t, s.Roommates().Create(ctx, bad), domain.ErrCheckViolation)

	first := &models.RoommateRequest{UserID: u.ID, Location: "Whitefield", Budget: models.Budget{Min: 1, Max: 2}, IsActive: true}
	require.NoError(t, s.Roommates().Create(ctx, first))

	second := &models.RoommateRequest{UserID: u.ID, Budget: models.Budget{Min: 1, Max: 2}, IsActive: true}
	assert.ErrorIs(t, s.Roommates().Create(ctx, second), domain.ErrDuplicate)

	second.IsActive = false
	require.NoError(t, s.Roommates().Create(ctx, second))

	second.IsActive = true
	assert.ErrorIs(t, s.Roommates().Update(ctx, second), domain.ErrDuplicate)

	active, err := s.Roommates().HasActive(ctx, u.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, active)

	list, total, err := s.Roommates().List(ctx, roommateDomain.Filter{Location: "white"}, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestReviewsRecalculateRating(t *testing.T) {
	s := New()
	ctx := context.Background()
	landlord := seedUser(t, s, "l@x.com")
	a := seedUser(t, s, "a@x.com")
	b := seedUser(t, s, "b@x.com")
	l := seedListing(t, s, landlord.ID, nil)

	ra := &models.Review{UserID: a.ID, ListingID: l.ID, Rating: 5}
	_, err := s.Reviews().Create(ctx, ra)
	require.NoError(t, err)

	rating, err := s.Reviews().Create(ctx, &models.Review{UserID: b.ID, ListingID: l.ID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, models.Rating{Average: 4.5, Count: 2}, rating)

	_, err = s.Reviews().Create(ctx, &models.Review{UserID: a.ID, ListingID: l.ID, Rating: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	ra.Rating = 3
	rating, err = s.Reviews().Update(ctx, ra)
	require.NoError(t, err)
	assert.Equal(t, models.Rating{Average: 3.5, Count: 2}, rating)

	rating, err = s.Reviews().Delete(ctx, ra)
	require.NoError(t, err)
	assert.Equal(t, models.Rating{Average: 4, Count: 1}, rating)

	stored, err := s.Listings().FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, rating, stored.Rating)

	_, err = s.Reviews().Create(ctx, &models.Review{UserID: a.ID, ListingID: "missing", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListingUpdateKeepsFreshRating(t *testing.T) {
	s := New()
	ctx := context.Background()
	landlord := seedUser(t, s, "l@x.com")
	tenant := seedUser(t, s, "t@x.com")
	l := seedListing(t, s, landlord.ID, nil)

	loaded, err := s.Listings().FindByID(ctx, l.ID)
	require.NoError(t, err)

	_, err = s.Reviews().Create(ctx, &models.Review{UserID: tenant.ID, ListingID: l.ID, Rating: 4})
	require.NoError(t, err)

	loaded.Price = 1200
	require.NoError(t, s.Listings().Update(ctx, loaded))

	stored, err := s.Listings().FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stored.Price)
	assert.Equal(t, models.Rating{Average: 4, Count: 1}, stored.Rating)
}

func TestListingsHugePageIsEmpty(t *testing.T) {
	s := New()
	landlord := seedUser(t, s, "l@x.com")
	seedListing(t, s, landlord.ID, nil)

	items, total, err := s.Listings().List(context.Background(), listingDomain.Filter{}, domain.NewPage(math.MaxInt, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, items)
}
