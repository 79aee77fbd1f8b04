// Package seed loads a small demo data set: three users (one admin), a
// few listings owned by the second user and a roommate request by the
// first.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const sampleImage = "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?fit=max&fm=jpg&q=80&w=1080"

type Summary struct {
	Users            int
	Listings         int
	RoommateRequests int
}

type Seeder struct {
	Users     userDomain.Repository
	Listings  listingDomain.Repository
	Roommates roommateDomain.Repository
}

type sampleUser struct {
	name, email, password, phone, bio, role string
}

var users = []sampleUser{
	{"John Doe", "john@example.com", "password123", "+44 7123 456789", "Software developer looking for a quiet flatmate", models.RoleUser},
	{"Jane Smith", "jane@example.com", "password123", "+44 7987 654321", "Marketing professional, love cooking and yoga", models.RoleUser},
	{"Admin User", "admin@example.com", "admin123", "+44 7000 000000", "Platform administrator", models.RoleAdmin},
}

func listings(landlordID string) []*models.Listing {
	return []*models.Listing{
		{
			Title:         "Modern 2-Bed Apartment in Bandra West",
			Description:   "Beautiful modern apartment with sea view and all amenities. Perfect for young professionals.",
			Location:      "Bandra West, Mumbai",
			Price:         85000,
			Bedrooms:      2,
			Bathrooms:     2,
			Roommates:     models.Occupancy{Current: 1, Max: 2},
			Images:        []string{sampleImage},
			Amenities:     []string{"wifi", "parking", "furnished", "gym"},
			RoomType:      "Private Room",
			AvailableFrom: date(2024, time.October, 1),
		},
		{
			Title:         "Cozy Room in Andheri East",
			Description:   "Friendly flatshare with young professionals in a bustling part of Andheri, close to cafes and nightlife.",
			Location:      "Andheri East, Mumbai",
			Price:         45000,
			Bedrooms:      3,
			Bathrooms:     2,
			Roommates:     models.Occupancy{Current: 2, Max: 3},
			Images:        []string{sampleImage},
			Amenities:     []string{"wifi", "furnished", "kitchen"},
			RoomType:      "Private Room",
			AvailableFrom: date(2024, time.October, 1),
		},
		{
			Title:         "Modern Flat with Sea View",
			Description:   "Luxury high-rise apartment with amazing sea view in Navi Mumbai.",
			Location:      "Seawoods, Navi Mumbai",
			Price:         55000,
			Bedrooms:      2,
			Bathrooms:     2,
			Roommates:     models.Occupancy{Current: 1, Max: 2},
			Images:        []string{sampleImage},
			Amenities:     []string{"wifi", "parking", "furnished", "gym", "balcony"},
			RoomType:      "Private Room",
			AvailableFrom: date(2024, time.September, 10),
		},
	}
}

func roommateRequest(userID string) *models.RoommateRequest {
	return &models.RoommateRequest{
		UserID:         userID,
		Title:          "Looking for a flatmate in South Mumbai",
		Bio:            "Hi! I'm a 25-year-old software engineer working in Bandra. I'm clean, respectful, and looking for someone similar to share a nice apartment with.",
		Location:       "South Mumbai",
		PreferredAreas: []string{"Bandra", "Khar", "Santa Cruz"},
		Budget:         models.Budget{Min: 40000, Max: 60000},
		RoomType:       "Private Room",
		MoveInDate:     date(2024, time.October, 15),
		Lifestyle: models.Lifestyle{
			Cleanliness:   4,
			SocialLevel:   3,
			WorkSchedule:  "9-5",
			SleepSchedule: "early-bird",
		},
		Interests:         []string{"reading", "cooking", "movies", "fitness"},
		IdealRoommate:     "Someone who is clean, respectful, and has similar interests",
		DealBreakers:      "Smoking, loud parties, pets",
		ContactPreference: "both",
		IsActive:          true,
	}
}

// Run inserts the data set. It does not clear existing rows; a second run
// against the same database fails on the unique email index.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	created := make([]*models.User, 0, len(users))
	for _, su := range users {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return sum, err
		}
		u := &models.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
			Phone:        su.phone,
			Bio:          su.bio,
			Role:         su.role,
		}
		if err := s.Users.Create(ctx, u); err != nil {
			return sum, fmt.Errorf("create user %s: %w", su.email, err)
		}
		created = append(created, u)
		sum.Users++
	}

	// Jane lists the flats, John looks for a flatmate.
	for _, l := range listings(created[1].ID) {
		l.LandlordID = created[1].ID
		l.IsActive = true
		if err := listingDomain.Validate(l); err != nil {
			return sum, fmt.Errorf("listing %q: %w", l.Title, err)
		}
		if err := s.Listings.Create(ctx, l); err != nil {
			return sum, fmt.Errorf("create listing %q: %w", l.Title, err)
		}
		sum.Listings++
	}

	r := roommateRequest(created[0].ID)
	roommateDomain.ApplyDefaults(r)
	if err := s.Roommates.Create(ctx, r); err != nil {
		return sum, fmt.Errorf("create roommate request: %w", err)
	}
	sum.RoommateRequests++

	return sum, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
