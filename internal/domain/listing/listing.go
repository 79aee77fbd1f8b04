package listing

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

// Filter narrows the public listing search. Zero values are ignored and
// the remaining conditions are combined with AND.
type Filter struct {
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	RoomType  string
	Amenities []string
	Search    string
}

// Patch holds the fields of a partial update. Nil means "leave as is".
type Patch struct {
	Title         *string
	Description   *string
	Location      *string
	Price         *float64
	Bedrooms      *int
	Bathrooms     *int
	Current       *int
	MaxRoommates  *int
	Images        []string
	Amenities     []string
	RoomType      *string
	AvailableFrom *time.Time
	IsActive      *bool
}

func (p Patch) Apply(l *models.Listing) {
	if p.Title != nil {
		l.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		l.Description = strings.TrimSpace(*p.Description)
	}
	if p.Location != nil {
		l.Location = strings.TrimSpace(*p.Location)
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Bedrooms != nil {
		l.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		l.Bathrooms = *p.Bathrooms
	}
	if p.Current != nil {
		l.Roommates.Current = *p.Current
	}
	if p.MaxRoommates != nil {
		l.Roommates.Max = *p.MaxRoommates
	}
	if p.Images != nil {
		l.Images = p.Images
	}
	if p.Amenities != nil {
		l.Amenities = p.Amenities
	}
	if p.RoomType != nil {
		l.RoomType = *p.RoomType
	}
	if p.AvailableFrom != nil {
		l.AvailableFrom = *p.AvailableFrom
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

// Validate checks a complete listing record. It runs on create and again
// on the merged record of every update.
func Validate(l *models.Listing) error {
	var errs validators.Errors

	if n := utf8.RuneCountInString(l.Title); n < 5 || n > 100 {
		errs.Add("title", "Title must be between 5 and 100 characters")
	}
	if n := utf8.RuneCountInString(l.Description); n < 10 || n > 1000 {
		errs.Add("description", "Description must be between 10 and 1000 characters")
	}
	if strings.TrimSpace(l.Location) == "" {
		errs.Add("location", "Location is required")
	}
	if l.Price < 0 {
		errs.Add("price", "Price must be a positive number")
	}
	if l.Bedrooms < 1 {
		errs.Add("bedrooms", "Bedrooms must be at least 1")
	}
	if l.Bathrooms < 1 {
		errs.Add("bathrooms", "Bathrooms must be at least 1")
	}
	if l.Roommates.Current < 0 {
		errs.Add("roommates.current", "Current roommates cannot be negative")
	}
	if l.Roommates.Max < 1 {
		errs.Add("roommates.max", "Max roommates must be at least 1")
	}
	if len(l.Images) == 0 {
		errs.Add("images", "At least one image is required")
	}
	for _, a := range l.Amenities {
		if !domain.IsAmenity(a) {
			errs.Add("amenities", "Invalid amenity: "+a)
		}
	}
	if !domain.IsRoomType(l.RoomType) {
		errs.Add("roomType", "Invalid room type")
	}
	if l.AvailableFrom.IsZero() {
		errs.Add("availableFrom", "Available from date is required")
	}

	return errs.Err()
}
