package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

func validListing() *models.Listing {
	return &models.Listing{
		Title:         "Sunny room near the park",
		Description:   "Bright private room in a quiet flat.",
		Location:      "Koramangala, Bangalore",
		Price:         50000,
		Bedrooms:      2,
		Bathrooms:     1,
		Roommates:     models.Occupancy{Current: 1, Max: 2},
		Images:        []string{"https://img.example.com/1.webp"},
		Amenities:     []string{"wifi", "kitchen"},
		RoomType:      "Private Room",
		AvailableFrom: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fieldsOf(t *testing.T, err error) map[string]bool {
	t.Helper()
	var errs validators.Errors
	require.ErrorAs(t, err, &errs)

	out := map[string]bool{}
	for _, fe := range errs {
		out[fe.Field] = true
	}
	return out
}

func TestValidateAcceptsCompleteListing(t *testing.T) {
	require.NoError(t, Validate(validListing()))
}

func TestValidateRejectsInvalidRoomType(t *testing.T) {
	l := validListing()
	l.RoomType = "Penthouse"

	assert.True(t, fieldsOf(t, Validate(l))["roomType"])
}

func TestValidateRejectsUnknownAmenity(t *testing.T) {
	l := validListing()
	l.Amenities = []string{"wifi", "helipad"}

	assert.True(t, fieldsOf(t, Validate(l))["amenities"])
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	l := &models.Listing{Price: -1}

	fields := fieldsOf(t, Validate(l))
	for _, f := range []string{"title", "description", "location", "price", "bedrooms", "bathrooms", "roommates.max", "images", "roomType", "availableFrom"} {
		assert.True(t, fields[f], f)
	}
}

func TestPatchApplyKeepsUntouchedFields(t *testing.T) {
	l := validListing()
	price := 42000.0
	inactive := false

	Patch{Price: &price, IsActive: &inactive, Amenities: []string{}}.Apply(l)

	assert.Equal(t, 42000.0, l.Price)
	assert.False(t, l.IsActive)
	assert.Empty(t, l.Amenities)
	assert.Equal(t, "Sunny room near the park", l.Title)
	require.NoError(t, Validate(l))
}
