package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

func TestAllow(t *testing.T) {
	owner := Caller{ID: "owner", Role: models.RoleUser}
	landlord := Caller{ID: "landlord", Role: models.RoleUser}
	stranger := Caller{ID: "stranger", Role: models.RoleUser}
	admin := Caller{ID: "root", Role: models.RoleAdmin}
	anonymous := Caller{}

	booking := Ownership{OwnerID: "owner", LandlordID: "landlord"}

	tests := []struct {
		name   string
		caller Caller
		cap    Capability
		want   bool
	}{
		{"owner views", owner, ViewBooking, true},
		{"landlord views", landlord, ViewBooking, true},
		{"stranger views", stranger, ViewBooking, false},
		{"owner cannot respond", owner, RespondToBooking, false},
		{"landlord responds", landlord, RespondToBooking, true},
		{"landlord cannot cancel", landlord, CancelBooking, false},
		{"owner cancels", owner, CancelBooking, true},
		{"admin overrides", admin, RespondToBooking, true},
		{"admin views audit", admin, ViewAuditLog, true},
		{"owner cannot view audit", owner, ViewAuditLog, false},
		{"anonymous", anonymous, ViewBooking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.caller, booking, tt.cap))
		})
	}
}

func TestAllowIgnoresEmptyOwner(t *testing.T) {
	assert.False(t, Allow(Caller{ID: "x"}, Ownership{}, EditListing))
}

func TestRequire(t *testing.T) {
	l := &models.Listing{LandlordID: "landlord"}

	assert.NoError(t, Require(Caller{ID: "landlord"}, ListingOwnership(l), EditListing))

	err := Require(Caller{ID: "someone"}, ListingOwnership(l), EditListing)
	assert.True(t, httperr.Is(err, httperr.KindForbidden))
	assert.Equal(t, "Not authorized to update this listing", err.Error())
}

func TestBookingOwnership(t *testing.T) {
	b := &models.Booking{UserID: "u", Listing: &models.Listing{LandlordID: "l"}}
	assert.Equal(t, Ownership{OwnerID: "u", LandlordID: "l"}, BookingOwnership(b))
	assert.Equal(t, Ownership{OwnerID: "u"}, BookingOwnership(&models.Booking{UserID: "u"}))
}
