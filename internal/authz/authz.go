package authz

import (
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// Caller is the authenticated identity performing an operation.
type Caller struct {
	ID   string
	Role string
}

func CallerOf(u *models.User) Caller {
	if u == nil {
		return Caller{}
	}
	return Caller{ID: u.ID, Role: u.Role}
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// Ownership describes who is related to a resource. LandlordID is only set
// for bookings, where the listing's landlord co-administers the record.
type Ownership struct {
	OwnerID    string
	LandlordID string
}

type relation uint8

const (
	relOwner relation = 1 << iota
	relLandlord
)

type Capability struct {
	name      string
	relations relation
	denied    string
}

func (c Capability) String() string {
	return c.name
}

var (
	EditListing   = Capability{"listing:edit", relOwner, "Not authorized to update this listing"}
	DeleteListing = Capability{"listing:delete", relOwner, "Not authorized to delete this listing"}

	ViewBooking      = Capability{"booking:view", relOwner | relLandlord, "Not authorized to view this booking"}
	RespondToBooking = Capability{"booking:respond", relLandlord, "Not authorized to update this booking"}
	CancelBooking    = Capability{"booking:cancel", relOwner, "Not authorized to cancel this booking"}

	EditRoommateRequest   = Capability{"roommate:edit", relOwner, "Not authorized to update this roommate request"}
	DeleteRoommateRequest = Capability{"roommate:delete", relOwner, "Not authorized to delete this roommate request"}

	EditReview   = Capability{"review:edit", relOwner, "Not authorized to update this review"}
	DeleteReview = Capability{"review:delete", relOwner, "Not authorized to delete this review"}

	ViewAuditLog = Capability{"audit:view", 0, "Not authorized to view audit logs"}
)

// Allow reports whether caller holds capability on a resource with the
// given ownership. Admins hold every capability.
func Allow(caller Caller, own Ownership, capability Capability) bool {
	if caller.ID == "" {
		return false
	}
	if caller.IsAdmin() {
		return true
	}
	if capability.relations&relOwner != 0 && own.OwnerID != "" && own.OwnerID == caller.ID {
		return true
	}
	if capability.relations&relLandlord != 0 && own.LandlordID != "" && own.LandlordID == caller.ID {
		return true
	}
	return false
}

// Require is Allow returning a Forbidden error for the HTTP layer.
func Require(caller Caller, own Ownership, capability Capability) error {
	if Allow(caller, own, capability) {
		return nil
	}
	return httperr.Forbidden(capability.denied)
}

func ListingOwnership(l *models.Listing) Ownership {
	return Ownership{OwnerID: l.LandlordID}
}

// BookingOwnership needs the booking's listing loaded to know the landlord.
func BookingOwnership(b *models.Booking) Ownership {
	own := Ownership{OwnerID: b.UserID}
	if b.Listing != nil {
		own.LandlordID = b.Listing.LandlordID
	}
	return own
}

func RoommateOwnership(r *models.RoommateRequest) Ownership {
	return Ownership{OwnerID: r.UserID}
}

func ReviewOwnership(r *models.Review) Ownership {
	return Ownership{OwnerID: r.UserID}
}
