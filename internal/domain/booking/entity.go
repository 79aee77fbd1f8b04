package booking

import (
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// Respond applies a landlord decision. A non-empty message is stored with
// the time it was given.
func Respond(b *models.Booking, to Status, message string, now time.Time) error {
	if err := CanRespond(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	if message != "" {
		b.LandlordResponse = models.LandlordResponse{
			Message:     message,
			RespondedAt: &now,
		}
	}
	return nil
}
