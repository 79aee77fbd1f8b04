package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
)

type Logout struct {
	revocations auth.Revocations
	audit       *audit.Dispatcher
}

func NewLogout(
	revocations auth.Revocations,
	audit *audit.Dispatcher,
) *Logout {
	return &Logout{
		revocations: revocations,
		audit:       audit,
	}
}

// Execute revokes the presented token until it would have expired anyway.
func (uc *Logout) Execute(ctx context.Context, claims *auth.Claims) error {
	until := time.Now()
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}

	if err := uc.revocations.Revoke(ctx, claims.ID, until); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   claims.UserID,
		Action:   audit.ActionUserLoggedOut,
		Entity:   "user",
		EntityID: claims.UserID,
	})
	return nil
}
