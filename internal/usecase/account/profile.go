package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const MessageUserNotFound = "User not found"

// ======================================================
// UPDATE PROFILE
// ======================================================

type UpdateProfileInput struct {
	UserID string
	Name   *string
	Phone  *string
	Bio    *string
	Avatar *string
}

type UpdateProfile struct {
	users userDomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(
	users userDomain.Repository,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		users: users,
		audit: audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) (*models.User, error) {

	u, err := uc.users.FindByID(ctx, in.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageUserNotFound)
	}
	if err != nil {
		return nil, err
	}

	var changed []string
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
		changed = append(changed, "name")
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
		changed = append(changed, "bio")
	}
	if in.Avatar != nil {
		u.Avatar = strings.TrimSpace(*in.Avatar)
		changed = append(changed, "avatar")
	}

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionProfileUpdated,
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return u, nil
}

// ======================================================
// PUBLIC PROFILE
// ======================================================

type GetProfile struct {
	users userDomain.Repository
}

func NewGetProfile(users userDomain.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, id string) (*models.User, error) {
	u, err := uc.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound(MessageUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
