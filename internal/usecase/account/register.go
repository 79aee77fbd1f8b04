package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const (
	MessageUserExists         = "User already exists with this email"
	MessageInvalidCredentials = "Invalid email or password"
	MessageEmailDomain        = "Email domain does not accept mail"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token string
	User  *models.User
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users    userDomain.Repository
	tokens   *auth.TokenManager
	audit    *audit.Dispatcher
	resolver validators.Resolver
}

// NewRegister builds the use case. A nil resolver skips the email domain
// lookup.
func NewRegister(
	users userDomain.Repository,
	tokens *auth.TokenManager,
	audit *audit.Dispatcher,
	resolver validators.Resolver,
) *Register {
	return &Register{
		users:    users,
		tokens:   tokens,
		audit:    audit,
		resolver: resolver,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Session, error) {

	email := NormalizeEmail(in.Email)

	if uc.resolver != nil && !validators.EmailDomainResolves(ctx, uc.resolver, email) {
		var errs validators.Errors
		errs.Add("email", MessageEmailDomain)
		return nil, httperr.Validation(httperr.MessageValidation, errs)
	}

	// --------------------------------------------------
	// Friendly pre-check; the unique index is authoritative
	// --------------------------------------------------
	_, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, httperr.Conflict(MessageUserExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         models.RoleUser,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Conflict(MessageUserExists)
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: u.ID,
	})

	return &Session{Token: token, User: u}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
