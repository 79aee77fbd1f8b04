package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  userDomain.Repository
	tokens *auth.TokenManager
}

func NewLogin(
	users userDomain.Repository,
	tokens *auth.TokenManager,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
	}
}

// Execute answers an unknown email and a wrong password identically.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*Session, error) {

	u, err := uc.users.FindByEmail(ctx, NormalizeEmail(in.Email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.Unauthorized(MessageInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(u.PasswordHash, in.Password) {
		return nil, httperr.Unauthorized(MessageInvalidCredentials)
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: u}, nil
}
