package account

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type fixture struct {
	store  *memstore.Store
	tokens *auth.TokenManager
	audit  *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	d := audit.NewDispatcher(audit.New(store.Audit()), zaptest.NewLogger(t))
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	return &fixture{
		store:  store,
		tokens: auth.NewTokenManager("test-secret", time.Hour),
		audit:  d,
	}
}

func kindOf(t *testing.T, err error) httperr.Kind {
	t.Helper()

	var he *httperr.Error
	require.True(t, errors.As(err, &he), "expected *httperr.Error, got %v", err)
	return he.Kind
}

type deadResolver struct{}

func (deadResolver) LookupMX(context.Context, string) ([]*net.MX, error) {
	return nil, errors.New("no such host")
}

func (deadResolver) LookupIPAddr(context.Context, string) ([]net.IPAddr, error) {
	return nil, errors.New("no such host")
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg := NewRegister(f.store.Users(), f.tokens, f.audit, nil)
	session, err := reg.Execute(ctx, RegisterInput{Name: "  Alice ", Email: " Alice@Example.COM ", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "Alice", session.User.Name)
	assert.Equal(t, "alice@example.com", session.User.Email)
	assert.Equal(t, models.RoleUser, session.User.Role)
	assert.NotEqual(t, "secret1", session.User.PasswordHash)

	claims, err := f.tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)

	_, err = reg.Execute(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "other1"})
	assert.Equal(t, httperr.KindConflict, kindOf(t, err))

	login := NewLogin(f.store.Users(), f.tokens)

	got, err := login.Execute(ctx, LoginInput{Email: "ALICE@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, got.User.ID)

	_, err = login.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, httperr.KindUnauthorized, kindOf(t, err))

	_, err = login.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.Equal(t, httperr.KindUnauthorized, kindOf(t, err))
}

func TestRegisterRejectsDeadEmailDomain(t *testing.T) {
	f := newFixture(t)

	reg := NewRegister(f.store.Users(), f.tokens, f.audit, deadResolver{})
	_, err := reg.Execute(context.Background(), RegisterInput{Name: "Bob", Email: "bob@nowhere.invalid", Password: "secret1"})

	assert.Equal(t, httperr.KindValidation, kindOf(t, err))

	_, err = f.store.Users().FindByEmail(context.Background(), "bob@nowhere.invalid")
	assert.Error(t, err)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := NewRegister(f.store.Users(), f.tokens, f.audit, nil).
		Execute(ctx, RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := f.tokens.Parse(session.Token)
	require.NoError(t, err)

	revocations := auth.NewMemoryRevocations()
	require.NoError(t, NewLogout(revocations, f.audit).Execute(ctx, claims))

	revoked, err := revocations.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := NewRegister(f.store.Users(), f.tokens, f.audit, nil).
		Execute(ctx, RegisterInput{Name: "Dan", Email: "dan@example.com", Password: "secret1"})
	require.NoError(t, err)

	bio := "  Early riser  "
	u, err := NewUpdateProfile(f.store.Users(), f.audit).Execute(ctx, UpdateProfileInput{
		UserID: session.User.ID,
		Bio:    &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Early riser", u.Bio)
	assert.Equal(t, "Dan", u.Name)

	got, err := NewGetProfile(f.store.Users()).Execute(ctx, session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Early riser", got.Bio)

	_, err = NewUpdateProfile(f.store.Users(), f.audit).Execute(ctx, UpdateProfileInput{UserID: "missing"})
	assert.Equal(t, httperr.KindNotFound, kindOf(t, err))
}
