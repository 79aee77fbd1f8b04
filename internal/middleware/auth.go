package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/authz"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/logger"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

const (
	ContextUser   = "user"
	ContextClaims = "claims"
)

var (
	errNoToken      = errors.New("no token")
	errUserNotFound = errors.New("user not found")
)

type Authenticator struct {
	tokens      *auth.TokenManager
	revocations auth.Revocations
	users       userDomain.Repository
}

func NewAuthenticator(
	tokens *auth.TokenManager,
	revocations auth.Revocations,
	users userDomain.Repository,
) *Authenticator {
	return &Authenticator{
		tokens:      tokens,
		revocations: revocations,
		users:       users,
	}
}

// RequireAuth rejects the request with 401 unless it carries a valid,
// unrevoked bearer token for an existing user.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, claims, err := a.authenticate(c)
		if err != nil {
			switch {
			case errors.Is(err, errNoToken):
				httperr.Respond(c, httperr.Unauthorized("Not authorized, no token"))
			case errors.Is(err, errUserNotFound):
				httperr.Respond(c, httperr.Unauthorized("User not found"))
			case errors.Is(err, auth.ErrInvalidToken):
				httperr.Respond(c, httperr.Unauthorized("Not authorized, token failed"))
			default:
				httperr.Respond(c, err)
			}
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and
// otherwise continues anonymously.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, claims, err := a.authenticate(c)
		if err == nil {
			c.Set(ContextUser, user)
			c.Set(ContextClaims, claims)
		} else if !errors.Is(err, errNoToken) {
			logger.FromContext(c.Request.Context()).Debug("optional auth ignored token", zap.Error(err))
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (*models.User, *auth.Claims, error) {
	raw, ok := bearer(c.GetHeader("Authorization"))
	if !ok {
		return nil, nil, errNoToken
	}

	claims, err := a.tokens.Parse(raw)
	if err != nil {
		return nil, nil, err
	}

	ctx := c.Request.Context()

	revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, httperr.Internal(err)
	}
	if revoked {
		return nil, nil, auth.ErrInvalidToken
	}

	user, err := a.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, errUserNotFound
	}
	if err != nil {
		return nil, nil, httperr.Internal(err)
	}

	return user, claims, nil
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func CurrentClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ContextClaims); ok {
		if cl, ok := v.(*auth.Claims); ok {
			return cl
		}
	}
	return nil
}

func Caller(c *gin.Context) authz.Caller {
	return authz.CallerOf(CurrentUser(c))
}
