package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	s := &Seeder{Users: store.Users(), Listings: store.Listings(), Roommates: store.Roommates()}

	sum, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 3, Listings: 3, RoommateRequests: 1}, sum)

	admin, err := store.Users().FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.VerifyPassword(admin.PasswordHash, "admin123"))

	requests, total, err := store.Roommates().List(ctx, roommateDomain.Filter{Location: "bandra"}, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "early-bird", requests[0].Lifestyle.SleepSchedule)
}

func TestSeederRunTwiceFailsOnDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	s := &Seeder{Users: store.Users(), Listings: store.Listings(), Roommates: store.Roommates()}

	_, err := s.Run(ctx)
	require.NoError(t, err)

	_, err = s.Run(ctx)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
