package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
	}
	all := []Status{StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestCancel(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed} {
		b := &models.Booking{Status: string(s)}
		require.NoError(t, Cancel(b))
		assert.Equal(t, string(StatusCancelled), b.Status)
	}

	b := &models.Booking{Status: string(StatusCompleted)}
	err := Cancel(b)
	require.Error(t, err)
	assert.True(t, httperr.Is(err, httperr.KindConflict))
	assert.Equal(t, "Cannot cancel booking with status: completed", err.Error())
	assert.Equal(t, string(StatusCompleted), b.Status)
}

func TestRespond(t *testing.T) {
	now := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Respond(b, StatusConfirmed, "See you then", now))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Equal(t, "See you then", b.LandlordResponse.Message)
	require.NotNil(t, b.LandlordResponse.RespondedAt)
	assert.True(t, now.Equal(*b.LandlordResponse.RespondedAt))

	err := Respond(&models.Booking{Status: string(StatusRejected)}, StatusConfirmed, "", now)
	assert.True(t, httperr.Is(err, httperr.KindConflict))

	err = Respond(&models.Booking{Status: string(StatusPending)}, StatusCancelled, "", now)
	assert.True(t, httperr.Is(err, httperr.KindBadRequest))

	b = &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Respond(b, StatusCompleted, "", now))
	assert.Nil(t, b.LandlordResponse.RespondedAt)
}
