package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type recordingStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
	block   chan struct{}
}

func (s *recordingStore) Create(_ context.Context, entry *models.AuditLog) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *recordingStore) List(context.Context, Filter, domain.Page) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, int64(len(s.entries)), nil
}

func TestLoggerEncodesMetadata(t *testing.T) {
	store := &recordingStore{}

	err := New(store).Log(context.Background(), Event{
		UserID:   "u1",
		Action:   ActionBookingStatusChanged,
		Entity:   "booking",
		EntityID: "b1",
		Metadata: map[string]string{"from": "pending", "to": "confirmed"},
	})
	require.NoError(t, err)

	require.Len(t, store.entries, 1)
	got := store.entries[0]
	require.NotNil(t, got.UserID)
	assert.Equal(t, "u1", *got.UserID)
	assert.Equal(t, "b1", *got.EntityID)
	assert.JSONEq(t, `{"from":"pending","to":"confirmed"}`, got.Metadata)
}

func TestLoggerLeavesAnonymousUserNull(t *testing.T) {
	store := &recordingStore{}

	require.NoError(t, New(store).Log(context.Background(), Event{Action: ActionUserRegistered}))
	assert.Nil(t, store.entries[0].UserID)
	assert.Empty(t, store.entries[0].Metadata)
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), zaptest.NewLogger(t))

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: ActionListingCreated})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	entries, total, err := store.List(ctx, Filter{}, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 10, total)
	assert.Len(t, entries, 10)

	// after close events are discarded instead of panicking
	d.Dispatch(Event{Action: ActionListingDeleted})
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	store := &recordingStore{block: make(chan struct{})}
	d := NewDispatcher(New(store), zaptest.NewLogger(t))

	for i := 0; i < queueSize+20; i++ {
		d.Dispatch(Event{Action: ActionReviewCreated})
	}
	close(store.block)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.LessOrEqual(t, len(store.entries), queueSize+1)
	assert.GreaterOrEqual(t, len(store.entries), queueSize)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: ActionListingCreated})
	assert.NoError(t, d.Close(context.Background()))
}
