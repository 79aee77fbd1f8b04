// Package memstore keeps every repository in process memory. It mirrors the
// PostgreSQL constraints (unique email, one active booking per user and
// listing, one active roommate request per user, budget check, unique
// review per user and listing) so use cases behave the same on both stores.
package memstore

import (
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

type Store struct {
	mu   sync.RWMutex
	now  func() time.Time
	last time.Time

	users     map[string]models.User
	listings  map[string]models.Listing
	bookings  map[string]models.Booking
	roommates map[string]models.RoommateRequest
	reviews   map[string]models.Review
	audit     []models.AuditLog
}

func New() *Store {
	return &Store{
		now:       time.Now,
		users:     make(map[string]models.User),
		listings:  make(map[string]models.Listing),
		bookings:  make(map[string]models.Booking),
		roommates: make(map[string]models.RoommateRequest),
		reviews:   make(map[string]models.Review),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Listings() *ListingRepository { return &ListingRepository{s: s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }
func (s *Store) Roommates() *RoommateRepository { return &RoommateRepository{s: s} }
func (s *Store) Reviews() *ReviewRepository { return &ReviewRepository{s: s} }
func (s *Store) Audit() *AuditRepository { return &AuditRepository{s: s} }

// tick returns a strictly increasing timestamp so newest-first ordering is
// stable even for writes within the same clock reading. Callers hold mu.
func (s *Store) tick() time.Time {
	t := s.now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

// userRef returns a detached copy of a user for population.
func (s *Store) userRef(id string) *models.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

func (s *Store) listingRef(id string) *models.Listing {
	l, ok := s.listings[id]
	if !ok {
		return nil
	}
	l = cloneListing(l)
	return &l
}

func cloneListing(l models.Listing) models.Listing {
	l.Images = slices.Clone(l.Images)
	l.Amenities = slices.Clone(l.Amenities)
	l.Landlord = nil
	return l
}

func cloneRoommate(r models.RoommateRequest) models.RoommateRequest {
	r.PreferredAreas = slices.Clone(r.PreferredAreas)
	r.Interests = slices.Clone(r.Interests)
	r.User = nil
	return r
}

func paginate[T any](items []T, page domain.Page) []T {
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+page.Limit, len(items))
	return items[start:end]
}

func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

// matchesSearch approximates plainto_tsquery: every word of query must
// appear in the document.
func matchesSearch(document, query string) bool {
	doc := strings.ToLower(document)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(doc, word) {
			return false
		}
	}
	return true
}
