package routes

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/config"
	bookingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/booking"
	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	reviewDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/review"
	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	userDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/user"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/flatmate-finder/internal/infra/repository"
	"github.com/BruksfildServices01/flatmate-finder/internal/metrics"
	"github.com/BruksfildServices01/flatmate-finder/internal/ratelimit"
	"github.com/BruksfildServices01/flatmate-finder/internal/storage"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

type Repositories struct {
	Users     userDomain.Repository
	Listings  listingDomain.Repository
	Bookings  bookingDomain.Repository
	Roommates roommateDomain.Repository
	Reviews   reviewDomain.Repository
	Audit     audit.Store
}

func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     infraRepo.NewUserGormRepository(db),
		Listings:  infraRepo.NewListingGormRepository(db),
		Bookings:  infraRepo.NewBookingGormRepository(db),
		Roommates: infraRepo.NewRoommateGormRepository(db),
		Reviews:   infraRepo.NewReviewGormRepository(db),
		Audit:     infraRepo.NewAuditGormRepository(db),
	}
}

func MemoryRepositories(s *memstore.Store) Repositories {
	return Repositories{
		Users:     s.Users(),
		Listings:  s.Listings(),
		Bookings:  s.Bookings(),
		Roommates: s.Roommates(),
		Reviews:   s.Reviews(),
		Audit:     s.Audit(),
	}
}

// Deps is everything the engine needs. Uploader and Resolver may be nil.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Location *time.Location

	Repos       Repositories
	Audit       *audit.Dispatcher
	Tokens      *auth.TokenManager
	Revocations auth.Revocations
	Limiter     ratelimit.Limiter
	Uploader    storage.Uploader
	Metrics     *metrics.Metrics
	Resolver    validators.Resolver
}
