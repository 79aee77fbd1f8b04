package roommate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/flatmate-finder/internal/domain"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const (
	DefaultCleanliness       = 3
	DefaultSocialLevel       = 3
	DefaultWorkSchedule      = "9-5"
	DefaultSleepSchedule     = "flexible"
	DefaultContactPreference = "both"

	MessageBudgetRange  = "Maximum budget must be greater than minimum budget"
	MessageActiveExists = "You already have an active roommate request. Please update or deactivate it first."
)

type Filter struct {
	Location   string
	MinBudget  *float64
	MaxBudget  *float64
	RoomType   string
	MoveInFrom *time.Time
	Search     string
}

// LifestylePatch updates individual lifestyle attributes.
type LifestylePatch struct {
	Cleanliness   *int
	SocialLevel   *int
	Smoking       *bool
	Pets          *bool
	WorkSchedule  *string
	SleepSchedule *string
}

type Patch struct {
	Title             *string
	Bio               *string
	Location          *string
	PreferredAreas    []string
	BudgetMin         *float64
	BudgetMax         *float64
	RoomType          *string
	MoveInDate        *time.Time
	Lifestyle         *LifestylePatch
	Interests         []string
	IdealRoommate     *string
	DealBreakers      *string
	ContactPreference *string
	ProfileImage      *string
	IsActive          *bool
}

func (p Patch) Apply(r *models.RoommateRequest) {
	setString(&r.Title, p.Title)
	setString(&r.Bio, p.Bio)
	setString(&r.Location, p.Location)
	setString(&r.RoomType, p.RoomType)
	setString(&r.IdealRoommate, p.IdealRoommate)
	setString(&r.DealBreakers, p.DealBreakers)
	setString(&r.ContactPreference, p.ContactPreference)
	setString(&r.ProfileImage, p.ProfileImage)

	if p.PreferredAreas != nil {
		r.PreferredAreas = p.PreferredAreas
	}
	if p.Interests != nil {
		r.Interests = p.Interests
	}
	if p.BudgetMin != nil {
		r.Budget.Min = *p.BudgetMin
	}
	if p.BudgetMax != nil {
		r.Budget.Max = *p.BudgetMax
	}
	if p.MoveInDate != nil {
		r.MoveInDate = *p.MoveInDate
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}

	if lp := p.Lifestyle; lp != nil {
		if lp.Cleanliness != nil {
			r.Lifestyle.Cleanliness = *lp.Cleanliness
		}
		if lp.SocialLevel != nil {
			r.Lifestyle.SocialLevel = *lp.SocialLevel
		}
		if lp.Smoking != nil {
			r.Lifestyle.Smoking = *lp.Smoking
		}
		if lp.Pets != nil {
			r.Lifestyle.Pets = *lp.Pets
		}
		setString(&r.Lifestyle.WorkSchedule, lp.WorkSchedule)
		setString(&r.Lifestyle.SleepSchedule, lp.SleepSchedule)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// ApplyDefaults fills the lifestyle and contact fields a client may omit.
func ApplyDefaults(r *models.RoommateRequest) {
	if r.Lifestyle.Cleanliness == 0 {
		r.Lifestyle.Cleanliness = DefaultCleanliness
	}
	if r.Lifestyle.SocialLevel == 0 {
		r.Lifestyle.SocialLevel = DefaultSocialLevel
	}
	if r.Lifestyle.WorkSchedule == "" {
		r.Lifestyle.WorkSchedule = DefaultWorkSchedule
	}
	if r.Lifestyle.SleepSchedule == "" {
		r.Lifestyle.SleepSchedule = DefaultSleepSchedule
	}
	if r.ContactPreference == "" {
		r.ContactPreference = DefaultContactPreference
	}
	if r.PreferredAreas == nil {
		r.PreferredAreas = []string{}
	}
	if r.Interests == nil {
		r.Interests = []string{}
	}
}

// CheckBudget enforces min < max.
func CheckBudget(b models.Budget) error {
	if b.Min >= b.Max {
		var errs validators.Errors
		errs.Add("budget.max", MessageBudgetRange)
		return errs
	}
	return nil
}

func Validate(r *models.RoommateRequest) error {
	var errs validators.Errors

	if n := utf8.RuneCountInString(r.Title); n < 5 || n > 100 {
		errs.Add("title", "Title must be between 5 and 100 characters")
	}
	if n := utf8.RuneCountInString(r.Bio); n < 10 || n > 1000 {
		errs.Add("bio", "Bio must be between 10 and 1000 characters")
	}
	if strings.TrimSpace(r.Location) == "" {
		errs.Add("location", "Location is required")
	}
	if r.Budget.Min < 0 {
		errs.Add("budget.min", "Minimum budget must be a positive number")
	}
	if r.Budget.Max < 0 {
		errs.Add("budget.max", "Maximum budget must be a positive number")
	}
	if !domain.IsRoomType(r.RoomType) {
		errs.Add("roomType", "Invalid room type")
	}
	if r.MoveInDate.IsZero() {
		errs.Add("moveInDate", "Move-in date is required")
	}
	if c := r.Lifestyle.Cleanliness; c < 1 || c > 5 {
		errs.Add("lifestyle.cleanliness", "Cleanliness must be between 1 and 5")
	}
	if s := r.Lifestyle.SocialLevel; s < 1 || s > 5 {
		errs.Add("lifestyle.socialLevel", "Social level must be between 1 and 5")
	}
	if !domain.IsWorkSchedule(r.Lifestyle.WorkSchedule) {
		errs.Add("lifestyle.workSchedule", "Invalid work schedule")
	}
	if !domain.IsSleepSchedule(r.Lifestyle.SleepSchedule) {
		errs.Add("lifestyle.sleepSchedule", "Invalid sleep schedule")
	}
	if utf8.RuneCountInString(r.IdealRoommate) > 500 {
		errs.Add("idealRoommate", "Ideal roommate description cannot exceed 500 characters")
	}
	if utf8.RuneCountInString(r.DealBreakers) > 500 {
		errs.Add("dealBreakers", "Deal breakers cannot exceed 500 characters")
	}
	if !domain.IsContactPreference(r.ContactPreference) {
		errs.Add("contactPreference", "Invalid contact preference")
	}

	return errs.Err()
}
