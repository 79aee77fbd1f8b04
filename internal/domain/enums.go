package domain

import "slices"

var (
	RoomTypes = []string{"Private Room", "Shared Room", "Studio", "Entire Place"}

	Amenities = []string{
		"wifi", "parking", "furnished", "gym", "balcony",
		"kitchen", "mess", "laundry", "security", "pool",
	}

	WorkSchedules      = []string{"9-5", "flexible", "night-shift", "student", "other"}
	SleepSchedules     = []string{"early-bird", "night-owl", "flexible"}
	ContactPreferences = []string{"email", "phone", "both"}
)

func IsRoomType(v string) bool { return slices.Contains(RoomTypes, v) }
func IsAmenity(v string) bool { return slices.Contains(Amenities, v) }
func IsWorkSchedule(v string) bool { return slices.Contains(WorkSchedules, v) }
func IsSleepSchedule(v string) bool { return slices.Contains(SleepSchedules, v) }
func IsContactPreference(v string) bool { return slices.Contains(ContactPreferences, v) }
