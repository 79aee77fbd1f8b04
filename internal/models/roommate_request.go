package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Budget struct {
	Min float64 `gorm:"not null" json:"min"`
	Max float64 `gorm:"not null" json:"max"`
}

type Lifestyle struct {
	Cleanliness   int    `gorm:"not null;default:3" json:"cleanliness"`
	SocialLevel   int    `gorm:"not null;default:3" json:"socialLevel"`
	Smoking       bool   `gorm:"not null" json:"smoking"`
	Pets          bool   `gorm:"not null" json:"pets"`
	WorkSchedule  string `gorm:"size:20;not null" json:"workSchedule"`
	SleepSchedule string `gorm:"size:20;not null" json:"sleepSchedule"`
}

type RoommateRequest struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Title          string         `gorm:"size:100;not null" json:"title"`
	Bio            string         `gorm:"size:1000;not null" json:"bio"`
	Location       string         `gorm:"size:255;not null;index" json:"location"`
	PreferredAreas pq.StringArray `gorm:"type:text[]" json:"preferredAreas"`

	Budget     Budget    `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`
	RoomType   string    `gorm:"size:20;not null" json:"roomType"`
	MoveInDate time.Time `gorm:"not null" json:"moveInDate"`

	Lifestyle Lifestyle `gorm:"embedded;embeddedPrefix:lifestyle_" json:"lifestyle"`

	Interests         pq.StringArray `gorm:"type:text[]" json:"interests"`
	IdealRoommate     string         `gorm:"size:500" json:"idealRoommate"`
	DealBreakers      string         `gorm:"size:500" json:"dealBreakers"`
	ContactPreference string         `gorm:"size:10;not null" json:"contactPreference"`
	ProfileImage      string         `gorm:"size:500" json:"profileImage"`
	IsActive          bool           `gorm:"not null;index" json:"isActive"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *RoommateRequest) BeforeCreate(*gorm.DB) error {
	r.ID = EnsureID(r.ID)
	return nil
}
