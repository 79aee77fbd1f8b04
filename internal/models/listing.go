package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Occupancy struct {
	Current int `gorm:"not null;default:0" json:"current"`
	Max     int `gorm:"not null" json:"max"`
}

type Rating struct {
	Average float64 `gorm:"not null;default:0" json:"average"`
	Count   int     `gorm:"not null;default:0" json:"count"`
}

type Listing struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"size:1000;not null" json:"description"`
	Location    string  `gorm:"size:255;not null;index" json:"location"`
	Price       float64 `gorm:"not null;index" json:"price"`
	Bedrooms    int     `gorm:"not null" json:"bedrooms"`
	Bathrooms   int     `gorm:"not null" json:"bathrooms"`

	Roommates Occupancy `gorm:"embedded;embeddedPrefix:roommates_" json:"roommates"`

	Images    pq.StringArray `gorm:"type:text[];not null" json:"images"`
	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities"`
	RoomType  string         `gorm:"size:20;not null;index" json:"roomType"`

	AvailableFrom time.Time `gorm:"not null" json:"availableFrom"`

	LandlordID string `gorm:"type:uuid;not null;index" json:"landlordId"`
	Landlord   *User  `gorm:"foreignKey:LandlordID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"landlord,omitempty"`

	Rating   Rating `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	IsActive bool   `gorm:"not null;index" json:"isActive"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Listing) BeforeCreate(*gorm.DB) error {
	l.ID = EnsureID(l.ID)
	return nil
}
