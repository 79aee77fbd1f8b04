package models

import (
	"time"

	"gorm.io/gorm"
)

type LandlordResponse struct {
	Message     string     `gorm:"size:500" json:"message,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	ListingID string   `gorm:"type:uuid;not null;index" json:"listingId"`
	Listing   *Listing `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"listing,omitempty"`

	ViewingDate time.Time `gorm:"not null" json:"viewingDate"`
	ViewingTime string    `gorm:"size:5;not null" json:"viewingTime"`
	MoveInDate  time.Time `gorm:"not null" json:"moveInDate"`
	Message     string    `gorm:"size:500" json:"message"`
	PhoneNumber string    `gorm:"size:20;not null" json:"phoneNumber"`
	Status      string    `gorm:"size:20;not null;index" json:"status"`

	LandlordResponse LandlordResponse `gorm:"embedded;embeddedPrefix:landlord_response_" json:"landlordResponse"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	b.ID = EnsureID(b.ID)
	return nil
}
