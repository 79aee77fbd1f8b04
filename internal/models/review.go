package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	ListingID string   `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_listing,priority:2;index" json:"listing"`
	Listing   *Listing `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_listing,priority:1" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	r.ID = EnsureID(r.ID)
	return nil
}
