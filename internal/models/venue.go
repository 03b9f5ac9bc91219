package models

import (
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Address            string         `gorm:"size:120" json:"address"`
	Phone              string         `gorm:"size:120" json:"phone"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string         `gorm:"size:120" json:"website_link"`
	Genres             pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"genres"`
	SeekingTalent      bool           `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string         `gorm:"size:200" json:"seeking_description"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:VenueID" json:"-"`
}
