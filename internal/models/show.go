package models

import "time"

// Show joins one Venue and one Artist at a point in time. StartTime is stored
// without a time zone and read back exactly as written.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"type:timestamp;not null" json:"start_time"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`

	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
}
