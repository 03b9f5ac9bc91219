package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// genres is NOT NULL; a nil slice would be written as NULL.

func (v *Venue) BeforeSave(tx *gorm.DB) error {
	if v.Genres == nil {
		v.Genres = pq.StringArray{}
	}
	return nil
}

func (a *Artist) BeforeSave(tx *gorm.DB) error {
	if a.Genres == nil {
		a.Genres = pq.StringArray{}
	}
	return nil
}
