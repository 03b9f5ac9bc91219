// Package location buckets venues by the (city, state) pair they share.
package location

import "github.com/netoar/fyyur/internal/models"

type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []models.Venue `json:"venues"`
}

func (a Area) matches(v models.Venue) bool {
	return v.City == a.City && v.State == a.State
}

// Group returns one Area per distinct (city, state) in the order the pair is
// first seen. Venues are expected already sorted by the caller; nothing is
// re-ordered here. City and state compare exactly.
func Group(venues []models.Venue) []Area {
	areas := make([]Area, 0)
	for _, v := range venues {
		seen := false
		for _, a := range areas {
			if a.matches(v) {
				seen = true
				break
			}
		}
		if !seen {
			areas = append(areas, Area{City: v.City, State: v.State})
		}
	}

	for i := range areas {
		areas[i].Venues = make([]models.Venue, 0)
		for _, v := range venues {
			if areas[i].matches(v) {
				areas[i].Venues = append(areas[i].Venues, v)
			}
		}
	}
	return areas
}
