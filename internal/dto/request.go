package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/netoar/fyyur/internal/models"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
)

// CoerceBool maps form input to a seeking flag. Only the checkbox value "y"
// and a literal true count as true.
func CoerceBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "y"
	}
	return false
}

func checkbox(b bool) string {
	if b {
		return "y"
	}
	return ""
}

func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f[0])
		}
	}
	return nil
}

func genresOf(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	Genres             []string `form:"genres"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f VenueForm) Validate() error {
	return required(
		[2]string{"name", f.Name},
		[2]string{"city", f.City},
		[2]string{"state", f.State},
		[2]string{"address", f.Address},
	)
}

func (f VenueForm) ToModel() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          DefaultImage(KindVenue, f.ImageLink),
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		Genres:             genresOf(f.Genres),
		SeekingTalent:      CoerceBool(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

// VenueFormFrom pre-fills the edit form with a stored venue.
func VenueFormFrom(v *models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		Genres:             genresOf(v.Genres),
		SeekingTalent:      checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	Genres             []string `form:"genres"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f ArtistForm) Validate() error {
	return required(
		[2]string{"name", f.Name},
		[2]string{"city", f.City},
		[2]string{"state", f.State},
	)
}

func (f ArtistForm) ToModel() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             genresOf(f.Genres),
		ImageLink:          DefaultImage(KindArtist, f.ImageLink),
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       CoerceBool(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(a *models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		Genres:             genresOf(a.Genres),
		SeekingVenue:       checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

// startTimeLayouts are tried in order. The first is what the show form
// pre-fills, the others come from datetime-local inputs.
var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

func (f ShowForm) Validate() error {
	return required(
		[2]string{"artist_id", f.ArtistID},
		[2]string{"venue_id", f.VenueID},
		[2]string{"start_time", f.StartTime},
	)
}

// ToModel parses the form. start_time carries no zone and is kept as UTC
// wall time.
func (f ShowForm) ToModel() (*models.Show, error) {
	artistID, err := strconv.ParseUint(strings.TrimSpace(f.ArtistID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: artist_id", ErrInvalidField)
	}
	venueID, err := strconv.ParseUint(strings.TrimSpace(f.VenueID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: venue_id", ErrInvalidField)
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &models.Show{
		ArtistID:  uint(artistID),
		VenueID:   uint(venueID),
		StartTime: start,
	}, nil
}

func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: start_time", ErrInvalidField)
}
