package dto

import (
	"time"

	"github.com/netoar/fyyur/internal/models"
	"github.com/netoar/fyyur/internal/schedule"
)

const StartTimeLayout = "2006-01-02 15:04:05"

type RecordKind int

const (
	KindVenue RecordKind = iota
	KindArtist
)

const (
	VenuePlaceholderImage  = "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=80"
	ArtistPlaceholderImage = "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60"
)

// DefaultImage returns link unchanged unless it is empty, in which case the
// placeholder for kind is used.
func DefaultImage(kind RecordKind, link string) string {
	if link != "" {
		return link
	}
	if kind == KindVenue {
		return VenuePlaceholderImage
	}
	return ArtistPlaceholderImage
}

// FormatStartTime renders a show time as stored, without zone conversion.
// Microseconds are appended only when present.
func FormatStartTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(StartTimeLayout + ".000000")
	}
	return t.Format(StartTimeLayout)
}

type ShowInVenue struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type ShowInArtist struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint          `json:"id"`
	Name               string        `json:"name"`
	Genres             []string      `json:"genres"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Address            string        `json:"address"`
	Phone              string        `json:"phone"`
	ImageLink          string        `json:"image_link"`
	FacebookLink       string        `json:"facebook_link"`
	WebsiteLink        string        `json:"website_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	UpcomingShows      []ShowInVenue `json:"upcoming_shows"`
	PastShows          []ShowInVenue `json:"past_shows"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
	PastShowsCount     int           `json:"past_shows_count"`
}

type ArtistDetail struct {
	ID                 uint           `json:"id"`
	Name               string         `json:"name"`
	Genres             []string       `json:"genres"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	Phone              string         `json:"phone"`
	ImageLink          string         `json:"image_link"`
	FacebookLink       string         `json:"facebook_link"`
	WebsiteLink        string         `json:"website_link"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	UpcomingShows      []ShowInArtist `json:"upcoming_shows"`
	PastShows          []ShowInArtist `json:"past_shows"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
	PastShowsCount     int            `json:"past_shows_count"`
}

type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewSearchResult[T any](data []T) SearchResult[T] {
	if data == nil {
		data = []T{}
	}
	return SearchResult[T]{Count: len(data), Data: data}
}

func toShowInVenue(s models.Show) ShowInVenue {
	out := ShowInVenue{
		ArtistID:        s.ArtistID,
		ArtistImageLink: ArtistPlaceholderImage,
		StartTime:       FormatStartTime(s.StartTime),
	}
	if s.Artist != nil {
		out.ArtistName = s.Artist.Name
		out.ArtistImageLink = DefaultImage(KindArtist, s.Artist.ImageLink)
	}
	return out
}

func toShowInArtist(s models.Show) ShowInArtist {
	out := ShowInArtist{
		VenueID:        s.VenueID,
		VenueImageLink: VenuePlaceholderImage,
		StartTime:      FormatStartTime(s.StartTime),
	}
	if s.Venue != nil {
		out.VenueName = s.Venue.Name
		out.VenueImageLink = DefaultImage(KindVenue, s.Venue.ImageLink)
	}
	return out
}

func ToVenueDetail(v *models.Venue, p schedule.Partition) VenueDetail {
	d := VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genresOf(v.Genres),
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          DefaultImage(KindVenue, v.ImageLink),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		UpcomingShows:      make([]ShowInVenue, 0, p.UpcomingCount()),
		PastShows:          make([]ShowInVenue, 0, p.PastCount()),
	}
	for _, s := range p.Upcoming {
		d.UpcomingShows = append(d.UpcomingShows, toShowInVenue(s))
	}
	for _, s := range p.Past {
		d.PastShows = append(d.PastShows, toShowInVenue(s))
	}
	d.UpcomingShowsCount = len(d.UpcomingShows)
	d.PastShowsCount = len(d.PastShows)
	return d
}

func ToArtistDetail(a *models.Artist, p schedule.Partition) ArtistDetail {
	d := ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genresOf(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          DefaultImage(KindArtist, a.ImageLink),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		UpcomingShows:      make([]ShowInArtist, 0, p.UpcomingCount()),
		PastShows:          make([]ShowInArtist, 0, p.PastCount()),
	}
	for _, s := range p.Upcoming {
		d.UpcomingShows = append(d.UpcomingShows, toShowInArtist(s))
	}
	for _, s := range p.Past {
		d.PastShows = append(d.PastShows, toShowInArtist(s))
	}
	d.UpcomingShowsCount = len(d.UpcomingShows)
	d.PastShowsCount = len(d.PastShows)
	return d
}

func ToShowListing(s *models.Show) ShowListing {
	out := ShowListing{
		VenueID:         s.VenueID,
		ArtistID:        s.ArtistID,
		ArtistImageLink: ArtistPlaceholderImage,
		StartTime:       FormatStartTime(s.StartTime),
	}
	if s.Venue != nil {
		out.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		out.ArtistName = s.Artist.Name
		out.ArtistImageLink = DefaultImage(KindArtist, s.Artist.ImageLink)
	}
	return out
}
