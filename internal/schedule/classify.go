// Package schedule splits shows into past and upcoming relative to an instant.
package schedule

import (
	"time"

	"github.com/netoar/fyyur/internal/models"
)

// Partition is the result of Classify. Counts are always derived from the
// lists.
type Partition struct {
	Past     []models.Show
	Upcoming []models.Show
}

func (p Partition) PastCount() int     { return len(p.Past) }
func (p Partition) UpcomingCount() int { return len(p.Upcoming) }

// Now returns the current local wall-clock time labelled as UTC. Show times
// are stored without a zone and read back as UTC, so classification must
// compare against the same kind of value.
func Now() time.Time {
	n := time.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
}

// Classify puts every show starting at or before now into Past and every
// show starting after now into Upcoming. Input order is kept in both lists.
func Classify(now time.Time, shows []models.Show) Partition {
	p := Partition{
		Past:     make([]models.Show, 0, len(shows)),
		Upcoming: make([]models.Show, 0, len(shows)),
	}
	for _, s := range shows {
		if s.StartTime.After(now) {
			p.Upcoming = append(p.Upcoming, s)
			continue
		}
		p.Past = append(p.Past, s)
	}
	return p
}
