package stats

import (
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// Venue is the averaged game context of a matchup's starters.
type Venue struct {
	Attendance int
	Kickoff    time.Time
}

// Date formats the averaged kickoff, "N/A" when unknown.
func (v *Venue) Date() string {
	if v == nil || v.Kickoff.IsZero() {
		return "N/A"
	}
	return v.Kickoff.Format("2006-01-02")
}

type venueAverage struct {
	attendance float64
	kickoff    float64
	ok         bool
}

func sideVenue(players []models.ReportPlayer) venueAverage {
	var att, ts float64
	var n int
	for _, p := range players {
		if p.IsBench() {
			continue
		}
		for _, g := range p.Games {
			att += float64(g.Attendance)
			if !g.Date.IsZero() {
				ts += float64(g.Date.Unix())
			}
			n++
		}
	}
	if n == 0 {
		return venueAverage{}
	}
	return venueAverage{attendance: att / float64(n), kickoff: ts / float64(n), ok: true}
}

// MatchupVenue averages attendance and kickoff time over the games of both
// sides' starters. Each side is averaged first and the two sides are then
// averaged; a side with no games defers to the other. Nil when neither side
// has games.
func MatchupVenue(home, away []models.ReportPlayer) *Venue {
	h, a := sideVenue(home), sideVenue(away)
	var att, ts float64
	switch {
	case h.ok && a.ok:
		att = (h.attendance + a.attendance) / 2
		ts = (h.kickoff + a.kickoff) / 2
	case h.ok:
		att, ts = h.attendance, h.kickoff
	case a.ok:
		att, ts = a.attendance, a.kickoff
	default:
		return nil
	}
	v := &Venue{Attendance: int(att + 0.5)}
	if ts > 0 {
		v.Kickoff = time.Unix(int64(ts), 0).UTC()
	}
	return v
}
