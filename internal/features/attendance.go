package features

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/normalize"
)

var shortNamePattern = regexp.MustCompile(`^(\w+) @ (\w+)$`)

// Games maps a canonical pro-team abbreviation to its games of the week.
type Games map[string][]models.GameInfo

func (g Games) Len() int {
	n := 0
	for _, games := range g {
		n += len(games)
	}
	return n / 2
}

type scoreboard struct {
	Events []struct {
		ShortName    string `json:"shortName"`
		Competitions []struct {
			Date       string `json:"date"`
			Attendance int    `json:"attendance"`
			Venue      struct {
				Address struct {
					City    string `json:"city"`
					State   string `json:"state"`
					Country string `json:"country"`
				} `json:"address"`
			} `json:"venue"`
		} `json:"competitions"`
	} `json:"events"`
}

// Attendance reads one week of the NFL site scoreboard.
type Attendance struct {
	baseURL string
	week    int
	fetch   *fetcher
	norm    *normalize.Normalizer
}

func NewAttendance(baseURL string, week int, client *http.Client) *Attendance {
	return NewFetchers(client).Attendance(baseURL, week)
}

func (a *Attendance) Name() string { return "attendance" }

func (a *Attendance) Key() string { return "week-" + strconv.Itoa(a.week) }

func (a *Attendance) Fetch(ctx context.Context) (Games, error) {
	u, err := url.Parse(a.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing scoreboard url: %w", err)
	}
	q := u.Query()
	q.Set("week", strconv.Itoa(a.week))
	u.RawQuery = q.Encode()

	body, err := a.fetch.get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard for week %d: %w", a.week, err)
	}
	var sb scoreboard
	if err := json.Unmarshal(body, &sb); err != nil {
		return nil, fmt.Errorf("decoding scoreboard: %w", err)
	}
	return a.games(sb), nil
}

// games keeps events with a parseable "AWY @ HOM" short name, a kickoff time,
// a reported attendance and a city.
func (a *Attendance) games(sb scoreboard) Games {
	games := make(Games)
	for _, event := range sb.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		m := shortNamePattern.FindStringSubmatch(event.ShortName)
		if m == nil {
			continue
		}
		comp := event.Competitions[0]
		date, ok := parseKickoff(comp.Date)
		if !ok || comp.Attendance <= 0 || comp.Venue.Address.City == "" {
			continue
		}

		away, home := a.norm.TeamAbbrev(m[1]), a.norm.TeamAbbrev(m[2])
		game := models.GameInfo{
			Date:       date,
			Attendance: comp.Attendance,
			City:       comp.Venue.Address.City,
			State:      comp.Venue.Address.State,
			Country:    comp.Venue.Address.Country,
			HomeTeam:   home,
			AwayTeam:   away,
		}
		games[home] = append(games[home], game)
		games[away] = append(games[away], game)
	}
	return games
}

func parseKickoff(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
