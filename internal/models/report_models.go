package models

import "time"

// GameInfo is one NFL game as reported by the site scoreboard.
type GameInfo struct {
	Date       time.Time
	Attendance int
	City       string
	State      string
	Country    string
	HomeTeam   string
	AwayTeam   string
}

// PlayerFeatures are the supplementary attributes joined onto a player from
// the feature sources. Missing values stay at their zero value.
type PlayerFeatures struct {
	Weight       int
	Height       string
	HeightInches int
	Age          int
	YearsExp     int
	BirthDate    string
	TABBU        float64
	Fines        float64
}

// ReportPlayer is a league player with its features and its pro team's
// games for the week attached.
type ReportPlayer struct {
	LeaguePlayer
	Features PlayerFeatures
	Games    []GameInfo
}

// TeamRoster groups one fantasy team's players for the week.
type TeamRoster struct {
	Name     string
	Abbrev   string
	Logo     string
	Division string
	Won      bool
	Players  []ReportPlayer
}

// Lineup returns the plain player-week records of the roster.
func (t TeamRoster) Lineup() []PlayerWeek {
	lineup := make([]PlayerWeek, 0, len(t.Players))
	for _, p := range t.Players {
		lineup = append(lineup, p.PlayerWeek)
	}
	return lineup
}
