package models

import "time"

// Roster slot and position labels shared by every source.
const (
	SlotBench     = "BE"
	SlotIR        = "IR"
	SlotFlex      = "FLEX"
	SlotFreeAgent = "FA"

	PositionQB  = "QB"
	PositionRB  = "RB"
	PositionWR  = "WR"
	PositionTE  = "TE"
	PositionK   = "K"
	PositionP   = "P"
	PositionDST = "D/ST"

	FreeAgentTeam   = "Free Agent"
	FreeAgentAbbrev = "FA"
)

type LeagueMetadata struct {
	LeagueID             int
	Name                 string
	CurrentWeek          int
	CurrentScoringPeriod int
	SeasonID             int
	FirstWeek            int
	LastWeek             int
	IsActive             bool
	LastUpdated          time.Time
}

type LeagueSettings struct {
	Name         string
	TeamCount    int
	Divisions    map[int]string
	ScoringItems []ScoringItem
}

type TeamStanding struct {
	Rank          int
	TeamID        int
	TeamName      string
	Abbreviation  string
	Logo          string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	WinPercentage float64
	PlayoffSeed   int
}

// PlayerWeek is one player's line for one scoring period. Breakdown maps are
// keyed by stat name and hold fantasy points, not raw stat counts.
type PlayerWeek struct {
	PlayerID           int
	Name               string
	Position           string
	Slot               string
	ProTeam            string
	ProOpponent        string
	Points             float64
	ProjectedPoints    float64
	Breakdown          map[string]float64
	ProjectedBreakdown map[string]float64
	GameDate           time.Time
	InjuryStatus       string
}

func (p PlayerWeek) IsBench() bool {
	return p.Slot == SlotBench || p.Slot == SlotIR
}

func (p PlayerWeek) IsStarter() bool {
	return !p.IsBench() && p.Slot != SlotFreeAgent
}

type TeamInfo struct {
	ID       int
	Name     string
	Abbrev   string
	Division string
	LogoURL  string
}

// BoxScore is one week's paired home/away roster-and-score record.
type BoxScore struct {
	Week          int
	IsPlayoff     bool
	Home          TeamInfo
	Away          TeamInfo
	HomeScore     float64
	AwayScore     float64
	HomeProjected float64
	AwayProjected float64
	HomeLineup    []PlayerWeek
	AwayLineup    []PlayerWeek
}

// LeaguePlayer is a player-week tagged with the fantasy team holding it.
// Free agents carry FreeAgentTeam / FreeAgentAbbrev.
type LeaguePlayer struct {
	PlayerWeek
	TeamName   string
	TeamAbbrev string
	TeamLogo   string
}

func (p LeaguePlayer) IsFreeAgent() bool {
	return p.TeamAbbrev == FreeAgentAbbrev
}

type Winner string

const (
	WinnerHome Winner = "home"
	WinnerAway Winner = "away"
	WinnerTie  Winner = "tie"
)

type MatchupSide struct {
	Name           string
	Abbrev         string
	Logo           string
	Division       string
	Score          float64
	Bench          float64
	MaxScore       float64
	BenchOutscored bool
	Lineup         []PlayerWeek
}

type Matchup struct {
	Week         int
	Home         MatchupSide
	Away         MatchupSide
	Winner       Winner
	LostCouldWin bool
	Margin       float64
}

// WinnerSide returns the winning side first. Only a home win puts home
// first; a tie reports away as the winner.
func (m Matchup) WinnerSide() (MatchupSide, MatchupSide) {
	if m.Winner == WinnerHome {
		return m.Home, m.Away
	}
	return m.Away, m.Home
}

type TeamWeek struct {
	Name     string
	Abbrev   string
	Logo     string
	Division string
	Score    float64
	Bench    float64
	MaxScore float64
	Won      bool
	Lineup   []PlayerWeek
}
