package stats

import (
	"math"
	"sort"

	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/models"
)

const (
	statPassingTD      = "passingTouchdowns"
	statRushingTD      = "rushingTouchdowns"
	statReceivingTD    = "receivingTouchdowns"
	statBlockedKickTD  = "defensiveBlockedKickForTouchdowns"
	statFumbleReturnTD = "fumbleReturnTouchdowns"
	statFumbleRecTD    = "fumbleRecoveredForTD"
	statInterceptionTD = "interceptionReturnTouchdowns"
	statPuntReturnTD   = "puntReturnTouchdowns"
	statKickoffTD      = "kickoffReturnTouchdowns"
)

// DefensiveTouchdowns splits the defense/special-teams bucket.
type DefensiveTouchdowns struct {
	BlockedKick     int
	FumbleReturn    int
	FumbleRecovered int
	Interception    int
	PuntReturn      int
	KickoffReturn   int
}

func (d *DefensiveTouchdowns) add(stat string, n int) {
	switch stat {
	case statBlockedKickTD:
		d.BlockedKick += n
	case statFumbleReturnTD:
		d.FumbleReturn += n
	case statFumbleRecTD:
		d.FumbleRecovered += n
	case statInterceptionTD:
		d.Interception += n
	case statPuntReturnTD:
		d.PuntReturn += n
	case statKickoffTD:
		d.KickoffReturn += n
	}
}

// priority is the tie-break tuple: blocked kick, fumbles, interception, punt
// return, kickoff return.
func (d DefensiveTouchdowns) priority() [5]int {
	return [5]int{
		d.BlockedKick,
		d.FumbleReturn + d.FumbleRecovered,
		d.Interception,
		d.PuntReturn,
		d.KickoffReturn,
	}
}

type TouchdownStanding struct {
	Team      string
	Logo      string
	Division  string
	Won       bool
	Pass      int
	Rush      int
	Recv      int
	Def       int
	Total     int
	Defensive DefensiveTouchdowns
}

func (t TouchdownStanding) key() [10]int {
	var k [10]int
	copy(k[:5], []int{t.Total, t.Def, t.Rush, t.Recv, t.Pass})
	p := t.Defensive.priority()
	copy(k[5:], p[:])
	return k
}

type tdBucket int

const (
	bucketPass tdBucket = iota
	bucketRush
	bucketRecv
	bucketDef
)

var touchdownStats = []struct {
	stat   string
	bucket tdBucket
}{
	{statPassingTD, bucketPass},
	{statRushingTD, bucketRush},
	{statReceivingTD, bucketRecv},
	{statKickoffTD, bucketDef},
	{statPuntReturnTD, bucketDef},
	{statInterceptionTD, bucketDef},
	{statFumbleReturnTD, bucketDef},
	{statFumbleRecTD, bucketDef},
	{statBlockedKickTD, bucketDef},
}

// TouchdownCount converts touchdown points back into events using the
// league's points per event. Stats the league does not score count as 0.
func TouchdownCount(points, perEvent float64) int {
	if perEvent == 0 || math.IsNaN(points) {
		return 0
	}
	return int(math.RoundToEven(points / perEvent))
}

// TouchdownStandings counts starters' touchdowns per team and sorts by total,
// then defense, rushing, receiving, passing, then the defensive sub-events.
func TouchdownStandings(teams []models.TeamRoster, rules catalog.ScoringRules) []TouchdownStanding {
	standings := make([]TouchdownStanding, 0, len(teams))
	for _, team := range teams {
		st := TouchdownStanding{
			Team:     team.Name,
			Logo:     team.Logo,
			Division: team.Division,
			Won:      team.Won,
		}
		for _, p := range team.Players {
			if p.IsBench() {
				continue
			}
			for _, td := range touchdownStats {
				pts, ok := p.Breakdown[td.stat]
				if !ok {
					continue
				}
				n := TouchdownCount(pts, rules[td.stat])
				switch td.bucket {
				case bucketPass:
					st.Pass += n
				case bucketRush:
					st.Rush += n
				case bucketRecv:
					st.Recv += n
				case bucketDef:
					st.Def += n
					st.Defensive.add(td.stat, n)
				}
				st.Total += n
			}
		}
		standings = append(standings, st)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i].key(), standings[j].key()
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
	return standings
}
