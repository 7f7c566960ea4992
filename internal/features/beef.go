package features

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/normalize"
)

// TABBUWeight is the weight of one Trimmed And Boneless Beef Unit, in pounds.
const TABBUWeight = 500

var positionTypes = map[string]string{
	"CB": "D", "DB": "D", "DE": "D", "DL": "D", "DT": "D", "FS": "D", "ILB": "D",
	"LB": "D", "NT": "D", "OLB": "D", "S": "D", "SS": "D",
	"FB": "O", "QB": "O", "RB": "O", "TE": "O", "WR": "O",
	"K": "S", "K/P": "S", "P": "S",
	"C": "L", "G": "L", "LS": "L", "OG": "L", "OL": "L", "OT": "L", "T": "L",
	"DEF": "D",
}

// flexInt accepts both JSON numbers and numeric strings, as Sleeper mixes the
// two.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

type sleeperPlayer struct {
	FullName         string   `json:"full_name"`
	Team             string   `json:"team"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Weight           flexInt  `json:"weight"`
	Height           string   `json:"height"`
	Age              flexInt  `json:"age"`
	YearsExp         flexInt  `json:"years_exp"`
	BirthDate        string   `json:"birth_date"`
}

// Beef reads the Sleeper player dump.
type Beef struct {
	url   string
	fetch *fetcher
	norm  *normalize.Normalizer
}

func NewBeef(url string, client *http.Client) *Beef {
	return NewFetchers(client).Beef(url)
}

func (b *Beef) Name() string { return "beef" }

func (b *Beef) Key() string { return "players" }

func (b *Beef) Fetch(ctx context.Context) (map[string]Record, error) {
	body, err := b.fetch.get(ctx, b.url)
	if err != nil {
		return nil, fmt.Errorf("fetching sleeper players: %w", err)
	}
	var players map[string]sleeperPlayer
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("decoding sleeper players: %w", err)
	}
	return b.records(players), nil
}

func (b *Beef) records(players map[string]sleeperPlayer) map[string]Record {
	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make(map[string]Record)
	defenses := make(map[string]*Record)
	for _, id := range ids {
		p := players[id]
		if p.Position == "DEF" {
			continue
		}
		team := b.norm.TeamAbbrev(p.Team)
		height, inches := parseHeight(p.Height)
		r := Record{
			FullName:     p.FullName,
			Team:         team,
			Position:     p.Position,
			PositionType: positionTypes[p.Position],
			Weight:       int(p.Weight),
			Height:       height,
			HeightInches: inches,
			Age:          int(p.Age),
			YearsExp:     int(p.YearsExp),
			BirthDate:    p.BirthDate,
			TABBU:        tabbu(int(p.Weight)),
		}

		key := b.norm.PlayerKey(p.FullName, team)
		if _, ok := records[key]; !ok {
			records[key] = r
		}

		if team != normalize.UnknownTeam && isDefender(p.FantasyPositions) {
			d, ok := defenses[team]
			if !ok {
				d = &Record{FullName: team + " D/ST", Team: team, Position: models.PositionDST, PositionType: "D"}
				defenses[team] = d
			}
			d.Weight += r.Weight
		}
	}

	for team, d := range defenses {
		d.TABBU = tabbu(d.Weight)
		records[team] = *d
	}
	return records
}

func isDefender(fantasyPositions []string) bool {
	for _, pos := range fantasyPositions {
		if pos == "DL" || pos == "DB" {
			return true
		}
	}
	return false
}

func tabbu(weight int) float64 {
	v, _ := decimal.NewFromInt(int64(weight)).Div(decimal.NewFromInt(TABBUWeight)).Round(3).Float64()
	return v
}

// parseHeight accepts total inches ("74") or feet and inches (`6'2"`) and
// returns the display form and the inches.
func parseHeight(raw string) (string, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", 0
	}
	if feet, rest, ok := strings.Cut(raw, "'"); ok {
		f, err1 := strconv.Atoi(strings.TrimSpace(feet))
		i, err2 := strconv.Atoi(strings.Trim(strings.TrimSpace(rest), `"`))
		if err1 != nil || err2 != nil {
			return raw, 0
		}
		return raw, f*12 + i
	}
	inches, err := strconv.Atoi(raw)
	if err != nil || inches <= 0 {
		return raw, 0
	}
	return fmt.Sprintf(`%d'%d"`, inches/12, inches%12), inches
}
