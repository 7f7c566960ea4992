// Package features fetches the supplementary player data joined onto the
// league rosters: body measurements from Sleeper, league fines and the NFL
// scoreboard's game attendance.
package features

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/normalize"
)

// FuzzyThreshold is the minimum name similarity for a same-team fallback
// match.
const FuzzyThreshold = 0.85

// Record is one player's (or one team defense's) feature values. Sources fill
// only the fields they know about.
type Record struct {
	FullName     string  `json:"full_name"`
	Team         string  `json:"team_abbr"`
	Position     string  `json:"position"`
	PositionType string  `json:"position_type,omitempty"`
	Weight       int     `json:"weight,omitempty"`
	Height       string  `json:"height,omitempty"`
	HeightInches int     `json:"height_inches,omitempty"`
	Age          int     `json:"age,omitempty"`
	YearsExp     int     `json:"years_exp,omitempty"`
	BirthDate    string  `json:"birth_date,omitempty"`
	TABBU        float64 `json:"tabbu,omitempty"`
	Fines        float64 `json:"fines,omitempty"`
}

// Index answers feature lookups by normalized player key.
type Index struct {
	name    string
	records map[string]Record
	byTeam  map[string][]string
	norm    *normalize.Normalizer
}

func NewIndex(name string, records map[string]Record) *Index {
	ix := &Index{
		name:    name,
		records: records,
		byTeam:  make(map[string][]string),
		norm:    normalize.Default(),
	}
	if ix.records == nil {
		ix.records = map[string]Record{}
	}
	for key, r := range ix.records {
		if r.Position == models.PositionDST {
			continue
		}
		team := ix.norm.TeamAbbrev(r.Team)
		ix.byTeam[team] = append(ix.byTeam[team], key)
	}
	for _, keys := range ix.byTeam {
		sort.Strings(keys)
	}
	return ix
}

func (ix *Index) Name() string {
	return ix.name
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.records)
}

// Records exposes the underlying map for caching.
func (ix *Index) Records() map[string]Record {
	return ix.records
}

// Lookup returns the record for a player, or the zero Record. Team defenses
// key off the team alone. An exact miss falls back to the closest name on the
// same team when it is similar enough.
func (ix *Index) Lookup(fullName, team, position string) Record {
	if ix == nil {
		return Record{}
	}
	key := ix.norm.FeatureKey(fullName, team, position)
	if r, ok := ix.records[key]; ok {
		return r
	}
	if position == models.PositionDST {
		return Record{}
	}

	name := normalize.PlayerName(fullName)
	if name == "" {
		return Record{}
	}

	var best Record
	bestScore := 0.0
	for _, candidate := range ix.byTeam[ix.norm.TeamAbbrev(team)] {
		r := ix.records[candidate]
		score := similarity(name, normalize.PlayerName(r.FullName))
		if score >= FuzzyThreshold && score > bestScore {
			best, bestScore = r, score
		}
	}
	return best
}

func similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	distance := fuzzy.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
	return 1 - float64(distance)/float64(maxLen)
}
