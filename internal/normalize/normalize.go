// Package normalize builds the join keys used to match players across the
// league provider and the feature sources, which spell names and team
// abbreviations differently.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownTeam is the abbreviation every unresolvable team normalizes to.
const UnknownTeam = "?"

const dstPosition = "D/ST"

var canonicalTeams = map[string]bool{
	"ARI": true, "ATL": true, "BAL": true, "BUF": true, "CAR": true, "CHI": true,
	"CIN": true, "CLE": true, "DAL": true, "DEN": true, "DET": true, "GB": true,
	"HOU": true, "IND": true, "JAX": true, "KC": true, "LAC": true, "LAR": true,
	"LV": true, "MIA": true, "MIN": true, "NE": true, "NO": true, "NYG": true,
	"NYJ": true, "PHI": true, "PIT": true, "SEA": true, "SF": true, "TB": true,
	"TEN": true, "WAS": true,
}

// Aliases maps provider-specific abbreviations to canonical ones.
type Aliases map[string]string

// DefaultAliases covers the spellings seen from ESPN, Sleeper and the fines
// source.
var DefaultAliases = Aliases{
	"ARZ": "ARI",
	"BLT": "BAL",
	"CLV": "CLE",
	"GBP": "GB",
	"GNB": "GB",
	"HST": "HOU",
	"JAC": "JAX",
	"KAN": "KC",
	"KCC": "KC",
	"LA":  "LAR",
	"LVR": "LV",
	"NEP": "NE",
	"NOR": "NO",
	"NOS": "NO",
	"NWE": "NE",
	"OAK": "LV",
	"SD":  "LAC",
	"SDG": "LAC",
	"SFO": "SF",
	"STL": "LAR",
	"TAM": "TB",
	"TBB": "TB",
	"WSH": "WAS",
}

var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
}

// Normalizer resolves team abbreviations through an alias table. The zero
// value has no aliases; use New or Default.
type Normalizer struct {
	aliases Aliases
}

func New(aliases Aliases) *Normalizer {
	upper := make(Aliases, len(aliases))
	for from, to := range aliases {
		upper[strings.ToUpper(from)] = strings.ToUpper(to)
	}
	return &Normalizer{aliases: upper}
}

var defaultNormalizer = New(DefaultAliases)

func Default() *Normalizer {
	return defaultNormalizer
}

// TeamAbbrev returns the canonical abbreviation, or UnknownTeam.
func (n *Normalizer) TeamAbbrev(abbrev string) string {
	abbrev = strings.ToUpper(strings.TrimSpace(abbrev))
	if canonicalTeams[abbrev] {
		return abbrev
	}
	if to, ok := n.aliases[abbrev]; ok && canonicalTeams[to] {
		return to
	}
	return UnknownTeam
}

// PlayerKey builds the lookup key for a named player, e.g.
// "Patrick Mahomes II", "KC" -> "patrick-mahomes-kc".
func (n *Normalizer) PlayerKey(fullName, teamAbbrev string) string {
	team := strings.ToLower(n.TeamAbbrev(teamAbbrev))
	name := PlayerName(fullName)
	if name == "" {
		return team
	}
	return strings.ReplaceAll(name, " ", "-") + "-" + team
}

// FeatureKey is PlayerKey except that team defenses key off the team alone.
func (n *Normalizer) FeatureKey(fullName, teamAbbrev, position string) string {
	if position == dstPosition {
		return n.TeamAbbrev(teamAbbrev)
	}
	return n.PlayerKey(fullName, teamAbbrev)
}

func TeamAbbrev(abbrev string) string {
	return defaultNormalizer.TeamAbbrev(abbrev)
}

func PlayerKey(fullName, teamAbbrev string) string {
	return defaultNormalizer.PlayerKey(fullName, teamAbbrev)
}

func FeatureKey(fullName, teamAbbrev, position string) string {
	return defaultNormalizer.FeatureKey(fullName, teamAbbrev, position)
}

// Transformers carry state, so each call builds its own chain.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// PlayerName lower-cases a name, folds diacritics, drops punctuation and
// generational suffixes, and collapses whitespace.
func PlayerName(fullName string) string {
	folded, _, err := transform.String(foldMarks(), fullName)
	if err != nil {
		folded = fullName
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for i, w := range words {
		if i > 0 && nameSuffixes[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
