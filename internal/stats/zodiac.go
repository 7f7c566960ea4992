package stats

import (
	"log/slog"
	"sort"
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// BirthDateLayout is the birth date format of the body-metrics source.
const BirthDateLayout = "2006-01-02"

type ZodiacSign struct {
	Symbol string
	Name   string
}

func (z ZodiacSign) Label() string {
	return z.Symbol + " " + z.Name
}

// Ordered Aries..Pisces, so symbol order matches index order.
var zodiacSigns = [12]ZodiacSign{
	{"♈", "Aries"},
	{"♉", "Taurus"},
	{"♊", "Gemini"},
	{"♋", "Cancer"},
	{"♌", "Leo"},
	{"♍", "Virgo"},
	{"♎", "Libra"},
	{"♏", "Scorpio"},
	{"♐", "Sagittarius"},
	{"♑", "Capricorn"},
	{"♒", "Aquarius"},
	{"♓", "Pisces"},
}

// Last day of each month that still belongs to the sign that started in the
// previous month.
var zodiacCutoffs = [13]int{0, 19, 18, 20, 19, 20, 20, 22, 22, 22, 22, 21, 21}

func zodiacOn(month time.Month, day int) ZodiacSign {
	m := int(month)
	if day <= zodiacCutoffs[m] {
		return zodiacSigns[(m+8)%12]
	}
	return zodiacSigns[(m+9)%12]
}

// ZodiacSignOf parses a YYYY-MM-DD birth date. Empty or malformed dates
// report false.
func ZodiacSignOf(birthDate string) (ZodiacSign, bool) {
	if birthDate == "" {
		return ZodiacSign{}, false
	}
	t, err := time.Parse(BirthDateLayout, birthDate)
	if err != nil {
		slog.Debug("Unparseable birth date", "birth_date", birthDate, "error", err)
		return ZodiacSign{}, false
	}
	return zodiacOn(t.Month(), t.Day()), true
}

// PieChart is a single series with its labels.
type PieChart struct {
	Labels []string
	Data   []float64
}

type TeamZodiac struct {
	Team         string
	Logo         string
	Counts       map[string]int
	TotalPlayers int
	Chart        PieChart
}

type ZodiacDistribution struct {
	Teams  []TeamZodiac
	Radar  Chart
	League PieChart
}

// CalculateZodiac counts signs per team and league-wide over every rostered
// player with a known birth date. Team defenses are skipped.
func CalculateZodiac(teams []models.TeamRoster) ZodiacDistribution {
	var dist ZodiacDistribution
	league := make(map[string]int)

	for _, team := range teams {
		counts := make(map[string]int)
		total := 0
		for _, p := range team.Players {
			if p.Position == models.PositionDST {
				continue
			}
			sign, ok := ZodiacSignOf(p.Features.BirthDate)
			if !ok {
				continue
			}
			counts[sign.Symbol]++
			league[sign.Symbol]++
			total++
		}
		if total == 0 {
			continue
		}
		labels, symbols := zodiacLabels(counts)
		dist.Teams = append(dist.Teams, TeamZodiac{
			Team:         team.Name,
			Logo:         team.Logo,
			Counts:       counts,
			TotalPlayers: total,
			Chart:        PieChart{Labels: labels, Data: countsFor(symbols, counts)},
		})
	}

	labels, symbols := zodiacLabels(league)
	dist.League = PieChart{Labels: labels, Data: countsFor(symbols, league)}
	dist.Radar = Chart{Labels: labels}
	for _, t := range dist.Teams {
		dist.Radar.Datasets = append(dist.Radar.Datasets, Dataset{
			Label: t.Team,
			Data:  countsFor(symbols, t.Counts),
		})
	}
	return dist
}

func zodiacLabels(counts map[string]int) (labels, symbols []string) {
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		labels = append(labels, zodiacName(sym))
	}
	return labels, symbols
}

func zodiacName(symbol string) string {
	for _, z := range zodiacSigns {
		if z.Symbol == symbol {
			return z.Label()
		}
	}
	return symbol
}

func countsFor(symbols []string, counts map[string]int) []float64 {
	data := make([]float64, len(symbols))
	for i, sym := range symbols {
		data[i] = float64(counts[sym])
	}
	return data
}
