package features

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/omarshaarawi/ffreport/internal/normalize"
)

// Fines scrapes the season's fines and suspensions table and totals the
// amounts per player.
type Fines struct {
	urlFormat string
	year      int
	fetch     *fetcher
	norm      *normalize.Normalizer
}

// NewFines takes a URL format with a single %d verb for the season.
func NewFines(urlFormat string, year int, client *http.Client) *Fines {
	return NewFetchers(client).Fines(urlFormat, year)
}

func (f *Fines) Name() string { return "fines" }

func (f *Fines) Key() string { return strconv.Itoa(f.year) }

func (f *Fines) url() string {
	if strings.Contains(f.urlFormat, "%d") {
		return fmt.Sprintf(f.urlFormat, f.year)
	}
	return f.urlFormat
}

func (f *Fines) Fetch(ctx context.Context) (map[string]Record, error) {
	body, err := f.fetch.get(ctx, f.url())
	if err != nil {
		return nil, fmt.Errorf("fetching fines: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing fines page: %w", err)
	}
	return f.parse(doc), nil
}

type finesHeaderMap struct {
	idxPlayer int
	idxTeam   int
	idxPos    int
	idxAmount int
}

func mapFinesHeader(table *goquery.Selection) (finesHeaderMap, bool) {
	h := finesHeaderMap{-1, -1, -1, -1}
	header := table.Find("thead tr").Last()
	if header.Length() == 0 {
		header = table.Find("tr").First()
	}
	header.Find("th,td").Each(func(i int, cell *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(cell.Text())) {
		case "player", "name":
			h.idxPlayer = i
		case "team", "tm":
			h.idxTeam = i
		case "pos", "position":
			h.idxPos = i
		case "amount", "fine", "fines", "fine amount":
			h.idxAmount = i
		}
	})
	return h, h.idxPlayer >= 0 && h.idxAmount >= 0
}

func (f *Fines) parse(doc *goquery.Document) map[string]Record {
	records := make(map[string]Record)
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		h, ok := mapFinesHeader(table)
		if !ok {
			return
		}
		rows := table.Find("tbody tr")
		if rows.Length() == 0 {
			rows = table.Find("tr").Slice(1, goquery.ToEnd)
		}
		rows.Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("th,td")
			cell := func(i int) string {
				if i < 0 || i >= cells.Length() {
					return ""
				}
				return strings.TrimSpace(cells.Eq(i).Text())
			}

			name := cell(h.idxPlayer)
			amount, ok := parseAmount(cell(h.idxAmount))
			if name == "" || !ok {
				return
			}
			team := f.norm.TeamAbbrev(cell(h.idxTeam))
			key := f.norm.PlayerKey(name, team)
			r := records[key]
			r.FullName = name
			r.Team = team
			r.Position = cell(h.idxPos)
			r.Fines += amount
			records[key] = r
		})
	})
	return records
}

// parseAmount reads "$10,927" style amounts.
func parseAmount(s string) (float64, bool) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
