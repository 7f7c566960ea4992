// Package catalog holds the immutable stat lookup tables: stat id to name,
// stat name to breakdown category, and stat id to display format.
package catalog

import (
	"strconv"

	"github.com/omarshaarawi/ffreport/internal/models"
)

const OtherCategory = "Other"

type Format struct {
	Abbr  string
	Label string
}

// Catalog is read-only after construction and safe to share.
type Catalog struct {
	names      map[int]string
	ids        map[string]int
	categories map[string]string
	formats    map[int]Format
}

func New(names map[int]string, categories map[string]string, formats map[int]Format) *Catalog {
	c := &Catalog{
		names:      make(map[int]string, len(names)),
		ids:        make(map[string]int, len(names)),
		categories: make(map[string]string, len(categories)),
		formats:    make(map[int]Format, len(formats)),
	}
	for id, name := range names {
		c.names[id] = name
		if prev, ok := c.ids[name]; !ok || id < prev {
			c.ids[name] = id
		}
	}
	for name, cat := range categories {
		c.categories[name] = cat
	}
	for id, f := range formats {
		c.formats[id] = f
	}
	return c
}

var espn = New(espnStatNames, espnStatCategories, espnStatFormats)

// Default returns the ESPN tables.
func Default() *Catalog {
	return espn
}

func (c *Catalog) Name(id int) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

// NameForKey resolves an appliedStats key ("3", "42", ...). Unknown ids come
// back as the raw key so their points are still accounted for.
func (c *Catalog) NameForKey(key string) string {
	id, err := strconv.Atoi(key)
	if err != nil {
		return key
	}
	if name, ok := c.names[id]; ok {
		return name
	}
	return key
}

func (c *Catalog) ID(name string) (int, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Category never returns an empty string.
func (c *Catalog) Category(name string) string {
	if cat, ok := c.categories[name]; ok && cat != "" {
		return cat
	}
	return OtherCategory
}

// Format falls back to the stat name for both abbreviation and label.
func (c *Catalog) Format(name string) Format {
	f := Format{Abbr: name, Label: name}
	id, ok := c.ids[name]
	if !ok {
		return f
	}
	if known, ok := c.formats[id]; ok {
		if known.Abbr != "" {
			f.Abbr = known.Abbr
		}
		if known.Label != "" {
			f.Label = known.Label
		}
	}
	return f
}

// ScoringRules maps stat name to the league's points per event.
type ScoringRules map[string]float64

func NewScoringRules(c *Catalog, items []models.ScoringItem) ScoringRules {
	rules := make(ScoringRules, len(items))
	for _, item := range items {
		name, ok := c.Name(item.StatID)
		if !ok {
			continue
		}
		rules[name] = item.Points
	}
	return rules
}

// DefaultScoringRules is standard ESPN scoring for the touchdown events.
func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		"passingTouchdowns":                 4,
		"rushingTouchdowns":                 6,
		"receivingTouchdowns":               6,
		"kickoffReturnTouchdowns":           6,
		"puntReturnTouchdowns":              6,
		"interceptionReturnTouchdowns":      6,
		"fumbleReturnTouchdowns":            6,
		"fumbleRecoveredForTD":              6,
		"defensiveBlockedKickForTouchdowns": 6,
	}
}
