package stats

import (
	"log/slog"
	"sort"
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// BirthdayWindowDays is the half-width of the birthday window.
const BirthdayWindowDays = 7

type Birthday struct {
	Name     string
	Position string
	ProTeam  string
	TeamName string
	TeamLogo string
	Date     time.Time
}

// ReferenceMonday is the Monday after the week of the first game.
func ReferenceMonday(firstGame time.Time) time.Time {
	day := time.Date(firstGame.Year(), firstGame.Month(), firstGame.Day(), 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, 7-sinceMonday)
}

// onYear moves a birthday to year, turning Feb 29 into Feb 28 when year is
// not a leap year.
func onYear(birth time.Time, year int) time.Time {
	d := birth.Day()
	if birth.Month() == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, birth.Month(), d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// BirthdayWindow keeps rostered players whose birthday, projected onto the
// reference year and rolled one year if needed, falls within a week either
// side of referenceMonday. Newest dates come first.
func BirthdayWindow(players []models.ReportPlayer, referenceMonday time.Time) []Birthday {
	ref := time.Date(referenceMonday.Year(), referenceMonday.Month(), referenceMonday.Day(), 0, 0, 0, 0, time.UTC)
	from := ref.AddDate(0, 0, -BirthdayWindowDays)
	to := ref.AddDate(0, 0, BirthdayWindowDays)

	var out []Birthday
	for _, p := range players {
		if p.IsFreeAgent() || p.Features.BirthDate == "" {
			continue
		}
		born, err := time.Parse(BirthDateLayout, p.Features.BirthDate)
		if err != nil {
			slog.Debug("Skipping unparseable birth date", "player", p.Name, "birth_date", p.Features.BirthDate)
			continue
		}

		day := onYear(born, ref.Year())
		switch {
		case day.Before(from):
			day = onYear(born, ref.Year()+1)
		case day.After(to):
			day = onYear(born, ref.Year()-1)
		}
		if day.Before(from) || day.After(to) {
			continue
		}

		out = append(out, Birthday{
			Name:     p.Name,
			Position: p.Position,
			ProTeam:  p.ProTeam,
			TeamName: p.TeamName,
			TeamLogo: p.TeamLogo,
			Date:     day,
		})
	}

	// Order by the rolled date so a window spanning New Year stays chronological.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
