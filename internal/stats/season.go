package stats

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// BoxScoreSource fetches one week of box scores.
type BoxScoreSource interface {
	GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error)
}

// SeasonMargin rescans weeks 1 through throughWeek and keeps the widest
// margin. Weeks that fail to load or come back empty are skipped; the scan
// stops early only if ctx is done. Returns nil when no week had data.
func SeasonMargin(ctx context.Context, src BoxScoreSource, throughWeek int) *MarginRecord {
	var best *MarginRecord
	for week := 1; week <= throughWeek; week++ {
		if err := ctx.Err(); err != nil {
			slog.Warn("Season margin scan interrupted", "week", week, "error", err)
			break
		}
		boxScores, err := src.GetBoxScores(ctx, week)
		if err != nil {
			slog.Warn("Skipping week in season margin scan", "week", week, "error", err)
			continue
		}
		if len(boxScores) == 0 {
			slog.Debug("No box scores for week", "week", week)
			continue
		}
		best = widerOf(best, WeeklyMargin(CalculateMatchups(boxScores)))
	}
	return best
}
