// Package render turns an assembled weekly report into a static HTML page.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/service"
	"github.com/omarshaarawi/ffreport/internal/stats"
)

//go:embed templates/*.html
var templateFS embed.FS

type sideView struct {
	models.MatchupSide
	Won bool
}

func sides(m service.MatchupReport) []sideView {
	return []sideView{
		{MatchupSide: m.Home, Won: m.Winner == models.WinnerHome},
		{MatchupSide: m.Away, Won: m.Winner == models.WinnerAway},
	}
}

// FormatScore renders points with two decimals.
func FormatScore(v float64) string {
	return fmt.Sprintf("%.2f", stats.Round(v))
}

var baseFuncs = template.FuncMap{
	"formatScore": FormatScore,
	"sides":       sides,
	"inc":         func(i int) int { return i + 1 },
	"logo":        func(string) string { return "" },
}

type Renderer struct {
	tmpl  *template.Template
	dir   string
	logos *LogoCache
}

// New parses the embedded templates. Reports are written under dir; logos,
// when a cache is given, are linked relative to it.
func New(dir string, logos *LogoCache) (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(baseFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, dir: dir, logos: logos}, nil
}

// Path is the default output file of a week's report.
func (r *Renderer) Path(year, week int) string {
	return filepath.Join(r.dir, fmt.Sprintf("%d-week%d.html", year, week))
}

func (r *Renderer) logoFunc(ctx context.Context, outDir string) func(string) string {
	if r.logos == nil {
		return func(u string) string { return u }
	}
	base, err := filepath.Rel(outDir, r.logos.Dir())
	if err != nil {
		base = r.logos.Dir()
	}
	return func(u string) string {
		name := r.logos.Cache(ctx, u)
		if name == "" {
			return ""
		}
		return filepath.ToSlash(filepath.Join(base, name))
	}
}

// Render writes the report page to w, linking logos relative to outDir.
func (r *Renderer) Render(ctx context.Context, w io.Writer, rep *service.Report, outDir string) error {
	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("cloning templates: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"logo": r.logoFunc(ctx, outDir)})
	if err := tmpl.ExecuteTemplate(w, "base", rep); err != nil {
		return fmt.Errorf("rendering week %d: %w", rep.Week, err)
	}
	return nil
}

// WriteReport renders rep to output, or to Path when output is empty, and
// returns the file written.
func (r *Renderer) WriteReport(ctx context.Context, rep *service.Report, output string) (string, error) {
	if output == "" {
		output = r.Path(rep.Year, rep.Week)
	}
	outDir := filepath.Dir(output)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, rep, outDir); err != nil {
		return "", err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	slog.Info("Report written", "file", output, "run_id", rep.RunID, "bytes", buf.Len())
	return output, nil
}
