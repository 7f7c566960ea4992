package render

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strconv"
)

var reportFilePattern = regexp.MustCompile(`^(\d{4})-week(\d+)\.html$`)

// Index maps a season to its rendered weeks.
type Index map[int][]int

// ScanReports lists the weekly reports found in dir.
func ScanReports(dir string) (Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading reports directory: %w", err)
	}
	index := make(Index)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := reportFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		index[year] = append(index[year], week)
	}
	for year := range index {
		sort.Ints(index[year])
	}
	return index, nil
}

// BuildIndex writes the reports found in dir to output as JSON.
func BuildIndex(dir, output string) (Index, error) {
	index, err := ScanReports(dir)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(index, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing index: %w", err)
	}
	slog.Info("Report index written", "file", output, "seasons", len(index))
	return index, nil
}
