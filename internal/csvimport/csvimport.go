// Package csvimport reads holdings and their value history from CSV files.
//
// Holdings files carry the columns id, name, category, value and an optional
// performance. History files carry asset_id, timestamp and value, where the
// timestamp is RFC 3339 or a plain YYYY-MM-DD date (midnight UTC).
package csvimport

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthdash/internal/domain"
)

type holdingRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Category    string `csv:"category"`
	Value       string `csv:"value"`
	Performance string `csv:"performance"`
}

type historyRow struct {
	AssetID   string `csv:"asset_id"`
	Timestamp string `csv:"timestamp"`
	Value     string `csv:"value"`
}

// ReadHoldings parses a holdings CSV. Rows keep their file order and
// unknown categories fall back to other.
func ReadHoldings(r io.Reader) ([]domain.Asset, error) {
	rows := []holdingRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse holdings: %w", err)
	}

	assets := make([]domain.Asset, 0, len(rows))
	for i, row := range rows {
		// Header is line 1
		line := i + 2

		value, err := parseDecimal(row.Value)
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: invalid value: %w", line, err)
		}

		performance := decimal.Zero
		if strings.TrimSpace(row.Performance) != "" {
			performance, err = parseDecimal(row.Performance)
			if err != nil {
				return nil, fmt.Errorf("holdings line %d: invalid performance: %w", line, err)
			}
		}

		assets = append(assets, domain.Asset{
			ID:          strings.TrimSpace(row.ID),
			Name:        strings.TrimSpace(row.Name),
			Category:    domain.NormalizeCategory(row.Category),
			Value:       value,
			Performance: performance,
		})
	}

	return assets, nil
}

// ReadHistory parses a history CSV into points grouped by asset id.
// Each asset's points are sorted chronologically.
func ReadHistory(r io.Reader) (map[string][]domain.HistoricalPoint, error) {
	rows := []historyRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	history := make(map[string][]domain.HistoricalPoint)
	for i, row := range rows {
		line := i + 2

		ts, err := parseTimestamp(row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("history line %d: %w", line, err)
		}

		value, err := parseDecimal(row.Value)
		if err != nil {
			return nil, fmt.Errorf("history line %d: invalid value: %w", line, err)
		}

		id := strings.TrimSpace(row.AssetID)
		history[id] = append(history[id], domain.HistoricalPoint{Timestamp: ts, Value: value})
	}

	for _, points := range history {
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Timestamp.Before(points[j].Timestamp)
		})
	}

	return history, nil
}

// Attach sets each asset's history from the grouped points.
// History for an id that matches no asset is an error.
func Attach(assets []domain.Asset, history map[string][]domain.HistoricalPoint) error {
	known := make(map[string]int, len(assets))
	for i, a := range assets {
		known[a.ID] = i
	}

	for id, points := range history {
		i, ok := known[id]
		if !ok {
			return fmt.Errorf("%w: history references unknown asset %q", domain.ErrInvalidAsset, id)
		}
		assets[i].HistoricalData = points
	}
	return nil
}

// LoadFiles reads a holdings file and, when historyPath is not empty, its history file
func LoadFiles(holdingsPath, historyPath string) ([]domain.Asset, error) {
	f, err := os.Open(holdingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holdings file: %w", err)
	}
	defer f.Close()

	assets, err := ReadHoldings(f)
	if err != nil {
		return nil, err
	}

	if historyPath == "" {
		return assets, nil
	}

	hf, err := os.Open(historyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer hf.Close()

	history, err := ReadHistory(hf)
	if err != nil {
		return nil, err
	}

	if err := Attach(assets, history); err != nil {
		return nil, err
	}
	return assets, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC 3339 or YYYY-MM-DD", raw)
	}
	return ts, nil
}
