// Package export renders a trip's items into downloadable CSV and
// iCalendar documents. Renderers are pure: they operate on a snapshot
// of items already loaded from the store, and identical input yields
// byte-identical output.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tripfolio/backend/internal/models"
)

// csvHeader is the stable column order of the CSV export.
var csvHeader = []string{"day", "name", "category", "rating", "note"}

// CSV renders one row per item in the given order, with RFC 4180
// quoting for embedded commas, quotes, and newlines. Every item
// appears, including those on trips without a date span.
func CSV(items []models.ItemView) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, item := range items {
		rating := ""
		if item.Rating != nil {
			rating = strconv.FormatFloat(*item.Rating, 'f', -1, 64)
		}
		row := []string{strconv.Itoa(item.Day), item.Name, item.Category, rating, item.Note}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
