package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// renderRecords writes records to stdout, as indented JSON with --json
// or as a table otherwise. Table columns are the union of the records'
// keys in first-appearance order; list and nested values are rendered
// compactly.
func renderRecords(records []*vpic.Record, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	if len(records) == 0 {
		printInfo("No results")
		return nil
	}

	var columns []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range rec.Keys() {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = cellValue(rec, col)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(columns...).
		Rows(rows...)
	fmt.Println(t)
	printDetail("%d rows", len(records))
	return nil
}

// renderRecord writes a single record as key-value lines, or as JSON
// with --json. Empty fields are skipped; a VIN decode has over a
// hundred of them.
func renderRecord(rec *vpic.Record, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	shown := 0
	for _, k := range rec.Keys() {
		v := cellValue(rec, k)
		if v == "" {
			continue
		}
		printKeyValue(k, v)
		shown++
	}
	printDetail("%d of %d fields set", shown, rec.Len())
	return nil
}

func cellValue(rec *vpic.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	switch v.(type) {
	case *vpic.Record, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return rec.String(key)
		}
		return string(data)
	default:
		return rec.String(key)
	}
}
