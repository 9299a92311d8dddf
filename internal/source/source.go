// Package source loads the record sequence and column schema a sheet view
// is mounted with: sheet files (TOML, YAML) and PostgreSQL query results.
package source

import (
	"fmt"

	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/util"
)

// Sheet is a titled record set with its column schema.
type Sheet struct {
	Title   string
	Columns []grid.Column
	Records []grid.Record
}

// Model builds the grid model over the sheet.
func (s *Sheet) Model() *grid.Model {
	return grid.NewModel(s.Columns, s.Records)
}

// Strings returns the column labels and every record formatted as text,
// in column order. Used by the plain, raw and JSON outputs.
func (s *Sheet) Strings() ([]string, [][]string) {
	labels := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		labels[i] = c.Label
	}
	rows := make([][]string, len(s.Records))
	for r, rec := range s.Records {
		row := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			row[i] = FormatValue(rec[c.Key])
		}
		rows[r] = row
	}
	return labels, rows
}

var knownKinds = map[grid.ColumnKind]bool{
	grid.KindText:     true,
	grid.KindOrdinal:  true,
	grid.KindNumber:   true,
	grid.KindCurrency: true,
	grid.KindStatus:   true,
	grid.KindPriority: true,
	grid.KindURL:      true,
}

// validate fills column defaults and rejects unusable schemas
func (s *Sheet) validate() error {
	if len(s.Columns) == 0 {
		return util.ErrEmptySheet
	}
	seen := make(map[string]bool, len(s.Columns))
	for i := range s.Columns {
		c := &s.Columns[i]
		if c.Key == "" {
			return fmt.Errorf("column %d has no key", i+1)
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = true
		if c.Label == "" {
			c.Label = c.Key
		}
		if c.Kind == "" {
			c.Kind = grid.KindText
		}
		if !knownKinds[c.Kind] {
			return fmt.Errorf("column %q has unknown kind %q", c.Key, c.Kind)
		}
	}
	return nil
}
