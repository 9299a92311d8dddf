package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/util"
	"gopkg.in/yaml.v3"
)

// sheetFile is the on-disk layout shared by TOML and YAML sheets
type sheetFile struct {
	Title   string           `toml:"title" yaml:"title"`
	Columns []fileColumn     `toml:"columns" yaml:"columns"`
	Rows    []map[string]any `toml:"rows" yaml:"rows"`
}

type fileColumn struct {
	Key      string `toml:"key" yaml:"key"`
	Label    string `toml:"label" yaml:"label"`
	MinWidth int    `toml:"min_width" yaml:"min_width"`
	Kind     string `toml:"kind" yaml:"kind"`
}

// LoadFile reads a sheet from a .toml, .yaml or .yml file. The title
// defaults to the file name.
func LoadFile(path string) (*Sheet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return nil, util.UnsupportedFormatError(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, util.SheetFileError(path, err)
	}

	sheet, err := parseSheet(raw, ext)
	if err != nil {
		return nil, util.SheetFileError(path, err)
	}
	if sheet.Title == "" {
		sheet.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sheet, nil
}

func parseSheet(raw []byte, ext string) (*Sheet, error) {
	var f sheetFile
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(raw), &f); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	sheet := &Sheet{
		Title:   f.Title,
		Columns: make([]grid.Column, len(f.Columns)),
		Records: make([]grid.Record, len(f.Rows)),
	}
	for i, c := range f.Columns {
		sheet.Columns[i] = grid.Column{
			Key:      c.Key,
			Label:    c.Label,
			MinWidth: c.MinWidth,
			Kind:     grid.ColumnKind(strings.ToLower(c.Kind)),
		}
	}
	for i, row := range f.Rows {
		sheet.Records[i] = grid.Record(row)
	}

	if err := sheet.validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}
