// Package seed loads the static list of timeline items a session starts from.
// Seed files are only ever read.
package seed

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

// Format is a seed file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// record is the on-disk shape of an item. Dates and category stay strings
// until mapped so every format goes through the same validation.
type record struct {
	ID       int    `json:"id" yaml:"id"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

type document struct {
	Items []record `json:"items" yaml:"items"`
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("seed: unsupported file type %q", filepath.Ext(path))
	}
}

// Load reads items from path. An empty path yields Default().
func Load(path string) ([]item.Item, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return items, nil
}

// Decode parses data in the given format and validates every item.
func Decode(data []byte, format Format) ([]item.Item, error) {
	var (
		records []record
		err     error
	)
	switch format {
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatCSV:
		records, err = decodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return mapAndValidate(records)
}

func decodeYAML(data []byte) ([]record, error) {
	var list []record
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc.Items, nil
}

func decodeJSON(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []record
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return list, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc.Items, nil
}

var csvColumns = []string{"id", "start", "end", "name", "category"}

func decodeCSV(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range csvColumns[:4] {
		if _, ok := columnMap[required]; !ok {
			return nil, fmt.Errorf("csv column %q not found, available columns: %v", required, header)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := columnMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		id, err := strconv.Atoi(field(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: invalid id: %w", line, err)
		}
		records = append(records, record{
			ID:       id,
			Start:    field(row, "start"),
			End:      field(row, "end"),
			Name:     field(row, "name"),
			Category: field(row, "category"),
		})
	}
	return records, nil
}

func mapAndValidate(records []record) ([]item.Item, error) {
	seen := make(map[int]struct{}, len(records))
	items := make([]item.Item, 0, len(records))
	for i, rec := range records {
		it, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, it.ID)
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}

func (r record) toItem() (item.Item, error) {
	start, err := item.ParseDate(r.Start)
	if err != nil {
		return item.Item{}, fmt.Errorf("start: %w", err)
	}
	end, err := item.ParseDate(r.End)
	if err != nil {
		return item.Item{}, fmt.Errorf("end: %w", err)
	}
	var c category.Category
	if strings.TrimSpace(r.Category) != "" {
		c, err = category.Parse(r.Category)
		if err != nil {
			return item.Item{}, err
		}
	}
	return item.Item{
		ID:       r.ID,
		Start:    start,
		End:      end,
		Name:     strings.TrimSpace(r.Name),
		Category: c,
	}, nil
}
