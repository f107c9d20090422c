package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"grailed-scraper/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how scraped listings leave the process.
type Format int

const (
	FormatTable Format = iota // print to the console, no file
	FormatJSON
	FormatCSV
	FormatYAML
)

// SelectFormat applies the flag priority: JSON is checked first, then CSV,
// then YAML; with no format flag set the table goes to the console.
func SelectFormat(jsonFlag, csvFlag, yamlFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case csvFlag:
		return FormatCSV
	case yamlFlag:
		return FormatYAML
	default:
		return FormatTable
	}
}

func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatYAML:
		return ".yaml"
	default:
		return ""
	}
}

// Writer saves listings to a file in the selected format, or renders them
// as a console table when no format was requested.
type Writer struct {
	format Format
	base   string // output name without extension
}

func NewWriter(format Format, base string) *Writer {
	return &Writer{format: format, base: base}
}

// Write persists the listings and returns the filename it wrote, or ""
// for console output. The target name always gets a fresh numeric suffix
// so repeated runs never clobber an earlier report.
func (w *Writer) Write(listings []models.Listing) (string, error) {
	if w.format == FormatTable {
		w.renderTable(listings)
		return "", nil
	}

	filename := UniqueFilename(w.base + w.format.Ext())

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(file)
		enc.SetIndent("", "    ")
		if err := enc.Encode(listings); err != nil {
			return "", fmt.Errorf("json write error: %w", err)
		}
	case FormatCSV:
		cw := csv.NewWriter(file)
		if err := cw.Write(models.Columns()); err != nil {
			return "", fmt.Errorf("csv write error: %w", err)
		}
		for _, l := range listings {
			if err := cw.Write(l.Row()); err != nil {
				return "", fmt.Errorf("csv write error: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return "", fmt.Errorf("csv write error: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(file)
		if err := enc.Encode(listings); err != nil {
			return "", fmt.Errorf("yaml write error: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("yaml write error: %w", err)
		}
	}

	return filename, nil
}

func (w *Writer) renderTable(listings []models.Listing) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{}
	for _, col := range models.Columns() {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, l := range listings {
		row := table.Row{}
		for _, field := range l.Row() {
			row = append(row, field)
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
