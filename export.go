package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/astrodash/almanac"
)

// --- Wire format ---

const exportVersion = 1

// recordDTO is a record plus its glyph, so exports are readable without
// the phase table.
type recordDTO struct {
	almanac.Record
	Glyph string `json:"glyph"`
}

type exportDTO struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exportedAt"`
	SearchTerm string      `json:"searchTerm"`
	Bucket     string      `json:"bucket"`
	Records    []recordDTO `json:"records"`
}

// exportRequest is everything an export needs; it is captured from the
// model so the write itself does not touch UI state.
type exportRequest struct {
	Path       string
	At         time.Time
	SearchTerm string
	Bucket     string
	Records    []almanac.Record
}

func toDTORecord(r almanac.Record) recordDTO {
	return recordDTO{Record: r, Glyph: r.Glyph()}
}

// --- Public API ---

// ExportRecords writes req.Records to req.Path. The format follows the file
// extension: .csv or .json.
func ExportRecords(req exportRequest) error {
	switch ext := strings.ToLower(filepath.Ext(req.Path)); ext {
	case ".csv":
		return exportCSV(req)
	case ".json":
		return exportJSON(req)
	default:
		return fmt.Errorf("unsupported export extension %q (want .csv or .json)", ext)
	}
}

func exportCSV(req exportRequest) error {
	f, err := os.Create(req.Path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Date", "Temperature", "Time", "Phase", "Glyph"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range req.Records {
		row := []string{r.Date, strconv.Itoa(r.TemperatureF), r.Time, r.Phase.String(), r.Glyph()}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

func exportJSON(req exportRequest) error {
	dto := exportDTO{
		Version:    exportVersion,
		ExportedAt: req.At,
		SearchTerm: req.SearchTerm,
		Bucket:     req.Bucket,
		Records:    make([]recordDTO, 0, len(req.Records)),
	}
	for _, r := range req.Records {
		dto.Records = append(dto.Records, toDTORecord(r))
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(req.Path, data, 0o600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
