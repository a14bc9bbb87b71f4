package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"runmaster/internal/calc"
	"runmaster/internal/config"
	"runmaster/internal/store"
)

// Importer loads workouts from CSV files. Expected columns:
//
//	date,category,name,distance,duration[,notes]
//
// distance is either a standard token for the category ("5km",
// "half-marathon") or a number in the category's custom unit (meters for
// track, kilometers for road and relay). A bad row is recorded and skipped;
// it never aborts the batch and never becomes a zero-valued workout.
type Importer struct {
	store  *store.Store
	cfg    config.ImportConfig
	logger *zap.Logger
}

// NewImporter creates an Importer.
func NewImporter(s *store.Store, cfg config.ImportConfig, logger *zap.Logger) *Importer {
	return &Importer{store: s, cfg: cfg, logger: logger}
}

// RowError records why one CSV line was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) String() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ImportReport summarizes one import run.
type ImportReport struct {
	BatchID   string
	Imported  int
	Skipped   int
	RowErrors []RowError
}

// ImportFile imports workouts from the CSV file at path.
func (im *Importer) ImportFile(path string) (*ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return im.importFrom(f, path)
}

func (im *Importer) importFrom(r io.Reader, source string) (*ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	report := &ImportReport{BatchID: uuid.NewString()}

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		line++

		// Skip a header row.
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			continue
		}

		w, err := im.parseRow(record)
		if err != nil {
			report.Skipped++
			report.RowErrors = append(report.RowErrors, RowError{Line: line, Err: err})
			im.logger.Warn("skipping row",
				zap.String("source", source),
				zap.Int("line", line),
				zap.Error(err))
			continue
		}

		w.ImportBatch = &report.BatchID
		if _, err := im.store.InsertWorkout(w); err != nil {
			return nil, fmt.Errorf("inserting workout from line %d: %w", line, err)
		}
		report.Imported++
	}

	if err := im.store.RecordImportBatch(&store.ImportBatch{
		ID:         report.BatchID,
		SourceFile: source,
		Imported:   report.Imported,
		Skipped:    report.Skipped,
	}); err != nil {
		return nil, fmt.Errorf("recording import batch: %w", err)
	}

	im.logger.Info("import complete",
		zap.String("source", source),
		zap.String("batch", report.BatchID),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped))

	return report, nil
}

func (im *Importer) parseRow(record []string) (*store.Workout, error) {
	if len(record) < 5 {
		return nil, fmt.Errorf("expected at least 5 columns, got %d", len(record))
	}

	date, err := time.Parse(im.cfg.DateLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("bad date %q: expected layout %s", record[0], im.cfg.DateLayout)
	}

	category, err := calc.ParseCategory(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(record[2])
	if name == "" {
		return nil, fmt.Errorf("empty workout name")
	}

	meters, err := im.parseDistance(category, strings.TrimSpace(record[3]))
	if err != nil {
		return nil, err
	}

	seconds, err := calc.ParseDuration(record[4], category.AllowsFractionalSeconds())
	if err != nil {
		return nil, err
	}

	w := &store.Workout{
		Date:            date,
		Name:            name,
		Category:        string(category),
		DistanceMeters:  meters,
		DurationSeconds: seconds,
	}
	if len(record) > 5 {
		w.Notes = strings.TrimSpace(record[5])
	}
	return w, nil
}

// parseDistance resolves a distance cell: a standard token when it matches
// the category table, otherwise a numeric custom value.
func (im *Importer) parseDistance(category calc.Category, cell string) (float64, error) {
	if meters, err := calc.ResolveDistance(category, cell, nil); err == nil {
		return meters, nil
	}
	v, err := calc.ParseNumber(cell)
	if err != nil {
		return 0, fmt.Errorf("distance %q is neither a standard %s distance nor a number", cell, category)
	}
	return calc.ResolveDistance(category, calc.SelectionCustom, &v)
}
