// Package common provides the CSV reading and writing shared by the converter
// and its tests.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"xmlcsv/internal/logging"
	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// Delimiter separates fields in every CSV file the application writes.
const Delimiter = ';'

// FileMode is the permission of written CSV files.
const FileMode os.FileMode = 0o644

// WriteRows writes the variant header followed by one line per row.
// Fields containing the delimiter, a quote or a newline are quoted.
func WriteRows(w io.Writer, variant models.Variant, rows []models.OutputRow) error {
	var records interface{}
	switch variant {
	case models.VariantCommission:
		records = models.CommissionRecords(rows)
	case models.VariantVale:
		records = models.ValeRecords(rows)
	default:
		return fmt.Errorf("no CSV layout for variant %q", variant)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

// WriteRowsToFile writes rows to csvFile, replacing any existing file.
//
// Rows go to a temporary file in the same directory that is renamed over
// csvFile once complete, so a failed write leaves an earlier csvFile intact.
// Any failure is returned as a *parsererror.WriteError.
func WriteRowsToFile(csvFile string, variant models.Variant, rows []models.OutputRow, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	log := logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	log.Debug("Writing rows to CSV file")

	tmp, err := os.CreateTemp(filepath.Dir(csvFile), "."+filepath.Base(csvFile)+".*.tmp")
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return &parsererror.WriteError{Path: csvFile, Op: "create", Err: err}
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) error {
		log.WithError(err).Error("Failed to " + op + " CSV file")
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			log.WithError(rmErr).Warn("Failed to remove temporary CSV file")
		}
		return &parsererror.WriteError{Path: csvFile, Op: op, Err: err}
	}

	if err := WriteRows(tmp, variant, rows); err != nil {
		_ = tmp.Close()
		return fail("write", err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return fail("write", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Rename(tmpName, csvFile); err != nil {
		return fail("rename", err)
	}

	log.Info("Successfully wrote CSV file")
	return nil
}

// ReadRows parses a CSV stream written by WriteRows back into rows.
func ReadRows(r io.Reader, variant models.Variant) ([]models.OutputRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = Delimiter

	var rows []models.OutputRow
	switch variant {
	case models.VariantCommission:
		var records []models.CommissionRecord
		if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
			return nil, fmt.Errorf("error parsing CSV data: %w", err)
		}
		for _, rec := range records {
			rows = append(rows, rec.Row())
		}
	case models.VariantVale:
		var records []models.ValeRecord
		if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
			return nil, fmt.Errorf("error parsing CSV data: %w", err)
		}
		for _, rec := range records {
			rows = append(rows, rec.Row())
		}
	default:
		return nil, fmt.Errorf("no CSV layout for variant %q", variant)
	}
	return rows, nil
}

// ReadRowsFromFile is ReadRows over a file on disk.
func ReadRowsFromFile(csvFile string, variant models.Variant) ([]models.OutputRow, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()

	return ReadRows(file, variant)
}
