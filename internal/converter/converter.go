// Package converter runs one payroll document through classification,
// parsing, flattening and CSV emission.
package converter

import (
	"context"
	"fmt"
	"os"
	"time"

	"xmlcsv/internal/aggregator"
	"xmlcsv/internal/classifier"
	"xmlcsv/internal/common"
	"xmlcsv/internal/fileutils"
	"xmlcsv/internal/logging"
	"xmlcsv/internal/models"
	"xmlcsv/internal/validation"
	"xmlcsv/internal/xmlparser"

	"github.com/google/uuid"
)

// Converter converts a single input file to its CSV sibling.
type Converter struct {
	logger     logging.Logger
	parser     *xmlparser.Parser
	aggregator *aggregator.Aggregator
}

// NewConverter wires a Converter. A nil logger discards output.
func NewConverter(logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Converter{
		logger:     logger.WithField(logging.FieldComponent, "converter"),
		parser:     xmlparser.NewParser(logger),
		aggregator: aggregator.NewAggregator(logger),
	}
}

// Convert classifies inputPath by its file name, decodes it as that variant
// and writes the rows to the same directory with a .csv extension, replacing
// any existing file.
//
// A document without employees produces a NoData outcome and no file. Any
// failing step produces a Failed outcome carrying the error.
func (c *Converter) Convert(ctx context.Context, inputPath string) models.Outcome {
	start := time.Now()
	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: uuid.NewString()},
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
	)

	outcome := c.convert(ctx, inputPath, log)

	fields := []logging.Field{
		{Key: logging.FieldStatus, Value: outcome.Status.String()},
		{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	}
	if outcome.Err != nil {
		log.WithError(outcome.Err).Error("Conversion failed", fields...)
	} else {
		log.Info("Conversion finished", append(fields,
			logging.Field{Key: logging.FieldCount, Value: outcome.Summary.RowCount})...)
	}
	return outcome
}

func (c *Converter) convert(ctx context.Context, inputPath string, log logging.Logger) models.Outcome {
	if err := ctx.Err(); err != nil {
		return models.Failed(inputPath, "", err)
	}

	stem := classifier.Stem(inputPath)
	variant, err := classifier.Classify(stem)
	if err != nil {
		return models.Failed(inputPath, "", err)
	}
	log = log.WithFields(
		logging.Field{Key: logging.FieldStem, Value: stem},
		logging.Field{Key: logging.FieldVariant, Value: variant},
	)
	log.Debug("Classified input file")

	if err := validation.IsReadableFile(inputPath); err != nil {
		return models.Failed(inputPath, variant, err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return models.Failed(inputPath, variant, fmt.Errorf("error reading input file: %w", err))
	}

	doc, err := c.parser.Parse(data, variant)
	if err != nil {
		return models.Failed(inputPath, variant, err)
	}

	company := doc.Company()
	if !company.HasEmployees() {
		log.Info("Document lists no employees, nothing to export")
		return models.NoData(inputPath, variant)
	}

	rows, summary := c.aggregator.Flatten(company, variant)

	outputPath := fileutils.CSVPath(inputPath)
	if err := common.WriteRowsToFile(outputPath, variant, rows, log); err != nil {
		return models.Failed(inputPath, variant, err)
	}

	return models.Converted(inputPath, outputPath, summary)
}
