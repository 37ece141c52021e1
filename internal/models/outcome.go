package models

// OutcomeStatus classifies how a conversion attempt ended.
type OutcomeStatus int

const (
	// OutcomeConverted means a CSV file was written.
	OutcomeConverted OutcomeStatus = iota
	// OutcomeNoData means the document was valid but listed no employees.
	// Nothing is written.
	OutcomeNoData
	// OutcomeFailed means a step returned an error. Err is set.
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeConverted:
		return "converted"
	case OutcomeNoData:
		return "no_data"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of converting a single input file.
type Outcome struct {
	Status     OutcomeStatus
	InputPath  string
	OutputPath string
	Variant    Variant
	Summary    ConversionSummary
	Err        error
}

// Converted builds a successful outcome.
func Converted(inputPath, outputPath string, summary ConversionSummary) Outcome {
	return Outcome{
		Status:     OutcomeConverted,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Variant:    summary.Variant,
		Summary:    summary,
	}
}

// NoData builds the "valid document, nothing to export" outcome.
func NoData(inputPath string, variant Variant) Outcome {
	return Outcome{
		Status:    OutcomeNoData,
		InputPath: inputPath,
		Variant:   variant,
		Summary:   NewConversionSummary(variant),
	}
}

// Failed builds a failed outcome. variant may be empty when classification
// itself failed.
func Failed(inputPath string, variant Variant, err error) Outcome {
	return Outcome{
		Status:    OutcomeFailed,
		InputPath: inputPath,
		Variant:   variant,
		Err:       err,
	}
}

// OK reports whether the outcome should be treated as success by a caller
// deciding an exit status. NoData counts as success.
func (o Outcome) OK() bool {
	return o.Status != OutcomeFailed
}
