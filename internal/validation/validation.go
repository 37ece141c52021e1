// Package validation checks user-supplied paths and settings before they
// reach the converter.
package validation

import (
	"fmt"
	"os"
	"strings"
)

// ReportFormats lists the accepted console summary formats.
var ReportFormats = []string{"text", "json", "yaml"}

// IsReadableFile checks that path exists and is a regular file.
func IsReadableFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a regular file: %s", path)
	}
	return nil
}

// IsValidReportFormat checks that format is a supported summary format.
func IsValidReportFormat(format string) error {
	for _, f := range ReportFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported report format: %s. Supported formats are %s",
		format, strings.Join(ReportFormats, ", "))
}

// IsValidLogFormat checks that format is "text" or "json".
func IsValidLogFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", format)
	}
}
