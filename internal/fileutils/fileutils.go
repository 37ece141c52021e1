// Package fileutils provides the file system helpers used to locate input
// documents and derive output paths.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"xmlcsv/internal/parsererror"
)

// CSVExtension is the extension of every output file.
const CSVExtension = ".csv"

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFiles returns the regular files in dirPath (not recursive) whose name
// matches pattern, sorted by name. It returns a *parsererror.NoInputError when
// nothing matches.
func ListFiles(dirPath, pattern string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	matches, err := filepath.Glob(filepath.Join(dirPath, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if FileExists(m) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, &parsererror.NoInputError{Directory: dirPath, Pattern: pattern}
	}

	sort.Strings(files)
	return files, nil
}

// ReplaceExtension returns path with its final extension replaced by ext.
// A path without extension gets ext appended.
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// CSVPath returns the CSV sibling of an input document.
func CSVPath(inputPath string) string {
	return ReplaceExtension(inputPath, CSVExtension)
}
