// Package classifier picks the document variant from a file name.
// Classification is purely lexical: file contents are never inspected.
package classifier

import (
	"path/filepath"
	"strings"

	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"
)

const prefixSeparator = "_"

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Prefix returns the part of stem before the first underscore, or the whole
// stem when it has none.
func Prefix(stem string) string {
	prefix, _, _ := strings.Cut(stem, prefixSeparator)
	return prefix
}

// Classify maps a filename stem to its variant. The prefix match is
// case-sensitive.
func Classify(stem string) (models.Variant, error) {
	prefix := Prefix(stem)
	for _, v := range models.Variants() {
		if prefix == string(v) {
			return v, nil
		}
	}
	return "", &parsererror.UnsupportedSchemaError{Stem: stem, Prefix: prefix}
}
