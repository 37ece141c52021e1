package models

import "github.com/shopspring/decimal"

// ConversionSummary carries the aggregates of one conversion.
//
// TotalPrimary is the sum of Valor. TotalSecondary is the sum of MetaPremio and
// stays zero for vale documents.
type ConversionSummary struct {
	Variant        Variant
	RowCount       int
	TotalPrimary   decimal.Decimal
	TotalSecondary decimal.Decimal
}

// NewConversionSummary returns an empty summary for variant.
func NewConversionSummary(variant Variant) ConversionSummary {
	return ConversionSummary{
		Variant:        variant,
		TotalPrimary:   decimal.Zero,
		TotalSecondary: decimal.Zero,
	}
}

// Add accounts for one employee row.
func (s *ConversionSummary) Add(amount, bonusTarget decimal.Decimal) {
	s.RowCount++
	s.TotalPrimary = s.TotalPrimary.Add(amount)
	if s.Variant.HasBonusTarget() {
		s.TotalSecondary = s.TotalSecondary.Add(bonusTarget)
	}
}

// HasSecondary reports whether TotalSecondary is meaningful for the variant.
func (s ConversionSummary) HasSecondary() bool {
	return s.Variant.HasBonusTarget()
}
