// Package aggregator flattens a company into CSV rows and accumulates the
// conversion totals.
package aggregator

import (
	"xmlcsv/internal/currencyutils"
	"xmlcsv/internal/logging"
	"xmlcsv/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregator builds output rows for one company at a time. It holds no state
// between calls.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator. A nil logger discards output.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Aggregator{
		logger: logger.WithField(logging.FieldComponent, "aggregator"),
	}
}

// Flatten produces one row per employee, in document order, with the company
// fields repeated on each row, and the summary of the rows produced.
//
// Amount text is copied verbatim into the rows. Totals use the coerced value,
// so unparsable amounts add zero. A company without employees yields no rows
// and a summary with RowCount 0.
func (a *Aggregator) Flatten(company models.Company, variant models.Variant) ([]models.OutputRow, models.ConversionSummary) {
	summary := models.NewConversionSummary(variant)
	if !company.HasEmployees() {
		return nil, summary
	}

	rows := make([]models.OutputRow, 0, len(company.Employees))
	for i, employee := range company.Employees {
		row := models.OutputRow{
			DisplayName:   company.DisplayName,
			LegalName:     company.LegalName,
			CompanyTaxID:  company.TaxID,
			PeriodLabel:   company.PeriodLabel,
			EmployeeTaxID: employee.TaxID,
			Amount:        employee.Amount,
		}

		amount := a.coerce(i, models.ColumnAmount, &employee.Amount)
		bonusTarget := decimal.Zero
		if variant.HasBonusTarget() {
			row.BonusTarget = employee.BonusTargetText()
			bonusTarget = a.coerce(i, models.ColumnBonusTarget, employee.BonusTarget)
		}

		summary.Add(amount, bonusTarget)
		rows = append(rows, row)
	}

	a.logger.Debug("Flattened company",
		logging.Field{Key: logging.FieldVariant, Value: variant},
		logging.Field{Key: logging.FieldCount, Value: summary.RowCount},
		logging.Field{Key: "total_primary", Value: summary.TotalPrimary.String()},
		logging.Field{Key: "total_secondary", Value: summary.TotalSecondary.String()})

	return rows, summary
}

// coerce returns the amount of an optional element. A nil text is an absent
// element and adds zero silently.
func (a *Aggregator) coerce(index int, column string, text *string) decimal.Decimal {
	if text != nil {
		if _, ok := currencyutils.CoerceReport(*text); !ok {
			a.logger.Warn("Amount is not a valid decimal, counting it as zero",
				logging.Field{Key: logging.FieldEmployee, Value: index + 1},
				logging.Field{Key: logging.FieldColumn, Value: column},
				logging.Field{Key: logging.FieldValue, Value: *text})
		}
	}
	return currencyutils.Coerce(text)
}
