// Package models holds the payroll document model shared by the parser, the
// aggregator and the CSV writer.
package models

// Employee is one <Funcionario> entry. Amount and BonusTarget keep the raw
// text of the source document; they are never reformatted.
type Employee struct {
	TaxID  string
	Amount string
	// BonusTarget is nil when <MetaPremio> is absent. Vale documents ignore it.
	BonusTarget *string
}

// BonusTargetText returns the bonus target text, or "" when it is absent.
func (e Employee) BonusTargetText() string {
	if e.BonusTarget == nil {
		return ""
	}
	return *e.BonusTarget
}

// Company is the <Empresa> element with its employees in document order.
// Employees is nil when the document lists no <Funcionario>.
type Company struct {
	DisplayName string
	LegalName   string
	TaxID       string
	PeriodLabel string
	Employees   []Employee
}

// HasEmployees reports whether there is anything to export.
func (c Company) HasEmployees() bool {
	return len(c.Employees) > 0
}
