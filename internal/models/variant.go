package models

// Variant identifies which of the two payroll document schemas a file uses.
// The string value is the filename prefix that selects the variant.
type Variant string

const (
	// VariantCommission is the monthly sales-commission document (<Comissao> root).
	VariantCommission Variant = "comissao"
	// VariantVale is the advance-payment ("vale") document (<Vales> root).
	VariantVale Variant = "vales"
)

var (
	commissionHeader = []string{
		ColumnDisplayName, ColumnLegalName, ColumnTaxID, ColumnPeriod,
		ColumnEmployeeID, ColumnAmount, ColumnBonusTarget,
	}
	valeHeader = []string{
		ColumnDisplayName, ColumnLegalName, ColumnTaxID, ColumnPeriod,
		ColumnEmployeeID, ColumnAmount,
	}
)

// Variants lists every supported variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantCommission, VariantVale}
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v == VariantCommission || v == VariantVale
}

// RootElement is the top-level XML element that wraps the company.
func (v Variant) RootElement() string {
	switch v {
	case VariantCommission:
		return "Comissao"
	case VariantVale:
		return "Vales"
	default:
		return ""
	}
}

// Header returns the fixed CSV header for the variant. The returned slice is a
// copy and may be modified by the caller.
func (v Variant) Header() []string {
	var h []string
	switch v {
	case VariantCommission:
		h = commissionHeader
	case VariantVale:
		h = valeHeader
	default:
		return nil
	}
	out := make([]string, len(h))
	copy(out, h)
	return out
}

// HasBonusTarget reports whether the variant carries the MetaPremio column.
func (v Variant) HasBonusTarget() bool {
	return v == VariantCommission
}

func (v Variant) String() string {
	return string(v)
}
