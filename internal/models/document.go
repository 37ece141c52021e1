package models

// Document is a parsed payroll document. It is implemented only by
// CommissionDocument and ValeDocument.
type Document interface {
	Variant() Variant
	Company() Company
	isDocument()
}

// CommissionDocument is a <Comissao> document.
type CommissionDocument struct {
	company Company
}

// NewCommissionDocument wraps a company parsed from a <Comissao> root.
func NewCommissionDocument(c Company) *CommissionDocument {
	return &CommissionDocument{company: c}
}

func (d *CommissionDocument) Variant() Variant { return VariantCommission }
func (d *CommissionDocument) Company() Company { return d.company }
func (d *CommissionDocument) isDocument()      {}

// ValeDocument is a <Vales> document.
type ValeDocument struct {
	company Company
}

// NewValeDocument wraps a company parsed from a <Vales> root.
func NewValeDocument(c Company) *ValeDocument {
	return &ValeDocument{company: c}
}

func (d *ValeDocument) Variant() Variant { return VariantVale }
func (d *ValeDocument) Company() Company { return d.company }
func (d *ValeDocument) isDocument()      {}

// NewDocument builds the document type matching variant. It returns nil for
// an unsupported variant.
func NewDocument(variant Variant, c Company) Document {
	switch variant {
	case VariantCommission:
		return NewCommissionDocument(c)
	case VariantVale:
		return NewValeDocument(c)
	default:
		return nil
	}
}
