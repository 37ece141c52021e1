// Package xmlparser decodes commission and vale payroll XML documents into the
// document model.
package xmlparser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"xmlcsv/internal/logging"
	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

// Parser decodes raw XML for an already classified variant.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a Parser. A nil logger discards output.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Parser{logger: logger.WithField(logging.FieldComponent, "xmlparser")}
}

// Parse decodes data as a document of the given variant.
//
// The root element must match the variant; a document carrying the other
// variant's root yields a SchemaMismatchError. Missing required elements and
// XML that is not well-formed yield a MalformedDocumentError. A company with
// no <Funcionario> elements is valid and has nil Employees.
func (p *Parser) Parse(data []byte, variant models.Variant) (models.Document, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("cannot parse unsupported variant %q", variant)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &parsererror.MalformedDocumentError{
			Variant: variant.String(),
			Err:     errors.New("document is empty"),
		}
	}

	found, ok, err := DetectRoot(data)
	if err != nil {
		return nil, &parsererror.MalformedDocumentError{Variant: variant.String(), Err: err}
	}
	if !ok || found != variant {
		mismatch := &parsererror.SchemaMismatchError{Expected: variant.RootElement()}
		if ok {
			mismatch.Found = found.RootElement()
		}
		p.logger.Debug("Root element does not match file name",
			logging.Field{Key: logging.FieldVariant, Value: variant},
			logging.Field{Key: "found", Value: mismatch.Found})
		return nil, mismatch
	}

	raw, err := decodeCompany(data, variant)
	if err != nil {
		return nil, &parsererror.MalformedDocumentError{Variant: variant.String(), Err: err}
	}

	company, err := raw.toModel(variant)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Parsed payroll document",
		logging.Field{Key: logging.FieldVariant, Value: variant},
		logging.Field{Key: logging.FieldCount, Value: len(company.Employees)})

	return models.NewDocument(variant, company), nil
}

// Parse decodes data with a Parser that does not log.
func Parse(data []byte, variant models.Variant) (models.Document, error) {
	return NewParser(nil).Parse(data, variant)
}

func newDecoder(data []byte) *xml.Decoder {
	d := xml.NewDecoder(bytes.NewReader(data))
	// Payroll exports frequently declare ISO-8859-1 or windows-1252.
	d.CharsetReader = charset.NewReaderLabel
	return d
}

func decodeCompany(data []byte, variant models.Variant) (*xmlCompany, error) {
	d := newDecoder(data)
	switch variant {
	case models.VariantCommission:
		var env commissionEnvelope
		if err := d.Decode(&env); err != nil {
			return nil, err
		}
		return env.Empresa, nil
	case models.VariantVale:
		var env valeEnvelope
		if err := d.Decode(&env); err != nil {
			return nil, err
		}
		return env.Empresa, nil
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
}

func (c *xmlCompany) toModel(variant models.Variant) (models.Company, error) {
	missing := func(field string) error {
		return &parsererror.MalformedDocumentError{Variant: variant.String(), Field: field}
	}

	if c == nil {
		return models.Company{}, missing(variant.RootElement() + "/" + models.ElementCompany)
	}

	company := models.Company{}
	required := []struct {
		name  string
		value *string
		dest  *string
	}{
		{models.ColumnDisplayName, c.Fantasia, &company.DisplayName},
		{models.ColumnLegalName, c.Razao, &company.LegalName},
		{models.ColumnTaxID, c.CNPJ, &company.TaxID},
		{models.ColumnPeriod, c.MesAno, &company.PeriodLabel},
	}
	for _, r := range required {
		if r.value == nil {
			return models.Company{}, missing(models.ElementCompany + "/" + r.name)
		}
		*r.dest = text(r.value)
	}

	if len(c.Funcionarios) == 0 {
		return company, nil
	}

	company.Employees = make([]models.Employee, 0, len(c.Funcionarios))
	for i, f := range c.Funcionarios {
		path := fmt.Sprintf("%s/%s[%d]/", models.ElementCompany, models.ElementEmployee, i+1)
		if f.CPF == nil {
			return models.Company{}, missing(path + models.ColumnEmployeeID)
		}
		if f.Valor == nil {
			return models.Company{}, missing(path + models.ColumnAmount)
		}

		employee := models.Employee{
			TaxID:  text(f.CPF),
			Amount: text(f.Valor),
		}
		if f.MetaPremio != nil {
			target := text(f.MetaPremio)
			employee.BonusTarget = &target
		}
		company.Employees = append(company.Employees, employee)
	}

	return company, nil
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

var rootPaths = map[models.Variant]*xmlpath.Path{
	models.VariantCommission: xmlpath.MustCompile("/" + models.VariantCommission.RootElement()),
	models.VariantVale:       xmlpath.MustCompile("/" + models.VariantVale.RootElement()),
}

// DetectRoot reports which supported variant's root element data carries.
// ok is false for a well-formed document with any other root. err is set only
// when data is not well-formed XML.
func DetectRoot(data []byte) (variant models.Variant, ok bool, err error) {
	root, err := xmlpath.ParseDecoder(newDecoder(data))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse XML: %w", err)
	}
	for _, v := range models.Variants() {
		if rootPaths[v].Exists(root) {
			return v, true, nil
		}
	}
	return "", false, nil
}
