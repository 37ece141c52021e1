package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEmployee_BonusTargetText(t *testing.T) {
	target := "10.00"
	assert.Equal(t, "10.00", Employee{BonusTarget: &target}.BonusTargetText())
	assert.Equal(t, "", Employee{}.BonusTargetText())
}

func TestCompany_HasEmployees(t *testing.T) {
	assert.False(t, Company{}.HasEmployees())
	assert.False(t, Company{Employees: []Employee{}}.HasEmployees())
	assert.True(t, Company{Employees: []Employee{{TaxID: "111"}}}.HasEmployees())
}

func TestNewDocument(t *testing.T) {
	c := Company{DisplayName: "Acme"}

	commission := NewDocument(VariantCommission, c)
	assert.IsType(t, &CommissionDocument{}, commission)
	assert.Equal(t, VariantCommission, commission.Variant())
	assert.Equal(t, "Acme", commission.Company().DisplayName)

	vale := NewDocument(VariantVale, c)
	assert.IsType(t, &ValeDocument{}, vale)
	assert.Equal(t, VariantVale, vale.Variant())

	assert.Nil(t, NewDocument(Variant("other"), c))
}

func TestOutputRow_Values(t *testing.T) {
	row := OutputRow{
		DisplayName: "Acme", LegalName: "Acme LTDA", CompanyTaxID: "00.000.000/0001-00",
		PeriodLabel: "01/2024", EmployeeTaxID: "111", Amount: "100.50", BonusTarget: "10.00",
	}
	assert.Len(t, row.Values(VariantCommission), 7)
	assert.Equal(t, "10.00", row.Values(VariantCommission)[6])
	assert.Equal(t, []string{"Acme", "Acme LTDA", "00.000.000/0001-00", "01/2024", "111", "100.50"},
		row.Values(VariantVale))
}

func TestRecords_RoundTrip(t *testing.T) {
	rows := []OutputRow{{DisplayName: "A", EmployeeTaxID: "1", Amount: "abc", BonusTarget: "2"}}

	commission := CommissionRecords(rows)
	assert.Equal(t, rows[0], commission[0].Row())

	vale := ValeRecords(rows)
	back := vale[0].Row()
	assert.Equal(t, "abc", back.Amount)
	assert.Empty(t, back.BonusTarget)
}

func TestConversionSummary_Add(t *testing.T) {
	s := NewConversionSummary(VariantCommission)
	s.Add(decimal.RequireFromString("100.50"), decimal.RequireFromString("10"))
	s.Add(decimal.RequireFromString("200"), decimal.Zero)

	assert.Equal(t, 2, s.RowCount)
	assert.True(t, s.TotalPrimary.Equal(decimal.RequireFromString("300.50")))
	assert.True(t, s.TotalSecondary.Equal(decimal.RequireFromString("10")))
	assert.True(t, s.HasSecondary())

	v := NewConversionSummary(VariantVale)
	v.Add(decimal.NewFromInt(5), decimal.NewFromInt(7))
	assert.True(t, v.TotalSecondary.IsZero())
	assert.False(t, v.HasSecondary())
}

func TestOutcome_Constructors(t *testing.T) {
	ok := Converted("in.xml", "in.csv", NewConversionSummary(VariantVale))
	assert.Equal(t, OutcomeConverted, ok.Status)
	assert.Equal(t, VariantVale, ok.Variant)
	assert.True(t, ok.OK())

	none := NoData("in.xml", VariantCommission)
	assert.Equal(t, "no_data", none.Status.String())
	assert.True(t, none.OK())
	assert.Empty(t, none.OutputPath)

	failed := Failed("in.xml", "", assert.AnError)
	assert.False(t, failed.OK())
	assert.ErrorIs(t, failed.Err, assert.AnError)
}
