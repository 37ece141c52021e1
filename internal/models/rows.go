package models

// OutputRow is one flattened employee line. Company fields are repeated on
// every row of the same company.
type OutputRow struct {
	DisplayName   string
	LegalName     string
	CompanyTaxID  string
	PeriodLabel   string
	EmployeeTaxID string
	Amount        string
	BonusTarget   string
}

// Values returns the row as the variant's column tuple, in header order.
func (r OutputRow) Values(variant Variant) []string {
	values := []string{
		r.DisplayName, r.LegalName, r.CompanyTaxID, r.PeriodLabel,
		r.EmployeeTaxID, r.Amount,
	}
	if variant.HasBonusTarget() {
		values = append(values, r.BonusTarget)
	}
	return values
}

// CommissionRecord is the gocsv mapping of a commission output line.
type CommissionRecord struct {
	Fantasia   string `csv:"Fantasia"`
	Razao      string `csv:"Razao"`
	CNPJ       string `csv:"CNPJ"`
	MesAno     string `csv:"MesAno"`
	CPF        string `csv:"CPF"`
	Valor      string `csv:"Valor"`
	MetaPremio string `csv:"MetaPremio"`
}

// ValeRecord is the gocsv mapping of a vale output line.
type ValeRecord struct {
	Fantasia string `csv:"Fantasia"`
	Razao    string `csv:"Razao"`
	CNPJ     string `csv:"CNPJ"`
	MesAno   string `csv:"MesAno"`
	CPF      string `csv:"CPF"`
	Valor    string `csv:"Valor"`
}

// CommissionRecords converts rows to their commission CSV mapping.
func CommissionRecords(rows []OutputRow) []CommissionRecord {
	records := make([]CommissionRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, CommissionRecord{
			Fantasia:   r.DisplayName,
			Razao:      r.LegalName,
			CNPJ:       r.CompanyTaxID,
			MesAno:     r.PeriodLabel,
			CPF:        r.EmployeeTaxID,
			Valor:      r.Amount,
			MetaPremio: r.BonusTarget,
		})
	}
	return records
}

// ValeRecords converts rows to their vale CSV mapping. BonusTarget is dropped.
func ValeRecords(rows []OutputRow) []ValeRecord {
	records := make([]ValeRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, ValeRecord{
			Fantasia: r.DisplayName,
			Razao:    r.LegalName,
			CNPJ:     r.CompanyTaxID,
			MesAno:   r.PeriodLabel,
			CPF:      r.EmployeeTaxID,
			Valor:    r.Amount,
		})
	}
	return records
}

// Row converts a commission record back to an OutputRow.
func (r CommissionRecord) Row() OutputRow {
	return OutputRow{
		DisplayName:   r.Fantasia,
		LegalName:     r.Razao,
		CompanyTaxID:  r.CNPJ,
		PeriodLabel:   r.MesAno,
		EmployeeTaxID: r.CPF,
		Amount:        r.Valor,
		BonusTarget:   r.MetaPremio,
	}
}

// Row converts a vale record back to an OutputRow.
func (r ValeRecord) Row() OutputRow {
	return OutputRow{
		DisplayName:   r.Fantasia,
		LegalName:     r.Razao,
		CompanyTaxID:  r.CNPJ,
		PeriodLabel:   r.MesAno,
		EmployeeTaxID: r.CPF,
		Amount:        r.Valor,
	}
}
