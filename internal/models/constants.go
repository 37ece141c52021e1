package models

// Column names of the CSV output. They double as the XML element names of the
// source document.
const (
	ColumnDisplayName = "Fantasia"
	ColumnLegalName   = "Razao"
	ColumnTaxID       = "CNPJ"
	ColumnPeriod      = "MesAno"
	ColumnEmployeeID  = "CPF"
	ColumnAmount      = "Valor"
	ColumnBonusTarget = "MetaPremio"
)

// XML element names that are not also CSV columns.
const (
	ElementCompany  = "Empresa"
	ElementEmployee = "Funcionario"
)
