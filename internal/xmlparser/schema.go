package xmlparser

import "encoding/xml"

// Wire structures. Pointer fields distinguish an absent element from an empty
// one so required elements can be enforced after decoding.

type commissionEnvelope struct {
	XMLName xml.Name    `xml:"Comissao"`
	Empresa *xmlCompany `xml:"Empresa"`
}

type valeEnvelope struct {
	XMLName xml.Name    `xml:"Vales"`
	Empresa *xmlCompany `xml:"Empresa"`
}

type xmlCompany struct {
	Fantasia     *string       `xml:"Fantasia"`
	Razao        *string       `xml:"Razao"`
	CNPJ         *string       `xml:"CNPJ"`
	MesAno       *string       `xml:"MesAno"`
	Funcionarios []xmlEmployee `xml:"Funcionario"`
}

type xmlEmployee struct {
	CPF        *string `xml:"CPF"`
	Valor      *string `xml:"Valor"`
	MetaPremio *string `xml:"MetaPremio"`
}
