// Package report renders conversion outcomes for the console.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"xmlcsv/internal/currencyutils"
	"xmlcsv/internal/logging"
	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"
	"xmlcsv/internal/validation"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Messages shown to the user.
const (
	MsgNoEmployees       = "O arquivo XML não contém funcionários. Nenhum dado será exportado para o CSV."
	MsgUnsupportedSchema = "Tipo de arquivo não suportado."
	MsgMalformed         = "Arquivo XML inválido."
	MsgWriteFailure      = "Não foi possível gravar o arquivo CSV."
)

// Summary is the structured form of an outcome used by the json and yaml
// formats. Amounts are fixed to two decimals.
type Summary struct {
	Status           string `json:"status" yaml:"status"`
	Input            string `json:"input" yaml:"input"`
	Output           string `json:"output,omitempty" yaml:"output,omitempty"`
	Variant          string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Employees        int    `json:"employees" yaml:"employees"`
	TotalAmount      string `json:"total_amount,omitempty" yaml:"total_amount,omitempty"`
	TotalBonusTarget string `json:"total_bonus_target,omitempty" yaml:"total_bonus_target,omitempty"`
	Message          string `json:"message,omitempty" yaml:"message,omitempty"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Generator renders outcomes in one of the supported formats.
type Generator struct {
	format string
	logger logging.Logger
}

// NewGenerator creates a Generator for format ("text", "json" or "yaml").
func NewGenerator(format string, logger logging.Logger) (*Generator, error) {
	if err := validation.IsValidReportFormat(format); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{
		format: format,
		logger: logger.WithField(logging.FieldComponent, "report"),
	}, nil
}

// Generate renders outcome as bytes.
func (g *Generator) Generate(outcome models.Outcome) ([]byte, error) {
	switch g.format {
	case "json":
		out, err := json.MarshalIndent(NewSummary(outcome), "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(NewSummary(outcome))
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	default:
		var buf bytes.Buffer
		writeText(&buf, outcome)
		return buf.Bytes(), nil
	}
}

// Render writes the rendered outcome to w.
func (g *Generator) Render(w io.Writer, outcome models.Outcome) error {
	out, err := g.Generate(outcome)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// NewSummary converts an outcome into its structured form.
func NewSummary(outcome models.Outcome) Summary {
	s := Summary{
		Status:  outcome.Status.String(),
		Input:   outcome.InputPath,
		Output:  outcome.OutputPath,
		Variant: outcome.Variant.String(),
	}

	switch outcome.Status {
	case models.OutcomeConverted:
		s.Employees = outcome.Summary.RowCount
		s.TotalAmount = outcome.Summary.TotalPrimary.StringFixed(2)
		if outcome.Summary.HasSecondary() {
			s.TotalBonusTarget = outcome.Summary.TotalSecondary.StringFixed(2)
		}
	case models.OutcomeNoData:
		s.Message = MsgNoEmployees
	case models.OutcomeFailed:
		s.Message = FailureMessage(outcome.Err)
		if outcome.Err != nil {
			s.Error = outcome.Err.Error()
		}
	}
	return s
}

// FailureMessage returns the user-facing headline for a conversion error.
func FailureMessage(err error) string {
	switch parsererror.Kind(err) {
	case parsererror.ErrUnsupportedSchema:
		return MsgUnsupportedSchema
	case parsererror.ErrMalformedDocument:
		return MsgMalformed
	case parsererror.ErrWriteFailure:
		return MsgWriteFailure
	default:
		return "Erro ao converter o arquivo."
	}
}

var (
	successColor = color.New(color.FgHiGreen)
	noticeColor  = color.New(color.FgHiYellow)
	failureColor = color.New(color.FgHiRed)
)

func writeText(w io.Writer, outcome models.Outcome) {
	switch outcome.Status {
	case models.OutcomeConverted:
		summary := outcome.Summary
		successColor.Fprintf(w, "Dados exportados para %s com sucesso!\n", outcome.OutputPath)
		successColor.Fprintf(w, "Quantidade de funcionários: %d.\n", summary.RowCount)
		if summary.HasSecondary() {
			successColor.Fprintf(w, "Total de comissão: %s\n", currencyutils.FormatAmount(summary.TotalPrimary))
			successColor.Fprintf(w, "Total por meta: %s\n", currencyutils.FormatAmount(summary.TotalSecondary))
		} else {
			successColor.Fprintf(w, "Total de vales: %s\n", currencyutils.FormatAmount(summary.TotalPrimary))
		}
	case models.OutcomeNoData:
		noticeColor.Fprintln(w, MsgNoEmployees)
	default:
		failureColor.Fprintln(w, FailureMessage(outcome.Err))
		if outcome.Err != nil {
			failureColor.Fprintf(w, "Detalhe: %v\n", outcome.Err)
		}
	}
}
