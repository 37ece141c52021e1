// Package convert handles the non-interactive conversion command
package convert

import (
	"xmlcsv/cmd/common"
	"xmlcsv/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert <file.xml>",
	Short: "Convert one payroll XML file to CSV",
	Long: `Convert one payroll XML file to CSV.

The file name prefix selects the schema: "comissao" for commission documents,
"vales" for advance-payment documents. The CSV is written next to the input
with the same name and a .csv extension, replacing any existing file.`,
	Args: cobra.ExactArgs(1),
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	_, err := common.ProcessFile(cmd.Context(),
		root.AppContainer.GetConverter(), root.AppContainer.GetReportGenerator(),
		args[0], cmd.OutOrStdout())
	return err
}
