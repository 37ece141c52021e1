// Package root contains the root command for the application
package root

import (
	"fmt"

	"xmlcsv/cmd/common"
	"xmlcsv/cmd/version"
	"xmlcsv/internal/config"
	"xmlcsv/internal/container"
	"xmlcsv/internal/picker"

	"github.com/spf13/cobra"
)

var (
	// AppContainer holds the wired dependencies. It is built before any
	// command runs unless already set.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "xmlcsv",
		Short: "Converte arquivos XML de comissões ou vales para CSV",
		Long: `xmlcsv converts payroll XML documents (commission "comissao_*" and
advance-payment "vales_*" files) into semicolon-delimited CSV files.

Run without arguments to pick a file from the current directory
interactively, or use "xmlcsv convert <file.xml>" in scripts.`,
		Version:           version.Version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE:              runInteractive,
	}
)

func init() {
	Cmd.SetVersionTemplate(version.String() + "\n")
}

func initialize(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		return nil
	}

	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := AppContainer.GetConfig()
	opts := common.InteractiveOptions{
		Directory:   cfg.Input.Directory,
		Pattern:     cfg.Input.Pattern,
		Banner:      cfg.Interactive.Banner,
		PauseOnExit: cfg.Interactive.PauseOnExit,
		Version:     version.Version,
	}
	return common.RunInteractive(cmd.Context(), opts,
		AppContainer.GetConverter(), AppContainer.GetReportGenerator(),
		picker.New(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout())
}

var _ common.Prompter = (*picker.Picker)(nil)
