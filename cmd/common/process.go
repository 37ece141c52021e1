// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"xmlcsv/internal/fileutils"
	"xmlcsv/internal/models"
	"xmlcsv/internal/parsererror"

	"github.com/fatih/color"
)

// Console messages of the interactive mode.
const (
	MsgWelcome     = "Bem-vindo ao Conversor XML para CSV!"
	MsgNoXMLFiles  = "Não foram encontrados arquivos XML na pasta."
	MsgChooseFile  = "Escolha o arquivo XML a ser convertido:"
	MsgPressEnter  = "Pressione Enter para sair..."
	msgVersionLine = "Versão %s"
)

var (
	bannerColor = color.New(color.FgHiGreen)
	creditColor = color.New(color.FgHiYellow)
	alertColor  = color.New(color.FgHiRed)
)

// ErrConversionFailed marks an error whose details were already shown to the
// user through the report.
var ErrConversionFailed = errors.New("conversion failed")

// Converter converts one input file.
type Converter interface {
	Convert(ctx context.Context, inputPath string) models.Outcome
}

// Reporter renders an outcome for the user.
type Reporter interface {
	Render(w io.Writer, outcome models.Outcome) error
}

// ProcessFile converts inputFile and renders the outcome to out. A failed
// conversion is returned wrapped in ErrConversionFailed; a NoData outcome is
// not an error.
func ProcessFile(ctx context.Context, conv Converter, rep Reporter, inputFile string, out io.Writer) (models.Outcome, error) {
	outcome := conv.Convert(ctx, inputFile)
	if err := rep.Render(out, outcome); err != nil {
		return outcome, err
	}
	if !outcome.OK() {
		return outcome, fmt.Errorf("%w: %w", ErrConversionFailed, outcome.Err)
	}
	return outcome, nil
}

// Prompter asks the user to choose an input file and to acknowledge the
// result. *picker.Picker implements it.
type Prompter interface {
	Select(label string, items []string, def int) (int, error)
	WaitForEnter(message string)
}

// InteractiveOptions configures RunInteractive.
type InteractiveOptions struct {
	Directory   string
	Pattern     string
	Banner      bool
	PauseOnExit bool
	Version     string
}

// RunInteractive lists the input files of opts.Directory, lets the user pick
// one and converts it. Finding no input files is reported and is not an
// error.
func RunInteractive(ctx context.Context, opts InteractiveOptions, conv Converter, rep Reporter, prompter Prompter, out io.Writer) error {
	if opts.Banner {
		bannerColor.Fprintln(out, MsgWelcome)
		if opts.Version != "" {
			creditColor.Fprintf(out, msgVersionLine+"\n", opts.Version)
		}
		fmt.Fprintln(out)
	}

	files, err := fileutils.ListFiles(opts.Directory, opts.Pattern)
	if errors.Is(err, parsererror.ErrNoInputFound) {
		alertColor.Fprintln(out, MsgNoXMLFiles)
		return nil
	}
	if err != nil {
		return err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}

	choice, err := prompter.Select(MsgChooseFile, names, 0)
	if err != nil {
		return err
	}

	_, err = ProcessFile(ctx, conv, rep, files[choice], out)

	if opts.PauseOnExit {
		prompter.WaitForEnter(MsgPressEnter)
	}
	return err
}
