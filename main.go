package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"xmlcsv/cmd/common"
	"xmlcsv/cmd/convert"
	"xmlcsv/cmd/root"
	"xmlcsv/cmd/version"
)

func init() {
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(version.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.Cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Conversion failures were already reported on stdout.
		if !errors.Is(err, common.ErrConversionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
