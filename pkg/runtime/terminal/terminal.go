package terminal

import (
	"io"
	"os"

	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/offer-atlas/pkg/runtime/terminal/export"

	"github.com/de-tools/offer-atlas/pkg/services/consolidate"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	controller *consolidate.Controller
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller *consolidate.Controller
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		controller: opts.Controller,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer-atlas",
		Short: "Offer pipeline consolidation tool",
	}

	cmd.AddCommand(commands.NewConsolidateCmd(cli.controller, cli.reporter))
	cmd.AddCommand(commands.NewNormalizeCmd())

	return cmd
}
