package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/birthchart/internal/app"
	"github.com/doeshing/birthchart/internal/infrastructure/cli/commands"
	"github.com/doeshing/birthchart/internal/services"
)

// ErrRequestFailed marks a failure that has already been reported as a JSON
// record on stderr; main must exit non-zero without printing anything else.
var ErrRequestFailed = errors.New("request failed")

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var inputPath string

	root := &cobra.Command{
		Use:   "birthchart",
		Short: "Compute a PyJHora birth chart from a JSON request",
		Long: "birthchart reads one birth-event request as a JSON object on stdin\n" +
			"and writes exactly one result record as a single JSON line on stdout.\n" +
			"All diagnostics, including error records, go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, cleanup, err := openInput(cmd, inputPath)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome := container.ChartService.Run(cmd.Context(), input)
			emitter := &services.Emitter{Out: cmd.OutOrStdout(), Diag: cmd.ErrOrStderr()}
			if emitter.Emit(outcome) != services.ExitOK {
				return ErrRequestFailed
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&inputPath, "input", "", "Read the request from a file instead of stdin")

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}

// openInput resolves the request source. When reading from an interactive
// terminal a hint goes to stderr so the silent blocking read is explained.
func openInput(cmd *cobra.Command, inputPath string) (io.Reader, func(), error) {
	if inputPath != "" {
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open input file: %w", err)
		}
		return file, func() { file.Close() }, nil
	}

	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		fmt.Fprintln(cmd.ErrOrStderr(), "reading request from terminal; finish with Ctrl-D")
	}
	return in, func() {}, nil
}
