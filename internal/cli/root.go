package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fortune/pkg/logger"
)

// NewRootCommand builds the command tree. Logs go to the command's error
// writer.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "fortune",
		Short:        "Voronoi diagrams with Fortune's sweep",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zapcore.InfoLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			log := logger.New(cmd.ErrOrStderr(), logger.WithLevel(level))
			cmd.SetContext(withLogger(cmd.Context(), log))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newServeCmd())
	return root
}

// Execute runs the CLI until ctx is cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
