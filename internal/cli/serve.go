package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fortune/internal/viewer"
)

func newServeCmd() *cobra.Command {
	var (
		addr     string
		debugRun bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if debugRun {
				level = zapcore.DebugLevel
			}
			s := viewer.New(loggerFromContext(cmd.Context()), level)
			err := s.ListenAndServe(cmd.Context(), addr)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().BoolVar(&debugRun, "trace", false, "embed every sweep event in the page log")
	return cmd
}
