package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fortune/pkg/logger"
	"github.com/0x0FACED/go-fortune/pkg/voronoi"
)

func newVerifyCmd() *cobra.Command {
	var in inputOpts

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compute a Voronoi diagram and check it edge by edge",
		Long: `Verify computes the diagram and checks that every edge lies inside the
bounding box, that both ends are equidistant from the two sites it separates,
and that the sites record each other as neighbors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := compute(cmd.Context(), &in)
			if err != nil {
				return err
			}
			if err := checkDiagram(loggerFromContext(cmd.Context()), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d sites, %d edges\n", len(d.sites), len(d.edges))
			return nil
		},
	}
	addInputFlags(cmd, &in)
	return cmd
}

// checkDiagram logs every violation found by voronoi.Verify and summarizes
// them in one error. A single edge may account for several violations.
func checkDiagram(log *logger.ZapLogger, d *diagram) error {
	err := voronoi.Verify(d.edges, d.bbox)
	if err == nil {
		return nil
	}
	errs := multierr.Errors(err)
	for _, e := range errs {
		log.Error("[cli] check failed", zap.Error(e))
	}
	return fmt.Errorf("%d violations in %d edges: %w", len(errs), len(d.edges), errs[0])
}
