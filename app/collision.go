package app

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tinyid-go/tinyid/internal/collision"
)

func newCollisionCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collision",
		Short: "Draw identifiers until one repeats and report how long it took",
		Long: `collision draws identifiers until the first repeat, over one or more
independent runs, and compares the average with the birthday bound.

Full 64-bit identifiers need billions of draws to collide, so by default only
the low --bits of each identifier are compared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := st.cfg.Collision

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "Drawing identifiers truncated to %d bits until a collision occurs (%d runs)...\n", c.Bits, c.Runs)

			reg := prometheus.NewRegistry()

			report, err := collision.New(collision.NewMetrics(reg)).Run(ctx, collision.Options{
				Runs:          c.Runs,
				Workers:       c.Workers,
				Bits:          c.Bits,
				MaxIterations: c.MaxIterations,
				Seed:          c.Seed,
			})
			if err != nil {
				log.Error().Err(err).Msg("collision run failed")

				return err //nolint:wrapcheck
			}

			for _, t := range report.Trials {
				outcome := "collision"
				if !t.Collided {
					outcome = "no collision"
				}

				_, _ = fmt.Fprintf(out, "#%03d: %s after %s iterations (%s)\n",
					t.Run+1, outcome, humanize.Comma(int64(t.Iterations)), t.Duration.Round(time.Millisecond))
			}

			_, _ = fmt.Fprintf(out, "Collisions: %d of %d runs\n", report.Collisions, len(report.Trials))

			if report.Collisions > 0 {
				_, _ = fmt.Fprintf(out, "Average iterations until collision: %s (expected about %s)\n",
					humanize.Comma(int64(math.Round(report.Mean))), humanize.Comma(int64(math.Round(report.Expected))))
			}

			_, _ = fmt.Fprintf(out, "Elapsed time: %s\n", report.Elapsed.Round(time.Millisecond))

			if c.MetricsFile != "" {
				if err := prometheus.WriteToTextfile(c.MetricsFile, reg); err != nil {
					log.Error().Err(err).Str("path", c.MetricsFile).Msg("can't write metrics")

					return errors.Wrapf(err, "write metrics to %s", c.MetricsFile)
				}

				log.Debug().Str("path", c.MetricsFile).Msg("metrics written")
			}

			return nil
		},
	}

	cmd.Flags().Int("runs", 1, "number of independent runs")
	cmd.Flags().Int("workers", 0, "runs executed at once (0 = all)")
	cmd.Flags().Int("bits", 32, "low bits of each identifier that are compared (1-64)")
	cmd.Flags().Int("max", 0, "give up a run after this many draws (0 = no limit)")
	cmd.Flags().Uint64("seed", 0, "base seed for reproducible runs (0 = random)")
	cmd.Flags().String("metrics-file", "", "write the run counters to this file in Prometheus text format")

	bindFlag(st, cmd, "collision.runs", "runs")
	bindFlag(st, cmd, "collision.workers", "workers")
	bindFlag(st, cmd, "collision.bits", "bits")
	bindFlag(st, cmd, "collision.maxIterations", "max")
	bindFlag(st, cmd, "collision.seed", "seed")
	bindFlag(st, cmd, "collision.metricsFile", "metrics-file")

	return cmd
}
