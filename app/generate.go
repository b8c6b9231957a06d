package app

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tinyid-go/tinyid/internal/pool"
	"github.com/tinyid-go/tinyid/tinyid"
)

func newGenerateCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print new random identifiers, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := st.cfg.Generate
			gen := newGenerator(g.Seed)
			next := gen.Random

			if g.Unique {
				p := pool.New(gen)
				p.SetMaxAttempts(g.MaxAttempts)

				if err := p.ReserveStrings(g.Reserved...); err != nil {
					return err
				}

				next = p.Next

				defer func() {
					log.Debug().Uint64("rerolls", p.Rerolls()).Int("reserved", len(g.Reserved)).Msg("unique generation done")
				}()
			}

			out := cmd.OutOrStdout()

			for i := range g.Count {
				id, err := next()
				if err != nil {
					log.Error().Err(err).Int("index", i).Msg("can't generate id")

					return err
				}

				if _, err := fmt.Fprintln(out, id); err != nil {
					return err //nolint:wrapcheck
				}
			}

			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "number of identifiers to print")
	cmd.Flags().Uint64("seed", 0, "seed for a reproducible sequence (0 = random)")
	cmd.Flags().Bool("unique", false, "never repeat an identifier or print the null one")
	cmd.Flags().Int("max-attempts", 0, "draws allowed per identifier with --unique (0 = default)")

	bindFlag(st, cmd, "generate.count", "count")
	bindFlag(st, cmd, "generate.seed", "seed")
	bindFlag(st, cmd, "generate.unique", "unique")
	bindFlag(st, cmd, "generate.maxAttempts", "max-attempts")

	return cmd
}

func newGenerator(seed uint64) *tinyid.Generator {
	if seed == 0 {
		return tinyid.NewGenerator(tinyid.NewSeededSource(randomSeed()))
	}

	return tinyid.NewGenerator(tinyid.NewSeededSource(seed))
}

// randomSeed picks a non-zero seed; zero means "unseeded" in the config.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 { //nolint:gosec
			return s
		}
	}
}
