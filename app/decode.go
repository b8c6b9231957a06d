package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tinyid-go/tinyid/tinyid"
)

// ErrDecodeFailed is returned when at least one argument could not be decoded.
var ErrDecodeFailed = errors.New("some identifiers could not be decoded")

func newDecodeCmd(_ *state) *cobra.Command {
	return &cobra.Command{
		Use:   "decode ID...",
		Short: "Parse identifiers and show their canonical form and raw value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd
			failed := 0

			_, _ = fmt.Fprintln(tw, "INPUT\tID\tHEX\tUINT64\tNULL")

			for _, arg := range args {
				id, err := tinyid.Decode(arg)
				if err != nil {
					failed++

					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)

					continue
				}

				_, _ = fmt.Fprintf(tw, "%s\t%s\t%x\t%d\t%t\n", arg, id, id[:], id.Uint64(), id.IsNull())
			}

			if err := tw.Flush(); err != nil {
				return err //nolint:wrapcheck
			}

			if failed > 0 {
				return errors.Wrapf(ErrDecodeFailed, "%d of %d", failed, len(args))
			}

			return nil
		},
	}
}
