// Package app implements the tinyid commands.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinyid-go/tinyid/internal/config"
	"github.com/tinyid-go/tinyid/internal/logger"
)

// state is shared by the root command and its subcommands.
type state struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	st := &state{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "tinyid",
		Short: "tinyid creates and inspects short human-typable identifiers",
		Long: `tinyid creates and inspects 8-byte identifiers rendered as 13 Crockford
base32 symbols. They are easy to read out and type, but not secure and not
globally unique.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(st.v, st.configPath)
			if err != nil {
				return err
			}

			st.cfg = cfg

			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			if e := log.Debug(); e.Enabled() {
				dump, err := config.DumpConfigJSON(&cfg)
				if err != nil {
					log.Warn().Err(err).Msg("can't dump config")
				} else {
					e.RawJSON("config", []byte(dump)).Msg("effective config")
				}
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&st.configPath, "config", "c", "", "path to a TOML config file (default "+config.DefaultFile+")")

	rootCmd.AddCommand(
		newGenerateCmd(st),
		newDecodeCmd(st),
		newCollisionCmd(st),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// bindFlag ties a command flag to a config key so the flag wins when set.
func bindFlag(st *state, cmd *cobra.Command, key, flag string) {
	if err := st.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
