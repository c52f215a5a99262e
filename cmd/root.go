package cmd

import (
	"war/config"
	"war/logger"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "war",
	Short: "War - a text console territory conquest game",
	Long: `A game of territories and dice for 2 to 5 players sharing one terminal.
Each player draws a secret mission; the first to complete it, or to
paint the whole map in their color, wins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = flagLogLevel
		}
		logger.Init(loaded.Log.Level, cmd.ErrOrStderr())
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default war.yaml in . or $HOME/.config/war)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func Execute() error {
	return rootCmd.Execute()
}
