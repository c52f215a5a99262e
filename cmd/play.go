package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"war/communication"
	"war/communication/console"
	"war/communication/scripted"
	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/logger"

	"github.com/spf13/cobra"
)

var (
	flagScenario  string
	flagSeed      uint64
	flagRecord    string
	flagMaxRounds int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game at this terminal. With --scenario the setup and every
round are read from a TOML file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runPlay(ctx, cmd)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagScenario, "scenario", "", "play a scripted scenario file")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed for missions and dice (0 uses the clock)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "directory to write game statistics to")
	playCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", 0, "end the game after this many rounds (0 for no limit)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(ctx context.Context, cmd *cobra.Command) error {
	seed := cfg.Game.Seed
	maxRounds := cfg.Game.MaxRounds
	recordDir := cfg.Record.Dir
	if cmd.Flags().Changed("max-rounds") {
		maxRounds = flagMaxRounds
	}
	if cmd.Flags().Changed("record") {
		recordDir = flagRecord
	}

	var (
		comm communication.Communicator
		dice game.Dice
	)
	if flagScenario != "" {
		scenario, err := scripted.Load(flagScenario)
		if err != nil {
			return err
		}
		script := scripted.New(scenario, cmd.OutOrStdout())
		if script.Seed() != 0 {
			seed = script.Seed()
		}
		comm, dice = script, script.Dice()
	} else {
		comm = console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}

	src := game.NewSource(seed)
	if dice == nil {
		dice = game.NewRandomDice(src)
	}

	players, registry, err := comm.CollectSetup(ctx, cfg.SetupRules(), src)
	if err != nil {
		return err
	}

	collector := metrics.NewDummyCollector()
	if recordDir != "" {
		collector = metrics.NewCollector()
	}

	e := engine.New(players, registry, comm,
		engine.WithRules(cfg.Rules()),
		engine.WithDice(dice),
		engine.WithMaxRounds(maxRounds),
		engine.WithCollector(collector),
		engine.WithLogger(logger.Component("engine").With().Uint64("seed", seed).Logger()),
	)
	if _, err := e.Run(ctx); err != nil {
		return err
	}

	if recordDir != "" {
		return record(recordDir, e, collector)
	}
	return nil
}

func record(dir string, e *engine.Engine, collector metrics.Collector) error {
	writer, err := metrics.NewWriter(dir, e.ID())
	if err != nil {
		return err
	}
	if err := writer.WriteGame(e.Metric()); err != nil {
		return fmt.Errorf("failed to store game statistics: %w", err)
	}
	if err := writer.WriteRounds(collector.Rounds()); err != nil {
		return fmt.Errorf("failed to store round statistics: %w", err)
	}
	log := logger.Component("play")
	log.Info().Str("dir", writer.Dir()).Msg("statistics written")
	return nil
}
