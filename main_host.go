//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"galton/app"
	"galton/board/config"
	"galton/board/report"
	"galton/hal"
	"galton/internal/buildinfo"

	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       uint32

	scale int

	ticks    uint64
	hold     bool
	every    time.Duration
	stick    uint16
	realtime bool
	quiet    bool

	writePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "galton",
		Short:        "Galton board for a 128x64 mono display",
		Version:      buildinfo.Long(),
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Uint32Var(&seed, "seed", 0, "random seed (0 = random)")
	rootCmd.Flags().IntVar(&scale, "scale", 4, "window scale")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run in a desktop window (Z/Space drop, X/Tab view, arrows tilt)",
		RunE:  runWindow,
	}
	windowCmd.Flags().IntVar(&scale, "scale", 4, "window scale")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run in the terminal",
		RunE:  runTerm,
	}

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "run without a display and print the histogram",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().Uint64Var(&ticks, "ticks", 2000, "stop after N ticks (0 = until interrupted)")
	headlessCmd.Flags().BoolVar(&hold, "hold", true, "hold the drop button for the whole run")
	headlessCmd.Flags().DurationVar(&every, "every", 0, "tap the drop button at this interval instead of holding it")
	headlessCmd.Flags().Uint16Var(&stick, "stick", 0, "raw joystick sample (0 = centered)")
	headlessCmd.Flags().BoolVar(&realtime, "realtime", false, "sleep the loop delay between ticks")
	headlessCmd.Flags().BoolVar(&quiet, "quiet", false, "do not print log lines")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "also save it to this path")

	rootCmd.AddCommand(windowCmd, termCmd, headlessCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

func starter(cfg config.Config, out **app.System) hal.Starter {
	return func(h hal.HAL) (hal.StepFunc, error) {
		s, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		if out != nil {
			*out = s
		}
		return s.Step, nil
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return hal.RunWindow(hal.WindowConfig{TickPeriod: cfg.LoopDelay, Scale: scale}, starter(cfg, nil))
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return hal.RunTerminal(hal.TerminalConfig{TickPeriod: cfg.LoopDelay}, starter(cfg, nil))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Nobody is watching the boot screen.
	cfg.Splash = 0

	var logOut io.Writer = cmd.ErrOrStderr()
	if quiet {
		logOut = io.Discard
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sys *app.System
	err = hal.RunHeadless(ctx, hal.HeadlessConfig{
		TickPeriod: cfg.LoopDelay,
		Ticks:      ticks,
		Realtime:   realtime,
		HoldSpawn:  hold && every == 0,
		SpawnEvery: every,
		Joystick:   stick,
		Log:        logOut,
	}, starter(cfg, &sys))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if sys == nil {
		return nil
	}

	raw := stick
	if raw == 0 {
		raw = hal.JoystickRawCenter
	}
	e := sys.Engine()
	fmt.Fprintf(cmd.OutOrStdout(), "seed %d, %d ticks, stick %d (bias %+.2f)\n\n",
		sys.Seed(), sys.Ticks(), raw, cfg.Joystick.Bias(raw))
	return report.Write(cmd.OutOrStdout(), report.Summarize(e.Bins(), e.Active()))
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	if writePath != "" {
		return config.Save(writePath, cfg)
	}
	return nil
}
