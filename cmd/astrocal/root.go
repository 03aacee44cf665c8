package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mshafiee/astrocal"
)

// app carries the state shared by every subcommand of one command tree.
type app struct {
	v   *viper.Viper
	cfg config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "astrocal",
		Short:         "Astronomical time scales, calendars and units",
		Long:          "astrocal converts Julian Days between UTC, TAI, TT and TDB, civil dates to Julian Days, and magnitudes between units.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .astrocal.toml)")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	flags.Int("precision", 9, "decimals printed for Julian Days and magnitudes")
	if err := bindFlags(a.v, flags, "verbose", "precision"); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.convertCmd(),
		a.jdCmd(),
		a.calendarCmd(),
		a.deltaTCmd(),
		a.unitCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(a.v, file)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "scale", cfg.Scale, "target", cfg.Target, "precision", cfg.Precision)
	return nil
}

// bindFlags binds each named flag to the viper key of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// scaleFlag returns the scale named by a command flag, or fallback when the flag was not given.
func scaleFlag(flags *pflag.FlagSet, name, fallback string) (astrocal.Scale, error) {
	s := fallback
	if f := flags.Lookup(name); f != nil && f.Changed {
		s = f.Value.String()
	}
	return astrocal.ParseScale(s)
}
