package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mshafiee/astrocal"
)

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert JD",
		Short: "Re-express a Julian Day in another time scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("julian day %q: %w", args[0], err)
			}
			from, err := scaleFlag(cmd.Flags(), "from", a.cfg.Scale)
			if err != nil {
				return err
			}
			to, err := scaleFlag(cmd.Flags(), "to", a.cfg.Target)
			if err != nil {
				return err
			}

			t, err := astrocal.NewInstant(jd, from)
			if err != nil {
				return err
			}
			a.log.Debug("converting", "instant", t, "to", to)
			if _, err := t.Convert(to); err != nil {
				return err
			}
			a.printJD(cmd, t)
			return nil
		},
	}
	cmd.Flags().String("from", "", "scale of the input (default from config, UTC)")
	cmd.Flags().String("to", "", "scale of the output (default from config, TDB)")
	return cmd
}

func (a *app) jdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jd YYYY-MM-DD [HH:MM:SS.sss]",
		Short: "Julian Day of a civil UTC date",
		Long:  "jd converts civil fields to a UTC Julian Day. Years BC are negative (1 BC is -1), dates before 1582-10-15 are Julian.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCalendar(args)
			if err != nil {
				return err
			}
			t, err := astrocal.FromCalendar(c)
			if err != nil {
				return err
			}
			if f := cmd.Flags().Lookup("to"); f.Changed {
				to, err := astrocal.ParseScale(f.Value.String())
				if err != nil {
					return err
				}
				a.log.Debug("converting", "instant", t, "to", to)
				if _, err := t.Convert(to); err != nil {
					return err
				}
			}
			a.printJD(cmd, t)
			return nil
		},
	}
	cmd.Flags().String("to", "", "re-express the UTC Julian Day in this scale")
	return cmd
}

func (a *app) calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar JD",
		Short: "Civil calendar fields of a Julian Day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("julian day %q: %w", args[0], err)
			}
			scale, err := scaleFlag(cmd.Flags(), "scale", a.cfg.Scale)
			if err != nil {
				return err
			}
			t, err := astrocal.NewInstant(jd, scale)
			if err != nil {
				return err
			}
			c, err := t.Calendar()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c, scale)
			return nil
		},
	}
	cmd.Flags().String("scale", "", "scale the Julian Day is expressed in (default from config, UTC)")
	return cmd
}

func (a *app) deltaTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deltat YEAR",
		Short: "ΔT in seconds for a decimal year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("year %q: %w", args[0], err)
			}
			dt, err := astrocal.DeltaTForYear(year)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.*f\n", a.cfg.Precision, dt)
			return nil
		},
	}
}

func (a *app) unitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unit MAGNITUDE FROM TO",
		Short:   "Convert a magnitude between units",
		Example: "  astrocal unit 1 Meter/Second Kilometer/Hour\n  astrocal unit 90 Degree Radian",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mag, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("magnitude %q: %w", args[0], err)
			}
			from, err := astrocal.ParseUnit(args[1])
			if err != nil {
				return err
			}
			to, err := astrocal.ParseUnit(args[2])
			if err != nil {
				return err
			}
			v, err := astrocal.Of(mag, from).In(to)
			if err != nil {
				return err
			}
			a.log.Debug("converted", "from", from, "to", to, "factor", v.Magnitude()/mag)
			fmt.Fprintf(cmd.OutOrStdout(), "%.*f %s\n", a.cfg.Precision, v.Magnitude(), v.Unit())
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.encode(cmd.OutOrStdout())
		},
	}
}

func (a *app) printJD(cmd *cobra.Command, t astrocal.Instant) {
	fmt.Fprintf(cmd.OutOrStdout(), "JD %.*f %s\n", a.cfg.Precision, t.JD(), t.Scale())
}

// parseCalendar reads "YYYY-MM-DD" and an optional "HH:MM:SS.sss".
func parseCalendar(args []string) (astrocal.Calendar, error) {
	var c astrocal.Calendar
	var rest string
	if n, _ := fmt.Sscanf(args[0], "%d-%d-%d%s", &c.Year, &c.Month, &c.Day, &rest); n != 3 {
		return c, fmt.Errorf("date %q: want YYYY-MM-DD: %w", args[0], astrocal.ErrInvalidCalendar)
	}
	if len(args) == 2 {
		if n, _ := fmt.Sscanf(args[1], "%d:%d:%g%s", &c.Hour, &c.Minute, &c.Second, &rest); n != 3 {
			return c, fmt.Errorf("time %q: want HH:MM:SS: %w", args[1], astrocal.ErrInvalidCalendar)
		}
	}
	return c, nil
}
