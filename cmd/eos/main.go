package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/BeatButton/eos"
	"github.com/BeatButton/eos/zoneinfo"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// app holds the state shared by every subcommand once the persistent
// flags and the config file were read.
type app struct {
	cfg    Config
	zone   zoneinfo.Zone
	policy eos.Disambiguation
	clock  eos.Clock
	log    *slog.Logger
}

func main() {
	if err := newRootCmd(eos.SystemClock{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(clock eos.Clock) *cobra.Command {
	a := &app{clock: clock}

	rootCmd := &cobra.Command{
		Use:   "eos",
		Short: "Civil calendar calculator",
		Long: `Eos performs calendar arithmetic on dates, times and zoned date-times.

Date-times are read as YYYY-MM-DD[THH:MM[:SS[.fffffffff]]][Z|±HH:MM]. When
no offset is given, the local time is resolved within --zone, applying the
--disambiguation policy to ambiguous or skipped local times.

Example:
  eos add 2024-01-31 --months 1
  eos diff 2022-01-01T10:00Z 2022-03-02T12:30+02:00
  eos convert 2021-11-07T05:30Z --zone America/New_York`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file (default $"+envConfigVar+")")
	flags.StringP("zone", "z", "", `zone of local times: IANA name, "UTC", "local" or an offset such as "+03:00"`)
	flags.StringP("format", "f", "text", "output format: text, json or yaml")
	flags.String("disambiguation", "compatible", "policy for ambiguous or skipped local times: compatible, earlier, later or reject")
	flags.BoolP("verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(nowCmd(a))
	rootCmd.AddCommand(addCmd(a))
	rootCmd.AddCommand(diffCmd(a))
	rootCmd.AddCommand(convertCmd(a))
	rootCmd.AddCommand(cmpCmd(a))
	rootCmd.AddCommand(weekCmd(a))
	rootCmd.AddCommand(timestampCmd(a))
	rootCmd.AddCommand(rangeCmd(a))
	rootCmd.AddCommand(recurCmd(a))

	return rootCmd
}

// setup merges the config file with the persistent flags, flags taking
// precedence when set explicitly.
func (a *app) setup(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	a.log = newLogger(cmd.ErrOrStderr(), verbose)

	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"zone", &cfg.Zone},
		{"format", &cfg.Format},
		{"disambiguation", &cfg.Disambiguation},
	} {
		if v, _ := cmd.Flags().GetString(f.name); cmd.Flags().Changed(f.name) || *f.dst == "" {
			*f.dst = v
		}
	}

	if err = cfg.validate(); err != nil {
		return err
	}
	if a.policy, err = eos.ParseDisambiguation(cfg.Disambiguation); err != nil {
		return fmt.Errorf("invalid disambiguation: %w", err)
	}
	if a.zone, err = parseZone(cfg.Zone); err != nil {
		return err
	}
	a.cfg = cfg

	a.log.Debug("configured",
		slog.String("zone", a.zone.Name()),
		slog.String("format", cfg.Format),
		slog.String("disambiguation", a.policy.String()))
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
