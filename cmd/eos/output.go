package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// emit writes v in the configured format. The text format writes lines
// instead, one per element.
func (a *app) emit(cmd *cobra.Command, v any, lines ...string) error {
	w := cmd.OutOrStdout()

	switch a.cfg.Format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		fmt.Fprintln(w, strings.Join(lines, "\n"))
	}
	return nil
}

type dateTimeReport struct {
	DateTime  string `json:"datetime" yaml:"datetime"`
	Zone      string `json:"zone" yaml:"zone"`
	Offset    string `json:"offset" yaml:"offset"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
}

type arithmeticReport struct {
	Start    string `json:"start" yaml:"start"`
	Interval string `json:"interval" yaml:"interval"`
	Result   string `json:"result" yaml:"result"`
}

type diffReport struct {
	From         string `json:"from" yaml:"from"`
	To           string `json:"to" yaml:"to"`
	Interval     string `json:"interval" yaml:"interval"`
	Days         string `json:"days" yaml:"days"`
	TotalSeconds int64  `json:"total_seconds" yaml:"total_seconds"`
}

type convertReport struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	UTC    string `json:"utc" yaml:"utc"`
}

type cmpReport struct {
	Instant   int  `json:"instant" yaml:"instant"`
	WallClock int  `json:"wall_clock" yaml:"wall_clock"`
	Same      bool `json:"same_instant" yaml:"same_instant"`
}

type weekReport struct {
	Date        string `json:"date" yaml:"date"`
	IsoWeek     string `json:"iso_week" yaml:"iso_week"`
	Weekday     string `json:"weekday" yaml:"weekday"`
	Ordinal     int    `json:"ordinal" yaml:"ordinal"`
	LeapYear    bool   `json:"leap_year" yaml:"leap_year"`
	DaysInMonth int    `json:"days_in_month" yaml:"days_in_month"`
}

type timestampReport struct {
	DateTime string `json:"datetime" yaml:"datetime"`
	Seconds  int64  `json:"seconds" yaml:"seconds"`
	Millis   int64  `json:"millis" yaml:"millis"`
}
