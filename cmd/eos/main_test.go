package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BeatButton/eos"
	"gopkg.in/yaml.v3"
)

// 2022-01-02T20:38:45Z
var testClock = eos.FixedClock(eos.NewTimestamp(1641155925, 0))

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envConfigVar, "")

	var out bytes.Buffer
	cmd := newRootCmd(testClock)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	for idx, tst := range []struct {
		args []string
		want string
	}{
		{[]string{"now", "--zone", "UTC"}, "2022-01-02T20:38:45+00:00"},
		{[]string{"now", "--zone", "Asia/Tokyo"}, "2022-01-03T05:38:45+09:00"},
		{[]string{"add", "2024-01-31", "--zone", "UTC", "--months", "1"}, "2024-02-29T00:00:00+00:00"},
		{[]string{"add", "2023-02-28", "-z", "+03:00", "--months", "1", "--sub"}, "2023-01-28T00:00:00+03:00"},
		{[]string{"add", "2021-11-06T01:30", "-z", "America/New_York", "--days", "1"}, "2021-11-07T01:30:00-04:00"},
		{[]string{"add", "2021-11-07T00:30", "-z", "UTC", "--duration", "90m"}, "2021-11-07T02:00:00+00:00"},
		{[]string{"diff", "2024-01-31", "2024-03-01", "-z", "UTC"}, "P1M1D\nP30D"},
		{[]string{"diff", "2022-01-01T10:00Z", "2022-03-02T12:30+02:00", "-z", "UTC"}, "P2M1DT30M\nP60DT30M"},
		{[]string{"diff", "2024-03-01", "2024-03-31", "-z", "Asia/Tokyo"}, "P30D\nP30D"},
		{[]string{"add", "2024-03-01", "-z", "Asia/Tokyo", "--days", "30"}, "2024-03-31T00:00:00+09:00"},
		{[]string{"convert", "2021-11-07T05:30Z", "--to", "America/New_York"}, "2021-11-07T01:30:00-04:00"},
		{[]string{"convert", "2021-11-07T06:30Z", "--to", "America/New_York"}, "2021-11-07T01:30:00-05:00"},
		{[]string{"convert", "2022-01-02T20:38:45", "-z", "UTC", "--to", "+09:00", "--relabel"}, "2022-01-02T20:38:45+09:00"},
		{[]string{"cmp", "2022-01-01T13:00+03:00", "2022-01-01T10:00Z"}, "instant: 0\nwall clock: 1"},
		{[]string{"cmp", "2022-01-01T10:00+03:00", "2022-01-01T10:00", "-z", "UTC"}, "instant: -1\nwall clock: 0"},
		{[]string{"week", "1995-01-01"}, "1994-W52-7"},
		{[]string{"week", "2020-W53-7"}, "2020-W53-7"},
		{[]string{"timestamp", "2022-01-02T20:38:45-05:00"}, "1641173925"},
		{[]string{"timestamp", "@1641155925", "-z", "UTC"}, "2022-01-02T20:38:45+00:00"},
		{[]string{"timestamp", "-z", "UTC"}, "1641155925"},
		{[]string{"range", "2024-03-01", "2024-03-05", "--only", "weekday"}, "2024-03-01\n2024-03-04"},
		{[]string{"recur", "2024-01-31", "-z", "UTC", "--months", "1", "--count", "3"},
			"2024-01-31T00:00:00+00:00\n2024-02-29T00:00:00+00:00\n2024-03-31T00:00:00+00:00"},
	} {
		got, err := run(t, tst.args...)
		if err != nil {
			t.Errorf("%s[%d] failed [%s]: %v", t.Name(), idx, strings.Join(tst.args, " "), err)
		} else if got != tst.want {
			t.Errorf("%s[%d] failed [%s]:\nwant %q\ngot  %q", t.Name(), idx, strings.Join(tst.args, " "), tst.want, got)
		}
	}
}

func TestCommands_errors(t *testing.T) {
	for idx, args := range [][]string{
		{"add", "2023-02-29", "-z", "UTC"},
		{"add", "2021-03-14T02:30", "-z", "America/New_York", "--disambiguation", "reject"},
		{"now", "-z", "Mars/Olympus_Mons"},
		{"now", "--format", "xml"},
		{"now", "--disambiguation", "sooner"},
		{"range", "2024-03-01", "2024-03-05", "--only", "fortnightly"},
		{"week", "2024-13-01"},
		{"timestamp", "@soon"},
		{"cmp", "2022-01-01T10:00+25:00", "2022-01-01"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%s[%d] failed [%s]: expected error", t.Name(), idx, strings.Join(args, " "))
		}
	}
}

func TestFormats(t *testing.T) {
	out, err := run(t, "diff", "2022-01-01T10:00Z", "2022-01-02T11:00Z", "-z", "UTC", "--format", "json")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	var diff diffReport
	if err = json.Unmarshal([]byte(out), &diff); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if diff.Interval != "P1DT1H" || diff.TotalSeconds != 90000 {
		t.Fatalf("%s failed: got %+v", t.Name(), diff)
	}

	if out, err = run(t, "week", "2024-02-29", "-f", "yaml"); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	var week weekReport
	if err = yaml.Unmarshal([]byte(out), &week); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if week.Ordinal != 60 || !week.LeapYear || week.Weekday != "Thursday" || week.DaysInMonth != 29 {
		t.Fatalf("%s failed: got %+v", t.Name(), week)
	}
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eos.yaml")
	data := []byte("zone: Asia/Tokyo\nformat: json\ndisambiguation: later\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	out, err := run(t, "now", "--config", path)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	var now dateTimeReport
	if err = json.Unmarshal([]byte(out), &now); err != nil {
		t.Fatalf("%s failed: %v (%s)", t.Name(), err, out)
	}
	if now.Zone != "Asia/Tokyo" || now.Offset != "+09:00" || now.Timestamp != 1641155925 {
		t.Fatalf("%s failed: got %+v", t.Name(), now)
	}

	// flags take precedence over the file
	if out, err = run(t, "now", "--config", path, "-f", "text", "-z", "UTC"); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if out != "2022-01-02T20:38:45+00:00" {
		t.Fatalf("%s failed: got %s", t.Name(), out)
	}

	// the policy is read from the file
	if out, err = run(t, "add", "2021-11-07T01:30", "--config", path, "-f", "text", "-z", "America/New_York"); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if out != "2021-11-07T01:30:00-05:00" {
		t.Fatalf("%s failed: got %s", t.Name(), out)
	}

	if _, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("%s failed: expected error", t.Name())
	}
}

func TestParseDateTime(t *testing.T) {
	for idx, tst := range []struct {
		in   string
		date string
		time string
		off  string
	}{
		{"2024-02-29", "2024-02-29", "00:00:00", ""},
		{"2024-02-29T13:04", "2024-02-29", "13:04:00", ""},
		{"2024-02-29T13:04:05.25Z", "2024-02-29", "13:04:05.25", "+00:00"},
		{"-0001-12-31T23:59:59-05:30", "-0001-12-31", "23:59:59", "-05:30"},
		{"2024-W09-4T12:00+01", "2024-02-29", "12:00:00", "+01:00"},
	} {
		d, tm, off, err := parseDateTime(tst.in)
		if err != nil {
			t.Errorf("%s[%d] failed [%s]: %v", t.Name(), idx, tst.in, err)
			continue
		}
		var o string
		if off != nil {
			o = off.String()
		}
		if d.String() != tst.date || tm.String() != tst.time || o != tst.off {
			t.Errorf("%s[%d] failed [%s]: got %s %s %q", t.Name(), idx, tst.in, d, tm, o)
		}
	}
}
