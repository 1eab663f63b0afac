//go:build !eos_debug

package eos

type loglevels struct{}

func newLoglevels() (_ loglevels)                 { return loglevels{} }
func (_ *loglevels) SetNamesMap(_ map[int]string) {}
func (_ *loglevels) Shift(_ ...any) loglevels     { return loglevels{} }
func (_ *loglevels) Unshift(_ ...any) loglevels   { return loglevels{} }
func (_ loglevels) Positive(_ any) bool           { return false }
func (_ loglevels) enabled() []string             { return nil }
