package eos

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	atoi       func(string) (int, error)           = strconv.Atoi
	fmtInt     func(int64, int) string             = strconv.FormatInt
	lc         func(string) string                 = strings.ToLower
	split      func(string, string) []string       = strings.Split
	join       func([]string, string) string       = strings.Join
	hasPfx     func(string, string) bool           = strings.HasPrefix
	cntns      func(string, string) bool           = strings.Contains
	lidx       func(string, string) int            = strings.LastIndex
	streqf     func(string, string) bool           = strings.EqualFold
	replaceAll func(string, string, string) string = strings.ReplaceAll
)

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
divmod returns the floored quotient and remainder of a divided by b.
Unlike Go's native operators, the remainder always carries the sign
of b, so that a negative a still lands in [0, b) for positive b.
*/
func divmod[T constraints.Signed](a, b T) (q, m T) {
	q, m = a/b, a%b
	if m != 0 && (m < 0) != (b < 0) {
		q--
		m += b
	}
	return
}

func floordiv[T constraints.Signed](a, b T) T {
	q, _ := divmod(a, b)
	return q
}

func floormod[T constraints.Signed](a, b T) T {
	_, m := divmod(a, b)
	return m
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) (s int) {
	if x > 0 {
		s = 1
	} else if x < 0 {
		s = -1
	}
	return
}

/*
padInt writes the decimal form of n to b, zero-padded to width digits.
Negative values receive a leading hyphen which does not count toward
the width.
*/
func padInt(b *strings.Builder, n int64, width int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	s := fmtInt(n, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

/*
fracNanos writes the sub-second component ns as a decimal fraction
with trailing zeros removed. Nothing is written when ns is zero.
*/
func fracNanos(b *strings.Builder, ns uint32) {
	if ns == 0 {
		return
	}
	digits := []byte("000000000")
	s := fmtInt(int64(ns), 10)
	copy(digits[9-len(s):], s)
	end := len(digits)
	for end > 0 && digits[end-1] == '0' {
		end--
	}
	b.WriteByte('.')
	b.Write(digits[:end])
}
