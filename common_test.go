package eos

import (
	"math"
	"strings"
	"testing"
)

func TestCommon_codecov(_ *testing.T) {
	_ = bool2str(true)
	_ = bool2str(false)
	_ = floormod(-7, 3)
	_ = abs(int8(-3))
}

func TestDivmod(t *testing.T) {
	for idx, tst := range []struct {
		a, b, q, m int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
		{math.MinInt64, nanosPerSecond, -9223372037, 145224192},
	} {
		if q, m := divmod(tst.a, tst.b); q != tst.q || m != tst.m {
			t.Errorf("%s[%d] failed: divmod(%d, %d) want (%d, %d), got (%d, %d)",
				t.Name(), idx, tst.a, tst.b, tst.q, tst.m, q, m)
		}
	}

	if sign(-4) != -1 || sign(0) != 0 || sign(int64(9)) != 1 {
		t.Errorf("%s failed: bad sign", t.Name())
	}
}

func TestPadInt(t *testing.T) {
	for idx, tst := range []struct {
		n     int64
		width int
		want  string
	}{
		{5, 2, "05"},
		{2024, 4, "2024"},
		{12345, 4, "12345"},
		{-1, 4, "-0001"},
		{0, 2, "00"},
	} {
		var b strings.Builder
		if padInt(&b, tst.n, tst.width); b.String() != tst.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tst.want, b.String())
		}
	}
}

func TestFracNanos(t *testing.T) {
	for idx, tst := range []struct {
		ns   uint32
		want string
	}{
		{0, ""},
		{500_000_000, ".5"},
		{1, ".000000001"},
		{123_456_000, ".123456"},
		{999_999_999, ".999999999"},
	} {
		var b strings.Builder
		if fracNanos(&b, tst.ns); b.String() != tst.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tst.want, b.String())
		}
	}
}
