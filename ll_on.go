//go:build eos_debug

package eos

/*
loglevels implements the bitmask of [EventType] values enabled
within a [DefaultTracer]. Levels may be referenced by value or,
once a names map is set, by case-insensitive name.
*/
type loglevels struct {
	v *uint16
	m map[int]string
}

func newLoglevels() (bv loglevels) {
	bv.v = new(uint16)
	return
}

func (r loglevels) enabled() (names []string) {
	switch *r.v {
	case 0:
		names = []string{"none"}
	case ^uint16(0):
		names = []string{"all"}
	default:
		for i := 0; i < 16; i++ {
			if d := 1 << i; (*r.v)&uint16(d) != 0 {
				names = append(names, r.m[d])
			}
		}
	}

	return
}

func (r *loglevels) SetNamesMap(m map[int]string) { r.m = m }

/*
Shift enables each level within x. EventAll enables every level.
*/
func (r *loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.levelOf(xi); ok && r.v != nil {
			*r.v |= uint16(X)
		}
	}
	return *r
}

/*
Unshift disables each level within x. EventAll disables every level.
*/
func (r *loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if X, ok := r.levelOf(xi); ok && r.v != nil {
			*r.v &^= uint16(X)
		}
	}
	return *r
}

/*
Positive returns a Boolean value indicative of any bit of x being
enabled.
*/
func (r loglevels) Positive(x any) (posi bool) {
	if X, ok := r.levelOf(x); ok && r.v != nil {
		posi = (*r.v)&uint16(X) != 0
	}
	return
}

func (r loglevels) levelOf(x any) (lvl int, ok bool) {
	switch tv := x.(type) {
	case string:
		lvl = -1
		for k, v := range r.m {
			if streqf(v, tv) {
				lvl = k
				break
			}
		}
	case int:
		lvl = tv
	case EventType:
		lvl = int(tv)
	case uint16:
		lvl = int(tv)
	default:
		return
	}

	ok = lvl >= 0 && lvl <= int(^uint16(0))
	return
}
