package eos

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags eos_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags eos_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Traced call entry, with arguments
	EventInfo                             //     2: Tracer setup and notices
	EventExit                             //     4: Traced call exit, with results
	EventIO                               //     8: Environment and clock reads
	EventDate                             //    16: Date clamping and rollover
	EventTime                             //    32: Time carry and borrow
	EventInterval                         //    64: Interval arithmetic and differences
	EventZone                             //   128: Offset lookups and zone conversions
	EventCompare                          //   256: Cross-zone comparisons
	EventConstraint                       //   512: Constraint ops
	EventPerf                             //  1024: Elapsed time of traced calls
	_                                     //  2048: unassigned
	_                                     //  4096: unassigned
	_                                     //  8192: unassigned
	_                                     // 16384: unassigned
	_                                     // 32768: unassigned
)
