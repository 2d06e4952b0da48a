package wikitext

import "github.com/pkg/errors"

// errRouteFailure is the internal control-flow sentinel signaling that the
// current speculative parse cannot be completed. It is always caught by
// the sub-scanner that began the speculation and never escapes Tokenize —
// see spec §7.
var errRouteFailure = errors.New("wikitext: route failure")

// Error reports a broken scanner invariant: a route failure that reached
// the root frame. TokenizeWithStats panics with it. It never signals
// malformed input (there is no such thing — spec §7), and the resource
// caps are reported through Stats, not through Error.
//
// The shape (Sender plus an Error() string) is carried over from the
// teacher's own diagnostic Error type; Head/Cause replace Filename/Line
// since this scanner tracks a segment cursor, not source positions.
type Error struct {
	Sender string
	Head   int
	Cause  error
}

func (e *Error) Error() string {
	s := "[wikitext"
	if e.Sender != "" {
		s += " (where: " + e.Sender + ")"
	}
	s += "] "
	if e.Cause != nil {
		s += e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

func wrapf(sender string, cause error, format string, args ...interface{}) error {
	return &Error{Sender: sender, Cause: errors.Wrapf(cause, format, args...)}
}
