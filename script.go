// script.go: the one-line command form used by the CLI and the golden tests.
//
// A line is an operation name followed by whitespace-separated slots, where a
// slot is a decimal integer literal, "_" (placeholder), or "?" (omitted):
//
//	sub 10 2        -> 8
//	sub 2           -> sub(_, 2)      (curried: 2 is the subtrahend)
//	10              -> 8              (continues the pending operation)
//	div _ 4         -> div(_, 4)
//
// A line that starts with a slot instead of an operation name supplies
// arguments to the session's pending operation. This is intentionally not an
// expression grammar; the only literals are the two operand kinds.
package hotscript

import "strings"

// Session evaluates script lines against a registry, carrying at most one
// pending operation between lines, the way a REPL carries its last value.
type Session struct {
	reg     *Registry
	pending *Binding
}

// NewSession returns a session over the standard catalog.
func NewSession() *Session { return &Session{reg: std} }

// Pending returns the operation the session is waiting on, if any.
func (s *Session) Pending() (*Binding, bool) { return s.pending, s.pending != nil }

// Eval evaluates one line. A pending result is retained for continuation
// lines; a final result (or an error) clears it.
func (s *Session) Eval(line string) (Value, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Value{}, newErr(CodeUnknownOperation, "", "empty command")
	}

	var (
		v   Value
		err error
	)
	if d, ok := s.reg.Op(fields[0]); ok {
		var slots []Slot
		slots, err = parseSlots(fields[1:])
		if err == nil {
			v, err = d.Invoke(slots...)
		}
	} else if s.pending != nil {
		var slots []Slot
		slots, err = parseSlots(fields)
		if err == nil {
			v, err = s.pending.Supply(slots...)
		}
	} else {
		return Value{}, newErr(CodeUnknownOperation, "", "no operation named %q", fields[0])
	}

	if err != nil {
		s.pending = nil
		return Value{}, err
	}
	if b, ok := v.Pending(); ok {
		s.pending = b
	} else {
		s.pending = nil
	}
	return v, nil
}

func parseSlots(fields []string) ([]Slot, error) {
	slots := make([]Slot, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "_":
			slots = append(slots, Hole)
		case "?":
			slots = append(slots, Skip)
		default:
			x, err := Parse(f)
			if err != nil {
				return nil, err
			}
			slots = append(slots, Bind(x))
		}
	}
	return slots, nil
}
