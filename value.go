// value.go: the dispatch result union.
//
// Invoking a catalog operation yields one of four kinds of result: a number,
// a boolean (relational predicates), an ordering (compare), or a pending
// binding still awaiting arguments. The tag determines which accessor is
// valid; a failed invocation yields none of these, only an error.
package hotscript

// ValueTag enumerates the result kinds an invocation may produce.
type ValueTag int

const (
	VNumber   ValueTag = iota // an exact integer result
	VBool                     // a relational predicate result
	VOrdering                 // a compare result: -1, 0, or 1
	VPending                  // a partially-applied operation
)

// Value is the tagged result of an invocation.
type Value struct {
	Tag  ValueTag
	Data any
}

// NumberVal wraps an operand result.
func NumberVal(x Operand) Value { return Value{Tag: VNumber, Data: x} }

// BoolVal wraps a predicate result.
func BoolVal(b bool) Value { return Value{Tag: VBool, Data: b} }

// OrderingVal wraps a compare result (-1, 0, or 1).
func OrderingVal(n int) Value { return Value{Tag: VOrdering, Data: n} }

func pendingVal(b *Binding) Value { return Value{Tag: VPending, Data: b} }

// Final reports whether the value is a finished result rather than a
// pending binding.
func (v Value) Final() bool { return v.Tag != VPending }

// Number returns the operand result, if that is what the value holds.
func (v Value) Number() (Operand, bool) {
	x, ok := v.Data.(Operand)
	return x, ok && v.Tag == VNumber
}

// Bool returns the predicate result, if that is what the value holds.
func (v Value) Bool() (bool, bool) {
	b, ok := v.Data.(bool)
	return b, ok && v.Tag == VBool
}

// Ordering returns the compare result, if that is what the value holds.
func (v Value) Ordering() (int, bool) {
	n, ok := v.Data.(int)
	return n, ok && v.Tag == VOrdering
}

// Pending returns the binding still awaiting arguments, if any.
func (v Value) Pending() (*Binding, bool) {
	b, ok := v.Data.(*Binding)
	return b, ok && v.Tag == VPending
}
