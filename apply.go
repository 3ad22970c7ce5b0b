// apply.go: the partial-application engine.
//
// Every catalog operation is reached through this protocol. An operation of
// arity N is invoked with up to N slots; a slot is a concrete operand, an
// explicit placeholder (to be filled by a *later* positional argument, even
// out of order), or an explicit omitted marker (not yet supplied). Trailing
// omitted slots may simply be absent.
//
// When every slot is concrete, an explicit reduction step runs the
// operation's body and yields a final Value; otherwise the caller gets back
// a Binding of reduced effective arity, still awaiting arguments. Reduction
// is pure, so running it after every supply is observably the same as
// deferring it.
package hotscript

type slotKind int

const (
	slotConcrete slotKind = iota
	slotHole
	slotSkip
)

// Slot is one argument position in an invocation: a concrete operand, a
// placeholder, or an omitted marker.
type Slot struct {
	kind slotKind
	val  Operand
}

// Bind wraps a concrete operand into a slot.
func Bind(x Operand) Slot { return Slot{kind: slotConcrete, val: x} }

// Hole is the explicit placeholder marker: the slot is reserved and will be
// filled by a later positional argument, allowing out-of-order filling.
var Hole = Slot{kind: slotHole}

// Skip is the explicit omitted marker: the slot has not been supplied yet.
// Omitting a trailing argument is equivalent to passing Skip.
var Skip = Slot{kind: slotSkip}

// IsConcrete reports whether the slot carries an operand.
func (s Slot) IsConcrete() bool { return s.kind == slotConcrete }

// Operand returns the concrete operand and true, or a zero operand and false
// for marker slots.
func (s Slot) Operand() (Operand, bool) { return s.val, s.kind == slotConcrete }

// applyFunc is an operation body: it receives exactly arity operands and
// produces a final value.
type applyFunc func(args []Operand) (Value, error)

// Descriptor is a declared N-ary operation. Descriptors are immutable after
// registration and safe for concurrent use.
type Descriptor struct {
	Name  string
	Arity int
	// TakesRight marks non-commutative binary operations whose
	// single-concrete-argument invocation binds the *second* operand
	// (subtrahend, divisor, exponent, right-hand comparator), leaving the
	// first open. "sub 4" then means "subtract 4 from what comes next".
	TakesRight bool
	Doc        string

	apply applyFunc
}

// Binding is a pending operation: a descriptor plus one slot per parameter,
// some of them still open. Bindings are immutable; Supply returns a new
// value rather than mutating in place.
type Binding struct {
	desc  *Descriptor
	slots []Slot
}

// Invoke applies the operation to the given slots. With every slot concrete
// and all positions filled it reduces immediately to a final Value; with
// fewer, it returns a pending Value carrying a Binding. Supplying more slots
// than the arity fails with an arity-violation error.
func (d *Descriptor) Invoke(slots ...Slot) (Value, error) {
	if len(slots) > d.Arity {
		return Value{}, newErr(CodeArityViolation, d.Name, "%d argument(s) for arity %d", len(slots), d.Arity)
	}
	filled := make([]Slot, d.Arity)
	for i := range filled {
		filled[i] = Skip
	}
	if d.TakesRight && d.Arity == 2 && len(slots) == 1 && slots[0].kind == slotConcrete {
		// The curried convention: one concrete argument pre-binds the
		// right operand. An explicit marker binds positionally, since
		// the caller already said which slot it means.
		filled[0] = Hole
		filled[1] = slots[0]
	} else {
		copy(filled, slots)
	}
	return reduce(d, filled)
}

// Supply fills the binding's open slots with more arguments: placeholder
// slots are filled first, left to right, then omitted slots. The result is
// either a final Value or a new pending Binding; the receiver is unchanged.
func (b *Binding) Supply(slots ...Slot) (Value, error) {
	filled := append([]Slot(nil), b.slots...)
	for _, s := range slots {
		i := openIndex(filled)
		if i < 0 {
			return Value{}, newErr(CodeArityViolation, b.desc.Name, "no open slot for extra argument")
		}
		filled[i] = s
	}
	return reduce(b.desc, filled)
}

// openIndex finds the next slot Supply should fill: the first placeholder
// if any remains, otherwise the first omitted slot.
func openIndex(slots []Slot) int {
	skip := -1
	for i, s := range slots {
		switch s.kind {
		case slotHole:
			return i
		case slotSkip:
			if skip < 0 {
				skip = i
			}
		}
	}
	return skip
}

// Op returns the operation this binding is waiting on.
func (b *Binding) Op() *Descriptor { return b.desc }

// Open returns the number of slots still awaiting a concrete operand.
func (b *Binding) Open() int {
	n := 0
	for _, s := range b.slots {
		if s.kind != slotConcrete {
			n++
		}
	}
	return n
}

// Slots returns a copy of the binding's slots in declaration order.
func (b *Binding) Slots() []Slot { return append([]Slot(nil), b.slots...) }

// reduce is the explicit reduce-if-complete step: with every slot concrete
// it runs the body, otherwise it packages the slots into a pending Value.
func reduce(d *Descriptor, slots []Slot) (Value, error) {
	args := make([]Operand, len(slots))
	for i, s := range slots {
		if s.kind != slotConcrete {
			return pendingVal(&Binding{desc: d, slots: slots}), nil
		}
		args[i] = s.val
	}
	v, err := d.apply(args)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Op == "" {
			err = &Error{Code: e.Code, Op: d.Name, Msg: e.Msg}
		}
		return Value{}, err
	}
	return v, nil
}
