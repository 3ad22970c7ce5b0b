// catalog.go: the named operation catalog.
//
// Each entry is a thin declaration binding one arithmetic algorithm into the
// partial-application engine, plus the per-operation curried convention: for
// the non-commutative operations (sub, div, mod, power, compare, and the four
// ordering predicates) a single concrete argument binds the second operand.
// Commutative operations and the pure equality predicates bind positionally.
package hotscript

import "sort"

// Registry is a fixed set of named operations. The standard registry is
// built once at init and is read-only afterwards, so concurrent lookups and
// invocations need no coordination.
type Registry struct {
	ops map[string]*Descriptor
}

func (r *Registry) register(name string, arity int, takesRight bool, doc string, fn applyFunc) {
	r.ops[name] = &Descriptor{
		Name:       name,
		Arity:      arity,
		TakesRight: takesRight,
		Doc:        doc,
		apply:      fn,
	}
}

// Op returns the descriptor registered under name.
func (r *Registry) Op(name string) (*Descriptor, bool) {
	d, ok := r.ops[name]
	return d, ok
}

// Ops returns all registered names, sorted.
func (r *Registry) Ops() []string {
	names := make([]string, 0, len(r.ops))
	for n := range r.ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var std = newCatalog()

// Catalog returns the standard operation registry.
func Catalog() *Registry { return std }

// Lookup finds a standard operation by name; unknown names fail with an
// unknown-operation error.
func Lookup(name string) (*Descriptor, error) {
	d, ok := std.ops[name]
	if !ok {
		return nil, newErr(CodeUnknownOperation, "", "no operation named %q", name)
	}
	return d, nil
}

func number(x Operand) (Value, error) { return NumberVal(x), nil }

func newCatalog() *Registry {
	r := &Registry{ops: map[string]*Descriptor{}}

	r.register("add", 2, false, "add(a, b): exact sum",
		func(xs []Operand) (Value, error) { return number(Add(xs[0], xs[1])) })
	r.register("sub", 2, true, "sub(a, b): exact difference a-b; sub(b) awaits the minuend",
		func(xs []Operand) (Value, error) { return number(Sub(xs[0], xs[1])) })
	r.register("mul", 2, false, "mul(a, b): exact product",
		func(xs []Operand) (Value, error) { return number(Mul(xs[0], xs[1])) })
	r.register("div", 2, true, "div(a, b): truncated quotient; div(b) awaits the dividend; fails on b = 0",
		func(xs []Operand) (Value, error) {
			q, err := Div(xs[0], xs[1])
			if err != nil {
				return Value{}, err
			}
			return number(q)
		})
	r.register("mod", 2, true, "mod(a, b): remainder of div, sign of a; mod(b) awaits the dividend; fails on b = 0",
		func(xs []Operand) (Value, error) {
			m, err := Mod(xs[0], xs[1])
			if err != nil {
				return Value{}, err
			}
			return number(m)
		})
	r.register("negate", 1, false, "negate(a): -a",
		func(xs []Operand) (Value, error) { return number(Neg(xs[0])) })
	r.register("abs", 1, false, "abs(a): absolute value",
		func(xs []Operand) (Value, error) { return number(Abs(xs[0])) })
	r.register("max", 2, false, "max(a, b): the larger operand",
		func(xs []Operand) (Value, error) { return number(Max(xs[0], xs[1])) })
	r.register("min", 2, false, "min(a, b): the smaller operand",
		func(xs []Operand) (Value, error) { return number(Min(xs[0], xs[1])) })
	r.register("power", 2, true, "power(a, b): a**b; power(b) awaits the base; fails on b < 0",
		func(xs []Operand) (Value, error) {
			p, err := Pow(xs[0], xs[1])
			if err != nil {
				return Value{}, err
			}
			return number(p)
		})
	r.register("compare", 2, true, "compare(a, b): -1, 0, or 1",
		func(xs []Operand) (Value, error) { return OrderingVal(Cmp(xs[0], xs[1])), nil })

	r.register("equal", 2, false, "equal(a, b): a == b",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) == 0), nil })
	r.register("notEqual", 2, false, "notEqual(a, b): a != b",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) != 0), nil })
	r.register("lessThan", 2, true, "lessThan(a, b): a < b; lessThan(b) awaits the left operand",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) < 0), nil })
	r.register("lessThanOrEqual", 2, true, "lessThanOrEqual(a, b): a <= b",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) <= 0), nil })
	r.register("greaterThan", 2, true, "greaterThan(a, b): a > b; greaterThan(b) awaits the left operand",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) > 0), nil })
	r.register("greaterThanOrEqual", 2, true, "greaterThanOrEqual(a, b): a >= b",
		func(xs []Operand) (Value, error) { return BoolVal(Cmp(xs[0], xs[1]) >= 0), nil })

	return r
}
