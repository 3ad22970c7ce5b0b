// errors.go: the error surface of the computation core.
//
// Every failure the core can produce carries one of the codes below. Failures
// are returned to the immediate caller as ordinary Go errors; nothing is
// retried and no operand is ever left half-written, because operands are
// immutable.
package hotscript

import "fmt"

// Code identifies an error category.
type Code string

const (
	// CodeInvalidOperand: malformed digit sequence at construction.
	CodeInvalidOperand Code = "invalid_operand"
	// CodeDivisionByZero: div or mod with a zero divisor.
	CodeDivisionByZero Code = "division_by_zero"
	// CodeInvalidExponent: power with a negative exponent.
	CodeInvalidExponent Code = "invalid_exponent"
	// CodeArityViolation: more concrete arguments than the operation's arity.
	CodeArityViolation Code = "arity_violation"
	// CodeUnknownOperation: a catalog lookup by name that matched nothing.
	CodeUnknownOperation Code = "unknown_operation"
)

// Error is a failure raised by the core. Op names the catalog operation that
// was being applied, when one was in play.
type Error struct {
	Code Code
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is matches by code, so errors.Is(err, ErrDivisionByZero) holds regardless
// of which operation raised the failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrInvalidOperand   = &Error{Code: CodeInvalidOperand, Msg: "invalid operand"}
	ErrDivisionByZero   = &Error{Code: CodeDivisionByZero, Msg: "division by zero"}
	ErrInvalidExponent  = &Error{Code: CodeInvalidExponent, Msg: "invalid exponent"}
	ErrArityViolation   = &Error{Code: CodeArityViolation, Msg: "arity violation"}
	ErrUnknownOperation = &Error{Code: CodeUnknownOperation, Msg: "unknown operation"}
)

func newErr(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Msg: fmt.Sprintf(format, args...)}
}
