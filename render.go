// render.go: human-readable rendering of results and pending operations.
package hotscript

import (
	"strconv"
	"strings"
)

// String renders a final result as its natural text, and a pending binding
// as the operation with its slot states, e.g. "sub(_, 2)".
func (v Value) String() string {
	switch v.Tag {
	case VNumber:
		return v.Data.(Operand).String()
	case VBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VOrdering:
		return strconv.Itoa(v.Data.(int))
	case VPending:
		return v.Data.(*Binding).String()
	default:
		return "<unknown>"
	}
}

// String renders the pending operation: "_" for a placeholder slot, "?" for
// an omitted one, the decimal text for a bound operand.
func (b *Binding) String() string {
	var sb strings.Builder
	sb.WriteString(b.desc.Name)
	sb.WriteByte('(')
	for i, s := range b.slots {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (s Slot) String() string {
	switch s.kind {
	case slotConcrete:
		return s.val.String()
	case slotHole:
		return "_"
	default:
		return "?"
	}
}
