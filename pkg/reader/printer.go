package reader

import (
	"strings"

	"github.com/malcore/golisp/pkg/types"
)

// PrStr renders a form as text. In readable mode strings are quoted and
// escaped (the form round-trips through Read); in display mode strings are
// rendered as their raw contents.
func PrStr(v types.Value, readable bool) string {
	switch v := v.(type) {
	case types.StringValue:
		if readable {
			return v.String()
		}
		return v.DisplayString()
	case *types.ListValue:
		return "(" + prStrSeq(v.Items, readable) + ")"
	case *types.VectorValue:
		return "[" + prStrSeq(v.Items, readable) + "]"
	case *types.MapValue:
		parts := make([]string, 0, len(v.Keys)*2)
		for _, k := range v.Keys {
			val, _ := v.Get(k)
			parts = append(parts, PrStr(k, readable), PrStr(val, readable))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case *types.AtomValue:
		return "(atom " + PrStr(v.Deref(), readable) + ")"
	default:
		return v.String()
	}
}

func prStrSeq(items []types.Value, readable bool) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = PrStr(it, readable)
	}
	return strings.Join(parts, " ")
}
