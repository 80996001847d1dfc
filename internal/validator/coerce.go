// ABOUTME: Default handling for scalar option values
// ABOUTME: Keeps explicit false and zero instead of treating them as unset
package validator

// BoolDefaultTrue returns v when it is a bool and true for anything else.
func BoolDefaultTrue(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// NumberOrDefault returns v as a float64 when it holds any Go numeric type,
// zero included. Any other value yields def.
func NumberOrDefault(v any, def float64) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case uintptr:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return def
}
