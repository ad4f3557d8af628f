package pricing

import "encoding/json"

// Keys recognised by InputFromValues.
const (
	KeyDistance = "distance"
	KeySize     = "size"
	KeyFragile  = "is_fragile"
	KeyWorkload = "k_workload"
)

// InputFromValues converts loosely typed values, such as a decoded JSON object,
// into an Input. Missing keys and values of the wrong type leave the field absent so
// that validation reports the matching error kind. Fragility accepts only a real bool.
func InputFromValues(values map[string]any) Input {
	var in Input
	if f, ok := toF64(values[KeyDistance]); ok {
		in.Distance = &f
	}
	switch v := values[KeySize].(type) {
	case Size:
		in.Size = &v
	case string:
		s := Size(v)
		in.Size = &s
	}
	if v, ok := values[KeyFragile].(bool); ok {
		in.Fragile = &v
	}
	switch v := values[KeyWorkload].(type) {
	case Workload:
		in.Workload = &v
	default:
		if f, ok := toF64(v); ok {
			w := Workload(f)
			in.Workload = &w
		}
	}
	return in
}

// CalculateValues is Calculate over loosely typed values.
func CalculateValues(values map[string]any) (Money, error) {
	return Calculate(InputFromValues(values))
}

func toF64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
