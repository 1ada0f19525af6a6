package lang

import (
	"encoding/json"

	"github.com/paulchernoch/shy/lang/value"
)

// ToJSON converts v into a generic JSON-like tree (map[string]any, []any,
// string, float64/int64, bool, nil) per spec section 6's lossless
// Value<->JSON mapping: Integer/Rational->number, String->string,
// Bool->bool, List->array, Object->object, Null->nil, Error->
// {"error": kind, "message": text}. A top-level FunctionRef has no JSON
// representation and converts to nil; inside a List or Object it is
// skipped entirely (element dropped, key omitted) rather than emitted as
// null, since a FunctionRef is a context-local handle, not data.
func ToJSON(v value.Value) any {
	switch v.Kind {
	case value.Integer:
		return v.Int()
	case value.Rational:
		return v.Float()
	case value.String:
		return v.Str()
	case value.Bool:
		return v.Bool()
	case value.Null:
		return nil
	case value.List:
		out := make([]any, 0, len(v.List()))

		for _, e := range v.List() {
			if e.Kind == value.FunctionRef {
				continue
			}

			out = append(out, ToJSON(e))
		}

		return out
	case value.Object:
		out := make(map[string]any)

		for _, k := range v.Object().Keys() {
			e, _ := v.Object().Get(k)
			if e.Kind == value.FunctionRef {
				continue
			}

			out[k] = ToJSON(e)
		}

		return out
	case value.Error:
		return map[string]any{
			"error":   v.ErrorKind().String(),
			"message": v.ErrorMessage(),
		}
	default:
		return nil
	}
}

// MarshalJSON renders v as JSON text via ToJSON.
func MarshalJSON(v value.Value) ([]byte, error) {
	return json.Marshal(ToJSON(v))
}

// FromJSON builds a Value from a generic JSON-decoded tree (the shape
// produced by encoding/json's default any-typed Unmarshal), the inverse of
// ToJSON for every case that has one (FunctionRef has none, so it never
// round-trips through JSON).
func FromJSON(data any) value.Value {
	switch t := data.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.NewBool(t)
	case string:
		return value.NewString(t)
	case float64:
		if i := int64(t); float64(i) == t {
			return value.NewInteger(i)
		}

		return value.NewRational(t)
	case int:
		return value.NewInteger(int64(t))
	case int64:
		return value.NewInteger(t)
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = FromJSON(e)
		}

		return value.NewList(elems...)
	case map[string]any:
		return NewObjectFromMap(fromJSONMap(t), nil)
	default:
		return value.NullValue
	}
}

func fromJSONMap(m map[string]any) map[string]value.Value {
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		out[k] = FromJSON(v)
	}

	return out
}

// UnmarshalJSON parses JSON text into a Value via FromJSON.
func UnmarshalJSON(data []byte) (value.Value, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return value.Value{}, WrapError(err)
	}

	return FromJSON(tree), nil
}
