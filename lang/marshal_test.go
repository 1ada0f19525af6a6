package lang

import (
	"testing"

	"github.com/paulchernoch/shy/lang/value"
)

func TestToJSON_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want any
	}{
		{"integer", value.NewInteger(42), int64(42)},
		{"rational", value.NewRational(1.5), 1.5},
		{"string", value.NewString("x"), "x"},
		{"bool", value.NewBool(true), true},
		{"null", value.NullValue, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJSON(tt.v); got != tt.want {
				t.Errorf("ToJSON(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestToJSON_List(t *testing.T) {
	v := value.NewList(value.NewInteger(1), value.NewInteger(2))

	got, ok := ToJSON(v).([]any)
	if !ok {
		t.Fatalf("ToJSON(list) = %T, want []any", ToJSON(v))
	}

	if len(got) != 2 || got[0] != int64(1) || got[1] != int64(2) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestToJSON_ListDropsFunctionRef(t *testing.T) {
	v := value.NewList(value.NewInteger(1), value.NewFunctionRef("sin"), value.NewInteger(2))

	got, ok := ToJSON(v).([]any)
	if !ok {
		t.Fatalf("ToJSON(list) = %T, want []any", ToJSON(v))
	}

	if len(got) != 2 {
		t.Errorf("got %v, want 2 elements (FunctionRef dropped)", got)
	}
}

func TestToJSON_Object(t *testing.T) {
	obj := NewObjectFromMap(map[string]value.Value{
		"a": value.NewInteger(1),
		"b": value.NewString("x"),
	}, []string{"a", "b"})

	got, ok := ToJSON(obj).(map[string]any)
	if !ok {
		t.Fatalf("ToJSON(object) = %T, want map[string]any", ToJSON(obj))
	}

	if got["a"] != int64(1) || got["b"] != "x" {
		t.Errorf("got %v, want a=1 b=x", got)
	}
}

func TestToJSON_Error(t *testing.T) {
	v := value.NewError(value.DivideByZero, "division by zero")

	got, ok := ToJSON(v).(map[string]any)
	if !ok {
		t.Fatalf("ToJSON(error) = %T, want map[string]any", ToJSON(v))
	}

	if got["error"] != "DivideByZero" || got["message"] != "division by zero" {
		t.Errorf("got %v, want error=DivideByZero message=\"division by zero\"", got)
	}
}

func TestMarshalJSON_RoundTrips(t *testing.T) {
	v := value.NewInteger(7)

	data, err := MarshalJSON(v)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	got, err := UnmarshalJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}

	if got.Int() != 7 {
		t.Errorf("got %v, want 7", got)
	}
}

func TestFromJSON_Object(t *testing.T) {
	v := FromJSON(map[string]any{"x": float64(3)})

	if v.Kind != value.Object {
		t.Fatalf("got kind %v, want Object", v.Kind)
	}

	inner, ok := v.Object().Get("x")
	if !ok || inner.Int() != 3 {
		t.Errorf("got %v, want x=3", inner)
	}
}

func TestFromJSON_IntegerVsRational(t *testing.T) {
	if got := FromJSON(float64(3)); got.Kind != value.Integer {
		t.Errorf("FromJSON(3.0) kind = %v, want Integer", got.Kind)
	}

	if got := FromJSON(float64(3.5)); got.Kind != value.Rational {
		t.Errorf("FromJSON(3.5) kind = %v, want Rational", got.Kind)
	}
}

func TestUnmarshalJSON_InvalidJSON(t *testing.T) {
	_, err := UnmarshalJSON([]byte("{not json"))
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}
