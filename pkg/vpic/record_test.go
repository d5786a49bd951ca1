package vpic

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordPreservesKeyOrder(t *testing.T) {
	input := `{"MakeId":441,"MakeName":"TESLA","Country":null,"VehicleTypes":[{"IsPrimary":true,"Name":"Passenger Car"}]}`

	rec := NewRecord()
	if err := rec.UnmarshalJSON([]byte(input)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	want := []string{"MakeId", "MakeName", "Country", "VehicleTypes"}
	if !reflect.DeepEqual(rec.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", rec.Keys(), want)
	}
}

func TestRecordMarshalRoundTrip(t *testing.T) {
	input := `{"b":"2","a":"1","c":"3"}`
	rec := NewRecord()
	if err := rec.UnmarshalJSON([]byte(input)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != input {
		t.Errorf("Marshal = %s, want %s (source order)", out, input)
	}
}

func TestRecordString(t *testing.T) {
	rec := NewRecord()
	rec.Set("make", "  FORD  ")
	rec.Set("make_id", json.Number("460"))
	rec.Set("series", nil)
	rec.Set("is_primary", true)

	tests := []struct {
		key  string
		want string
	}{
		{"make", "FORD"},
		{"make_id", "460"},
		{"series", ""},
		{"is_primary", "true"},
		{"absent", ""},
	}
	for _, tt := range tests {
		if got := rec.String(tt.key); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRecordInt(t *testing.T) {
	rec := NewRecord()
	rec.Set("id", json.Number("987"))
	rec.Set("name", "HONDA")
	rec.Set("empty", "")
	rec.Set("null", nil)

	if got := rec.Int("id"); got == nil || *got != 987 {
		t.Errorf("Int(id) = %v, want 987", got)
	}
	for _, key := range []string{"name", "empty", "null", "absent"} {
		if got := rec.Int(key); got != nil {
			t.Errorf("Int(%q) = %v, want nil", key, *got)
		}
	}
}

func TestRecordSetKeepsFirstPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "3")

	if !reflect.DeepEqual(rec.Keys(), []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", rec.Keys())
	}
	if got := rec.String("a"); got != "3" {
		t.Errorf("String(a) = %q, want updated value", got)
	}
}

func TestRecordZeroValueSet(t *testing.T) {
	var rec Record
	rec.Set("make", "FORD")

	if got := rec.String("make"); got != "FORD" {
		t.Errorf("String(make) = %q, want FORD", got)
	}
	if !reflect.DeepEqual(rec.Keys(), []string{"make"}) {
		t.Errorf("Keys() = %v, want [make]", rec.Keys())
	}
}

func TestRecordMapConvertsNested(t *testing.T) {
	nested := NewRecord()
	nested.Set("Name", "Truck")
	rec := NewRecord()
	rec.Set("vehicle_types", []any{nested})

	m := rec.Map()
	list, ok := m["vehicle_types"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("vehicle_types = %v, want one-element list", m["vehicle_types"])
	}
	if _, ok := list[0].(map[string]any); !ok {
		t.Errorf("nested value = %T, want map[string]any", list[0])
	}
}
