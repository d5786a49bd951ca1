package typed

import (
	"encoding/json"
	"testing"

	"github.com/vehiclekit/vpic/pkg/errors"
	"github.com/vehiclekit/vpic/pkg/vpic"
)

func record(pairs ...[2]any) *vpic.Record {
	rec := vpic.NewRecord()
	for _, p := range pairs {
		rec.Set(p[0].(string), p[1])
	}
	return rec
}

func TestDecodeRecordFillsFields(t *testing.T) {
	rec := record(
		[2]any{"make_id", json.Number("441")},
		[2]any{"make", "  TESLA  "},
		[2]any{"manufacturer_id", "955"},
		[2]any{"manufacturer", "TESLA, INC."},
	)

	var m Make
	if err := decodeRecord(rec, "make_id", &m); err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if m.MakeID != 441 {
		t.Errorf("MakeID = %d, want 441", m.MakeID)
	}
	if m.Make != "TESLA" {
		t.Errorf("Make = %q, want trimmed", m.Make)
	}
	if m.ManufacturerID == nil || *m.ManufacturerID != 955 {
		t.Errorf("ManufacturerID = %v, want 955", m.ManufacturerID)
	}
}

func TestDecodeRecordOptionalDefaults(t *testing.T) {
	// Absent and unusable values collapse to each field type's default
	// instead of failing the decode.
	rec := record(
		[2]any{"make_id", "460"},
		[2]any{"manufacturer_id", ""},
		[2]any{"manufacturer", nil},
	)

	var m Make
	if err := decodeRecord(rec, "make_id", &m); err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if m.ManufacturerID != nil {
		t.Errorf("ManufacturerID = %v, want nil for empty value", *m.ManufacturerID)
	}
	if m.Manufacturer != "" {
		t.Errorf("Manufacturer = %q, want empty for null value", m.Manufacturer)
	}
	if m.VehicleTypeID != nil {
		t.Errorf("VehicleTypeID = %v, want nil for absent key", *m.VehicleTypeID)
	}
	if m.VehicleType != "" {
		t.Errorf("VehicleType = %q, want empty for absent key", m.VehicleType)
	}
}

func TestDecodeRecordCoercions(t *testing.T) {
	tests := []struct {
		name    string
		makeID  any
		primary any
		wantID  *int
		wantPri *bool
	}{
		{"numeric strings", "441", "true", intPtr(441), boolPtr(true)},
		{"non-numeric id", "Not Applicable", "false", nil, boolPtr(false)},
		{"unparseable bool", "1", "maybe", intPtr(1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(
				[2]any{"vehicle_type", "Passenger Car"},
				[2]any{"make_id", tt.makeID},
				[2]any{"is_primary", tt.primary},
			)
			var vt VehicleType
			if err := decodeRecord(rec, "vehicle_type", &vt); err != nil {
				t.Fatalf("decodeRecord: %v", err)
			}
			if !intPtrEq(vt.MakeID, tt.wantID) {
				t.Errorf("MakeID = %v, want %v", deref(vt.MakeID), deref(tt.wantID))
			}
			if !boolPtrEq(vt.IsPrimary, tt.wantPri) {
				t.Errorf("IsPrimary = %v, want %v", deref(vt.IsPrimary), deref(tt.wantPri))
			}
		})
	}
}

func TestDecodeRecordMissingRequiredField(t *testing.T) {
	rec := record([2]any{"make", "TESLA"})

	var m Make
	err := decodeRecord(rec, "make_id", &m)
	mErr, ok := errors.AsMapping(err)
	if !ok {
		t.Fatalf("err = %v, want MappingError", err)
	}
	if mErr.Record == nil || mErr.Record["make"] != "TESLA" {
		t.Errorf("Record = %v, want offending record attached", mErr.Record)
	}
}

func TestDecodeRecordsStopsAtFirstBadRecord(t *testing.T) {
	records := []*vpic.Record{
		record([2]any{"make_id", "440"}, [2]any{"make", "ASTON MARTIN"}),
		record([2]any{"make", "no id"}),
	}
	if _, err := decodeRecords[Make](records, "make_id"); !errors.IsMapping(err) {
		t.Errorf("err = %v, want mapping error", err)
	}
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolPtrEq(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p any) any {
	switch v := p.(type) {
	case *int:
		if v != nil {
			return *v
		}
	case *bool:
		if v != nil {
			return *v
		}
	}
	return nil
}
