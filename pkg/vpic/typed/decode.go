package typed

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/vehiclekit/vpic/pkg/errors"
	"github.com/vehiclekit/vpic/pkg/vpic"
)

// decodeRecord populates out from a normalized record. Optional-field
// coercion never fails: empty or non-numeric values collapse to the
// field's documented default. The one hard requirement is requiredKey,
// the record's identity field; when it is missing the record cannot
// mean anything and the caller gets a MappingError with the record
// attached.
func decodeRecord(rec *vpic.Record, requiredKey string, out any) error {
	if requiredKey != "" && rec.String(requiredKey) == "" {
		return errors.NewMapping(rec.Map(), "record is missing required field %q", requiredKey)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		DecodeHook: coerceHook,
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "building decoder")
	}
	if err := dec.Decode(rec.Map()); err != nil {
		return &errors.MappingError{Message: "decoding record", Record: rec.Map(), Cause: err}
	}
	return nil
}

func decodeRecords[T any](records []*vpic.Record, requiredKey string) ([]*T, error) {
	out := make([]*T, 0, len(records))
	for _, rec := range records {
		item := new(T)
		if err := decodeRecord(rec, requiredKey, item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// coerceHook adapts the all-strings upstream values to the target
// field types:
//
//   - string fields: trim whitespace, nil becomes ""
//   - int fields: parse, empty or non-numeric becomes 0
//   - *int fields: parse, empty or non-numeric becomes nil
//   - *bool fields: parse, anything unparseable becomes nil
func coerceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if n, ok := data.(json.Number); ok {
		data = n.String()
	}
	s, isString := data.(string)
	if isString {
		s = strings.TrimSpace(s)
	}

	switch to.Kind() {
	case reflect.String:
		if data == nil {
			return "", nil
		}
		if isString {
			return s, nil
		}
	case reflect.Int:
		if data == nil {
			return 0, nil
		}
		if isString {
			n, err := strconv.Atoi(s)
			if err != nil {
				return 0, nil
			}
			return n, nil
		}
	case reflect.Pointer:
		if data == nil {
			return nil, nil
		}
		if !isString {
			return data, nil
		}
		switch to.Elem().Kind() {
		case reflect.Int:
			n, err := strconv.Atoi(s)
			if err != nil {
				return (*int)(nil), nil
			}
			return &n, nil
		case reflect.Bool:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return (*bool)(nil), nil
			}
			return &b, nil
		}
	case reflect.Bool:
		if isString {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return false, nil
			}
			return b, nil
		}
	}
	if isString {
		return s, nil
	}
	return data, nil
}
