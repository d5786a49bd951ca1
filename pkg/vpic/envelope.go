package vpic

import (
	"encoding/json"

	"github.com/vehiclekit/vpic/pkg/errors"
)

// shape tags how an endpoint lays out its Results list. The tag is
// resolved per operation at the client boundary so nothing downstream
// branches on response layout.
type shape int

const (
	// shapeList is a list of flat objects, one per result row.
	shapeList shape = iota
	// shapePairs is a list of {"Variable": name, "Value": value}
	// objects describing a single decoded vehicle, optionally tagged
	// with a batch position when several vehicles share one response.
	shapePairs
)

// envelope is the wrapper every vPIC payload arrives in. It is a
// transient parse target, unwrapped before records reach the caller.
type envelope struct {
	Count   int             `json:"Count"`
	Message string          `json:"Message"`
	Results json.RawMessage `json:"Results"`
}

// pair-shape field spellings, fixed by the upstream API.
const (
	pairVariableKey  = "Variable"
	pairValueKey     = "Value"
	batchPositionKey = "BatchPosition"
)

// unwrap parses the response envelope and unifies Results into flat
// records according to the endpoint's shape. Structural surprises in
// the payload surface as MappingError with the offending row attached.
func unwrap(body []byte, s shape) ([]*Record, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &errors.MappingError{Message: "response is not a vPIC envelope", Cause: err}
	}
	if env.Results == nil {
		return nil, errors.NewMapping(nil, "response envelope has no Results")
	}
	rows, err := decodeRecords(env.Results)
	if err != nil {
		return nil, &errors.MappingError{Message: "Results is not a list of objects", Cause: err}
	}
	if s == shapeList {
		return rows, nil
	}
	return pivotPairs(rows)
}

// pivotPairs converts Variable/Value rows into flat records. Rows are
// partitioned by batch position first, preserving the order in which
// each position first appears, so batch results come back in submitted
// order. Rows that are already flat (no Variable key) pass through as
// their own record.
func pivotPairs(rows []*Record) ([]*Record, error) {
	var out []*Record
	groups := make(map[string]*Record)
	for _, row := range rows {
		name, hasVar := row.Get(pairVariableKey)
		if !hasVar {
			if _, hasVal := row.Get(pairValueKey); hasVal {
				return nil, errors.NewMapping(row.Map(), "pair row has Value but no Variable")
			}
			out = append(out, row)
			continue
		}
		varName, ok := name.(string)
		if !ok || varName == "" {
			return nil, errors.NewMapping(row.Map(), "pair row has a non-string Variable name")
		}
		pos := row.String(batchPositionKey)
		rec, seen := groups[pos]
		if !seen {
			rec = NewRecord()
			groups[pos] = rec
			out = append(out, rec)
		}
		value, _ := row.Get(pairValueKey)
		rec.Set(varName, value)
	}
	return out, nil
}
