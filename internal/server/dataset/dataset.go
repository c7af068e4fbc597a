// Package dataset parses the STUDENT_DATA payload once at boot and holds the
// resulting records for the lifetime of the process.
//
// A Dataset is immutable after Parse returns: there are no mutating methods,
// and Slice hands out a copy of the requested window, so it may be shared by
// any number of request goroutines without locking.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyInput = errors.New("dataset is empty")
	ErrNotArray   = errors.New("dataset must be a JSON array")
)

// Record is one dataset entry. It keeps the original encoded object so the
// API can re-emit fields in their input order, next to a decoded view used
// for lookups.
type Record struct {
	raw    json.RawMessage
	fields map[string]any
}

// decodeRecord keeps numbers as json.Number so values outside float64 range
// still load; only the raw bytes are ever sent back out.
func decodeRecord(raw json.RawMessage) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Record{}, err
	}
	if fields == nil {
		return Record{}, errors.New("null is not an object")
	}
	return Record{raw: raw, fields: fields}, nil
}

// Field returns the decoded value stored under name and whether the field is
// present at all. A present field may still hold nil (JSON null); numbers
// come back as json.Number.
func (r Record) Field(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// MarshalJSON returns the record exactly as it appeared in the input.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return []byte("{}"), nil
	}
	return r.raw, nil
}

// Dataset is the ordered, read-only sequence of records.
type Dataset struct {
	records []Record
}

// Parse decodes raw as a JSON array of objects. Any other top-level value,
// trailing garbage, or a non-object element is rejected with a descriptive
// error.
func Parse(raw string) (*Dataset, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value starts with %q", ErrNotArray, trimmed[0])
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if rest := bytes.TrimSpace(trimmed[dec.InputOffset():]); len(rest) > 0 {
		return nil, errors.New("decoding dataset: unexpected data after top-level array")
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d is not a JSON object: %w", i, err)
		}
		records = append(records, rec)
	}

	return &Dataset{records: records}, nil
}

// Len reports the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Slice returns a copy of records[from:to], clipped to the dataset bounds.
// Out-of-range or inverted windows yield an empty, non-nil slice.
func (d *Dataset) Slice(from, to int) []Record {
	n := len(d.records)
	from = max(from, 0)
	to = min(to, n)
	if from >= to {
		return []Record{}
	}

	out := make([]Record, to-from)
	copy(out, d.records[from:to])
	return out
}

// Each calls fn for every record in order.
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}
