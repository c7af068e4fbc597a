package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Row is one record as served by the dashboard. Keys keeps the field order
// of the server's JSON so tables can use the first row as their header.
type Row struct {
	Keys   []string
	Values map[string]any
}

func (r *Row) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("row is not a JSON object")
	}

	r.Keys = r.Keys[:0]
	r.Values = make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}

		if _, seen := r.Values[key]; !seen {
			r.Keys = append(r.Keys, key)
		}
		r.Values[key] = v
	}

	_, err = dec.Token()
	return err
}

// Text renders field name the way the dashboard page does: null and missing
// become "", objects and arrays are shown as JSON.
func (r Row) Text(name string) string {
	v, ok := r.Values[name]
	if !ok || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case map[string]any, []any:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(b)
	default:
		return fmt.Sprint(value)
	}
}
