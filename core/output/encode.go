package output

import (
	"bytes"
	"encoding/json"
)

// Encode renders value as compact JSON without HTML escaping and without a
// trailing newline. Go maps are written with sorted keys and document nodes
// keep their own key order, so equal input always yields identical bytes.
func Encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
