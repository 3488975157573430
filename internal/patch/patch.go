// Package patch implements sparse three-state update documents: for any
// field name, a document either omits it, sets it to null, or carries a
// concrete value. The distinction is preserved from the wire format.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kharvol/tms/internal/errs"
)

// Document is an unordered mapping from field name to a raw JSON value.
// A key that is missing means "leave the field alone"; an explicit null
// (or the literal text "null") means "clear the field"; anything else is
// a value to apply.
type Document map[string]json.RawMessage

// Parse decodes a JSON object into a Document.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse patch document: %w", err)
	}
	return doc, nil
}

// Fields returns the field names present in the document, sorted for
// deterministic iteration.
func (d Document) Fields() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the document mentions the field at all.
func (d Document) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// IsNull reports whether the field is present and explicitly cleared.
// A JSON null and the literal string "null" both count: clients behind
// type-erasing wire formats send the text form.
func (d Document) IsNull(name string) bool {
	raw, ok := d[name]
	if !ok {
		return false
	}
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s == "null" {
		return true
	}
	return false
}

// Decode unmarshals the document's valued fields into dst. Absent and
// null fields stay at their zero value on dst, so a struct with pointer
// fields comes back sparse; null-clearing is the merger's job, not ours.
func (d Document) Decode(dst any) error {
	valued := make(Document, len(d))
	for name, raw := range d {
		if d.IsNull(name) {
			continue
		}
		valued[name] = raw
	}
	data, err := json.Marshal(valued)
	if err != nil {
		return err
	}
	// a value the target field cannot decode is the caller's fault
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrMalformedPatch, err)
	}
	return nil
}
