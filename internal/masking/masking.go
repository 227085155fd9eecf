// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package masking redacts sensitive metadata of decrypted case records.
//
// [MaskedRecord] can only be produced by [Apply], so any code that accepts a
// MaskedRecord is guaranteed to see masked data.
package masking

import (
	"encoding/json"
	"maps"
	"strconv"

	"github.com/MKhiriev/go-case-vault/models"
)

// MetadataField is the record key whose object value is subject to masking.
const MetadataField = "metadata"

// Rule replaces the value of Field inside metadata with Replacement.
type Rule struct {
	Field       string
	Replacement string
}

// Policy is the ordered set of masking rules.
type Policy []Rule

// DefaultPolicy masks the patient name and age.
var DefaultPolicy = Policy{
	{Field: "age", Replacement: "##"},
	{Field: "name", Replacement: "REDACTED"},
}

// MaskedRecord is a decrypted record after masking. The zero value is an
// empty record.
//
// A document that is not a JSON object has nothing to mask and is held as
// is; Fields, Get and Len then see no fields.
type MaskedRecord struct {
	fields models.DecryptedRecord

	opaque bool
	value  any
}

// Apply masks record with [DefaultPolicy].
func Apply(record models.DecryptedRecord) MaskedRecord {
	return ApplyPolicy(record, DefaultPolicy)
}

// ApplyDocument masks doc with policy. Arrays, scalars and null pass
// through unchanged.
func ApplyDocument(doc models.DecryptedDocument, policy Policy) MaskedRecord {
	if doc.IsObject() {
		return ApplyPolicy(doc.Object, policy)
	}
	return MaskedRecord{opaque: true, value: cloneJSON(doc.Value)}
}

// ApplyPolicy returns a masked copy of record.
//
// If record has no truthy "metadata" object the result holds a shallow copy
// of record as is. Otherwise metadata is shallow-copied and every rule whose
// field is present with a truthy value is applied. record itself is never
// modified and applying a policy twice gives the same result as applying it
// once.
func ApplyPolicy(record models.DecryptedRecord, policy Policy) MaskedRecord {
	out := maps.Clone(record)
	if out == nil {
		out = models.DecryptedRecord{}
	}

	meta, ok := asObject(record[MetadataField])
	if !ok {
		return MaskedRecord{fields: out}
	}

	masked := maps.Clone(meta)
	for _, rule := range policy {
		if v, present := masked[rule.Field]; present && truthy(v) {
			masked[rule.Field] = rule.Replacement
		}
	}
	out[MetadataField] = masked

	return MaskedRecord{fields: out}
}

// Fields returns a shallow copy of the masked record.
func (m MaskedRecord) Fields() models.DecryptedRecord {
	out := maps.Clone(m.fields)
	if out == nil {
		out = models.DecryptedRecord{}
	}
	return out
}

// IsObject reports whether the masked document is a JSON object.
func (m MaskedRecord) IsObject() bool {
	return !m.opaque
}

// Value returns a copy of the masked document: a [models.DecryptedRecord]
// for objects, the plain JSON value otherwise.
func (m MaskedRecord) Value() any {
	if m.opaque {
		return cloneJSON(m.value)
	}
	return m.Fields()
}

// Get returns the top-level value stored under key.
func (m MaskedRecord) Get(key string) (any, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// Len returns the number of top-level fields.
func (m MaskedRecord) Len() int {
	return len(m.fields)
}

// MarshalJSON encodes the masked fields.
func (m MaskedRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Value())
}

// Indent renders the masked record as indented JSON for display.
func (m MaskedRecord) Indent() (string, error) {
	b, err := json.MarshalIndent(m.Value(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// cloneJSON deep-copies the containers of a decoded JSON value.
func cloneJSON(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, x := range val {
			out[k] = cloneJSON(x)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, x := range val {
			out[i] = cloneJSON(x)
		}
		return out
	default:
		return v
	}
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, obj != nil
	case models.DecryptedRecord:
		return obj, obj != nil
	default:
		return nil, false
	}
}

// truthy follows JavaScript truthiness for JSON values.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(val), 64)
		return err != nil || f != 0
	case float64:
		return val != 0
	case float32:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		return true
	}
}
