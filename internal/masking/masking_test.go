// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package masking

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-case-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDoe() models.DecryptedRecord {
	return models.DecryptedRecord{
		"metadata":  map[string]any{"name": "Jane Doe", "age": json.Number("42")},
		"diagnosis": "X",
	}
}

func TestApply_JaneDoeScenario(t *testing.T) {
	got := Apply(janeDoe())

	assert.Equal(t, models.DecryptedRecord{
		"metadata":  map[string]any{"name": "REDACTED", "age": "##"},
		"diagnosis": "X",
	}, got.Fields())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := janeDoe()
	meta := in["metadata"].(map[string]any)

	_ = Apply(in)

	assert.Equal(t, janeDoe(), in)
	assert.Equal(t, "Jane Doe", meta["name"])
	assert.Equal(t, json.Number("42"), meta["age"])
}

func TestApply_Idempotent(t *testing.T) {
	once := Apply(janeDoe())
	twice := Apply(once.Fields())

	assert.Equal(t, once.Fields(), twice.Fields())
}

func TestApply_PreservesOtherFields(t *testing.T) {
	in := models.DecryptedRecord{
		"metadata": map[string]any{
			"name":     "John",
			"hospital": "hospital_a",
			"mrn":      json.Number("123"),
		},
		"notes":  []any{"a", "b"},
		"vitals": map[string]any{"hr": json.Number("70")},
	}

	got := Apply(in).Fields()

	meta := got["metadata"].(map[string]any)
	assert.Equal(t, "REDACTED", meta["name"])
	assert.Equal(t, "hospital_a", meta["hospital"])
	assert.Equal(t, json.Number("123"), meta["mrn"])
	_, hasAge := meta["age"]
	assert.False(t, hasAge, "absent fields must not be introduced")
	assert.Equal(t, in["notes"], got["notes"])
	assert.Equal(t, in["vitals"], got["vitals"])
}

func TestApply_FalsyValuesPassThrough(t *testing.T) {
	tests := []struct {
		name string
		age  any
		want any
	}{
		{name: "nil", age: nil, want: nil},
		{name: "zero number", age: json.Number("0"), want: json.Number("0")},
		{name: "zero float", age: json.Number("0.0"), want: json.Number("0.0")},
		{name: "empty string", age: "", want: ""},
		{name: "false", age: false, want: false},
		{name: "float64 zero", age: float64(0), want: float64(0)},
		{name: "true", age: true, want: "##"},
		{name: "non-empty string", age: "unknown", want: "##"},
		{name: "negative", age: json.Number("-1"), want: "##"},
		{name: "empty object", age: map[string]any{}, want: "##"},
		{name: "empty array", age: []any{}, want: "##"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(models.DecryptedRecord{"metadata": map[string]any{"age": tt.age}}).Fields()
			assert.Equal(t, tt.want, got["metadata"].(map[string]any)["age"])
		})
	}
}

func TestApply_NoMetadata(t *testing.T) {
	in := models.DecryptedRecord{"diagnosis": "X", "name": "top-level is not masked"}

	got := Apply(in)

	assert.Equal(t, in, got.Fields())
}

func TestApply_NonObjectMetadataPassesThrough(t *testing.T) {
	for _, meta := range []any{nil, "Jane Doe", json.Number("42"), []any{"Jane Doe"}, false} {
		in := models.DecryptedRecord{"metadata": meta}
		assert.Equal(t, in, Apply(in).Fields())
	}
}

func TestApply_NilRecord(t *testing.T) {
	got := Apply(nil)

	assert.Equal(t, 0, got.Len())
	assert.NotNil(t, got.Fields())
}

func TestApplyPolicy_CustomRules(t *testing.T) {
	policy := Policy{{Field: "mrn", Replacement: "***"}}

	got := ApplyPolicy(janeDoe(), policy).Fields()

	meta := got["metadata"].(map[string]any)
	assert.Equal(t, "Jane Doe", meta["name"])
	assert.Equal(t, json.Number("42"), meta["age"])
}

func TestMaskedRecord_FieldsIsACopy(t *testing.T) {
	m := Apply(janeDoe())

	f := m.Fields()
	f["diagnosis"] = "changed"
	delete(f, "metadata")

	v, ok := m.Get("diagnosis")
	require.True(t, ok)
	assert.Equal(t, "X", v)
	assert.Equal(t, 2, m.Len())
}

func TestMaskedRecord_JSON(t *testing.T) {
	b, err := json.Marshal(Apply(janeDoe()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"name":"REDACTED","age":"##"},"diagnosis":"X"}`, string(b))

	s, err := Apply(janeDoe()).Indent()
	require.NoError(t, err)
	assert.Contains(t, s, `"name": "REDACTED"`)
	assert.NotContains(t, s, "Jane Doe")
}

func TestMaskedRecord_ZeroValue(t *testing.T) {
	var m MaskedRecord

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

// ── non-object documents ────────────────────────────────────────────────────

func TestApplyDocument_Object(t *testing.T) {
	got := ApplyDocument(models.DecryptedDocument{Object: janeDoe()}, DefaultPolicy)

	assert.True(t, got.IsObject())
	assert.Equal(t, Apply(janeDoe()).Fields(), got.Fields())
}

func TestApplyDocument_NonObjectPassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "array with metadata", value: []any{map[string]any{"metadata": map[string]any{"name": "x"}}}, want: `[{"metadata":{"name":"x"}}]`},
		{name: "string", value: "Jane Doe", want: `"Jane Doe"`},
		{name: "number", value: json.Number("42"), want: `42`},
		{name: "null", value: nil, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDocument(models.DecryptedDocument{Value: tt.value}, DefaultPolicy)

			assert.False(t, got.IsObject())
			assert.Equal(t, 0, got.Len())
			assert.Equal(t, tt.value, got.Value())

			raw, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestApplyDocument_DoesNotShareInput(t *testing.T) {
	inner := map[string]any{"name": "x"}
	in := []any{inner}

	got := ApplyDocument(models.DecryptedDocument{Value: in}, DefaultPolicy)
	inner["name"] = "changed"

	assert.Equal(t, []any{map[string]any{"name": "x"}}, got.Value())
}
