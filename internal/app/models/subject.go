package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// DemographicsField is one normalized output attribute. A nil Value is
// serialized as JSON null.
type DemographicsField struct {
	Name  string
	Value interface{}
}

// SubjectResult is the per-MRN lookup outcome.
type SubjectResult struct {
	Mrn          string
	Valid        bool
	Demographics []DemographicsField
}

func (s SubjectResult) HasDemographics() bool {
	return len(s.Demographics) > 0
}

// DemographicsMap returns the normalized attributes keyed by output name.
func (s SubjectResult) DemographicsMap() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Demographics))
	for _, field := range s.Demographics {
		out[field.Name] = field.Value
	}
	return out
}

// MarshalJSON writes mrn and valid first, followed by the demographic fields
// in mapping order. A demographic field named mrn overrides the leading one,
// so it is written only once.
func (s SubjectResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	mrn := interface{}(s.Mrn)
	for _, field := range s.Demographics {
		if field.Name == "mrn" {
			mrn = field.Value
		}
	}
	if err := writeMember(&buf, "mrn", mrn, true); err != nil {
		return nil, err
	}
	if err := writeMember(&buf, "valid", s.Valid, false); err != nil {
		return nil, err
	}
	for _, field := range s.Demographics {
		if field.Name == "mrn" || field.Name == "valid" {
			continue
		}
		if err := writeMember(&buf, field.Name, field.Value, false); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, name string, value interface{}, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

// LookupResponse maps requested MRNs to their results. Keys keep the
// position of their first occurrence; a repeated MRN overwrites the value.
type LookupResponse struct {
	keys    []string
	results map[string]SubjectResult
}

func NewLookupResponse(capacity int) *LookupResponse {
	return &LookupResponse{
		keys:    make([]string, 0, capacity),
		results: make(map[string]SubjectResult, capacity),
	}
}

func (r *LookupResponse) Set(mrn string, result SubjectResult) {
	if _, exists := r.results[mrn]; !exists {
		r.keys = append(r.keys, mrn)
	}
	r.results[mrn] = result
}

func (r *LookupResponse) Get(mrn string) (SubjectResult, bool) {
	result, ok := r.results[mrn]
	return result, ok
}

func (r *LookupResponse) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *LookupResponse) Len() int {
	return len(r.keys)
}

// ValidCount returns how many distinct MRNs resolved as valid.
func (r *LookupResponse) ValidCount() int {
	count := 0
	for _, result := range r.results {
		if result.Valid {
			count++
		}
	}
	return count
}

func (r *LookupResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mrn := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mrn)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.results[mrn])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
