package models

// FieldMappingEntry maps one downstream source field onto an output field.
type FieldMappingEntry struct {
	Source string
	Target string
}

// FieldMapping is an ordered, read-only table of source to output field names.
// Entry order defines the order of demographic fields in the serialized output.
type FieldMapping struct {
	entries []FieldMappingEntry
}

func NewFieldMapping(entries ...FieldMappingEntry) FieldMapping {
	copied := make([]FieldMappingEntry, len(entries))
	copy(copied, entries)
	return FieldMapping{entries: copied}
}

// DefaultFieldMapping is the canonical mapping from the identity source's
// field names to the fields returned to callers.
func DefaultFieldMapping() FieldMapping {
	return NewFieldMapping(
		FieldMappingEntry{Source: "mrn", Target: "mrn"},
		FieldMappingEntry{Source: "birthDate", Target: "birthDate"},
		FieldMappingEntry{Source: "firstName", Target: "firstName"},
		FieldMappingEntry{Source: "lastName", Target: "lastName"},
		FieldMappingEntry{Source: "gender", Target: "gender"},
		FieldMappingEntry{Source: "canonicalEthnicity", Target: "ethnicity"},
		FieldMappingEntry{Source: "canonicalRace", Target: "race"},
	)
}

// Entries returns a copy of the mapping entries in canonical order.
func (m FieldMapping) Entries() []FieldMappingEntry {
	copied := make([]FieldMappingEntry, len(m.entries))
	copy(copied, m.entries)
	return copied
}

func (m FieldMapping) Len() int {
	return len(m.entries)
}

// Targets returns the output field names in canonical order.
func (m FieldMapping) Targets() []string {
	targets := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		targets = append(targets, entry.Target)
	}
	return targets
}
