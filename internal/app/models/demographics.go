package models

// DemographicsRecord is one raw element of the downstream batch response,
// keyed by source field name.
type DemographicsRecord map[string]interface{}

// Mrn returns the record's mrn field when it is a string.
func (r DemographicsRecord) Mrn() (string, bool) {
	mrn, ok := r["mrn"].(string)
	return mrn, ok
}

// DemographicsBatch is the downstream response re-keyed by MRN.
type DemographicsBatch map[string]DemographicsRecord

func (b DemographicsBatch) Contains(mrn string) bool {
	_, ok := b[mrn]
	return ok
}

// DemographicsBatchResponse is the wire shape returned by the demographics API.
// A nil Result means the field was absent or null.
type DemographicsBatchResponse struct {
	Result *[]DemographicsRecord `json:"result"`
}

// DemographicsBatchRequest is the wire shape sent to the demographics API.
type DemographicsBatchRequest struct {
	Mrns []string `json:"mrns"`
}
