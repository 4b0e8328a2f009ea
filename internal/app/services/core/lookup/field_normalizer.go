package lookup

import "mrn-validator-service/internal/app/models"

// BuildResult resolves one requested MRN against the re-keyed batch. Demographic
// fields are copied in mapping order only when wantDemographics is set and the
// MRN is present; a source field missing from the record yields a nil value.
func BuildResult(mrn string, batch models.DemographicsBatch, wantDemographics bool, mapping models.FieldMapping) models.SubjectResult {
	record, valid := batch[mrn]
	result := models.SubjectResult{
		Mrn:   mrn,
		Valid: valid,
	}
	if !valid || !wantDemographics {
		return result
	}

	entries := mapping.Entries()
	result.Demographics = make([]models.DemographicsField, 0, len(entries))
	for _, entry := range entries {
		result.Demographics = append(result.Demographics, models.DemographicsField{
			Name:  entry.Target,
			Value: record[entry.Source],
		})
	}
	return result
}
