package constvars

const (
	LookupActionValidate     = "validate"
	LookupActionDemographics = "demographics"
)

// MrnListSeparator separates MRNs in the inbound `mrns` field.
const MrnListSeparator = ","

const (
	LookupFieldAction = "action"
	LookupFieldMrns   = "mrns"
	LookupFieldSecret = "secret"
)

const (
	DemographicsFieldMrn    = "mrn"
	DemographicsFieldValid  = "valid"
	DemographicsFieldResult = "result"
)
