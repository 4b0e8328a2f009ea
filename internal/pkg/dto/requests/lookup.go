package requests

// LookupRequest is the decoded inbound lookup body. Mrns holds the parsed
// comma delimited list.
type LookupRequest struct {
	Action string   `json:"action" validate:"oneof=validate demographics"`
	Mrns   []string `json:"mrns" validate:"min=1"`
	Secret string   `json:"-"`
}
