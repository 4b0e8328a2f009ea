package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must contain at least %s item(s)",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
}

// TagsWithParams lists validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"oneof": true,
}
