package models

// ValidationError reports a rejected field on checkout or catalog writes.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Field + " " + e.Reason
}

// Missing builds the common "required field absent" case.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
