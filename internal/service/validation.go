package service

// ValidationError reports malformed or missing input, field by field. Each
// field maps to one or more human-readable messages, mirroring the shape
// the dashboard expects in 400 responses.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// newValidationError builds a ValidationError, returning nil when no fields
// were recorded.
func newValidationError(fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func addFieldError(fields map[string][]string, field, msg string) {
	fields[field] = append(fields[field], msg)
}
