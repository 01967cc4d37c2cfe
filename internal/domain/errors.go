package domain

// FieldError pins a validation failure to one named field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned for client-side validation failures. No network
// call is made when one of these is produced.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error { return err.Err }
