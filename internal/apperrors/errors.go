// Package apperrors defines the error taxonomy shared across the service
// and boundary layers. Handlers translate these into HTTP status codes:
// ValidationError into 400, NotFoundError into 404 and DatabaseError into
// 500 with a generic message.
package apperrors

// ValidationError signals that a payload failed a structural or business
// rule, including the referential property_id check. The message names the
// first failing rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "invalid input data"
	}
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError signals that a record required by the operation does not
// exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "resource not found"
	}
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// DatabaseError wraps a storage failure. The underlying error stays
// available for logging through Unwrap but is never surfaced to callers.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return "database error"
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func NewDatabaseError(err error) *DatabaseError {
	return &DatabaseError{Err: err}
}
