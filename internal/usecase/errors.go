package usecase

import "errors"

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "CAMPAIGN_NOT_FOUND"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeDatabase         = "DATABASE_ERROR"
	CodeQueue            = "QUEUE_ERROR"
)

// DomainError is a failure the caller can fix by changing the request.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var d *DomainError
	return errors.As(err, &d)
}

// TechnicalError is a failure of a collaborator (model, database, broker).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var t *TechnicalError
	return errors.As(err, &t)
}

// ErrorCode returns the code carried by a DomainError or TechnicalError.
func ErrorCode(err error) string {
	var d *DomainError
	if errors.As(err, &d) {
		return d.Code
	}
	var t *TechnicalError
	if errors.As(err, &t) {
		return t.Code
	}
	return ""
}
