package errs

import "errors"

// Sentinel errors shared across the command and query layers
var (
	// Lookup errors
	ErrUserNotFound         = errors.New("user not found")
	ErrQuadraNotFound       = errors.New("quadra not found")
	ErrAgendamentoNotFound  = errors.New("agendamento not found")
	ErrOwnerRequestNotFound = errors.New("owner request not found")

	// Authorization errors
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("authentication required")
	ErrStaffRequired = errors.New("staff privileges required")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidUpload    = errors.New("invalid upload")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
