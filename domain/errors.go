package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSponsorshipExists  = fmt.Errorf("%w: sponsorship already exists for this child and sponsor", ErrDuplicate)
)

// ValidationError carries one message per offending field. Nothing is written when it is returned.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ExternalServiceError wraps a failure of a collaborator outside the database, such as the mail relay.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ImportError reports the sheet row (1-based, header included) that stopped a bulk import.
type ImportError struct {
	Row int
	Err error
}

func (e *ImportError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error { return e.Err }
