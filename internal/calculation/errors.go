package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField marks a record lacking occupation date,
	// vacating date or current deposit.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidSpan marks a record whose vacating date precedes its
	// occupation date. Only reported when inverted spans are rejected.
	ErrInvalidSpan = errors.New("vacating date before occupation date")
)

// SkipError explains why a record produced no accrual result.
type SkipError struct {
	TenantCode string
	Field      string // set for ErrMissingRequiredField
	Err        error
}

func (e *SkipError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("tenant %q skipped: %v: %s", e.TenantCode, e.Err, e.Field)
	}
	return fmt.Sprintf("tenant %q skipped: %v", e.TenantCode, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// Reason is the short human-readable skip cause.
func (e *SkipError) Reason() string {
	if e.Field != "" {
		return e.Err.Error() + ": " + e.Field
	}
	return e.Err.Error()
}
