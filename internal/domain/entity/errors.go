package entity

import (
	"errors"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// Violations aggregates every validation failure for a single request.
// All rules run to completion; nothing short-circuits, so the caller
// sees the full list of problems in one round trip.
type Violations struct {
	Messages []string
}

// Add appends a violation message.
func (v *Violations) Add(msg string) {
	v.Messages = append(v.Messages, msg)
}

// Empty reports whether no violation has been recorded.
func (v *Violations) Empty() bool {
	return len(v.Messages) == 0
}

// Error joins all messages into the user-facing aggregate text.
func (v *Violations) Error() string {
	return "유효성 검증 실패: " + strings.Join(v.Messages, ", ")
}

// Unwrap ties Violations to ErrValidationFailed so callers can use errors.Is.
func (v *Violations) Unwrap() error {
	return ErrValidationFailed
}

// Err returns the aggregate as an error, or nil when nothing was recorded.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

// EmptyPatchError is the aggregate reported when a partial update
// supplies no mutable field.
func EmptyPatchError() error {
	var v Violations
	v.Add("수정할 필드가 최소 하나 필요합니다.")
	return v.Err()
}
