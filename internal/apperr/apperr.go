// Package apperr classifies internal failures into the fixed error taxonomy
// exposed by the API. Services wrap failures into a Kind exactly once; the
// HTTP layer maps Kind to a status code in a single place, so adding a new
// storage backend only requires mapping its native errors here.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the externally visible failure categories.
type Kind int

const (
	// Unknown is any unclassified failure. Rendered as 500 with a generic
	// message; the underlying cause is logged, never echoed to the caller.
	Unknown Kind = iota
	// Invalid covers malformed ids and failed field validation.
	Invalid
	// NotFound covers a missing target resource or a missing comment parent.
	NotFound
	// Conflict covers unique-constraint violations from storage.
	Conflict
	// UploadRejected covers oversized files, disallowed counts and types.
	UploadRejected
)

// User-facing messages shared across resources.
const (
	MsgInvalidID       = "유효하지 않은 ID 형식입니다"
	MsgProductNotFound = "상품을 찾을 수 없습니다"
	MsgArticleNotFound = "게시글을 찾을 수 없습니다"
	MsgCommentNotFound = "댓글을 찾을 수 없습니다"
	MsgConflict        = "중복된 데이터가 존재합니다"
	MsgInternal        = "서버 내부 오류가 발생했습니다."
)

// Error is a classified failure carrying a user-facing message.
// The wrapped cause, when present, is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface. When the message was lifted
// verbatim from the cause, the cause is not repeated.
func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an existing error, keeping it available for logging.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of an error.
// Unclassified errors report Unknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// IsKind reports whether the error is classified as the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// UserMessage returns the text that may be shown to API consumers.
// Unknown failures always collapse to the generic server-error string.
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Unknown {
		return appErr.Message
	}
	return MsgInternal
}

// HTTPStatus maps the taxonomy to status codes. This is the only place
// that mapping lives.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Invalid, UploadRejected:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
