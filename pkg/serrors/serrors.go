package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Business kinds describe why a catalog write or lookup was refused. The
// transport-level kinds below them are used by the API boundary.
var (
	// ErrInvalidData indicates a supplied value violates an invariant (format,
	// enum membership, cross-field consistency).
	ErrInvalidData = NewKind("INVALID_DATA")
	// ErrAlreadyExists indicates a uniqueness constraint would be violated.
	ErrAlreadyExists = NewKind("ALREADY_EXISTS")
	// ErrNotFound indicates the requested or referenced entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflictRule indicates a cross-aggregate business rule blocks the write.
	ErrConflictRule = NewKind("CONFLICT_RULE")
	// ErrInternal indicates an unexpected failure. Its details are never shown to callers.
	ErrInternal = NewKind("INTERNAL")

	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates a malformed request that never reached the domain.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnavailable indicates the service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error, an optional message, a stable machine-readable code and the
// list of offending fields. It fully supports errors.Is/errors.As and
// unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) will match if target matches either the kind
//     sentinel or the wrapped error.
//   - errors.As(err, target) will succeed for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind   Kind  // semantic kind sentinel
	err    error // wrapped error (optional)
	msg    string
	code   string
	fields []string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// WithCode returns a copy of e carrying the given machine-readable code.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.code = code

	return &cp
}

// WithFields returns a copy of e listing the given offending fields.
func (e *Error) WithFields(fields ...string) *Error {
	cp := *e
	cp.fields = append(append([]string(nil), e.fields...), fields...)

	return &cp
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the wrapped
// error in the chain. This ensures that errors.Is works for both.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// Code returns the machine-readable code. When no explicit code was attached
// the kind name is used.
func (e *Error) Code() string {
	if e.code != "" {
		return e.code
	}
	if e.kind != nil {
		return e.kind.Error()
	}

	return ErrInternal.Error()
}

// Fields returns the offending fields, if any.
func (e *Error) Fields() []string { return e.fields }

// KindOf returns the kind of the outermost *Error in err's chain, or
// ErrInternal when err carries no semantic kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	return ErrInternal
}

// CodeOf returns the machine-readable code of err, or the INTERNAL code when err
// carries no semantic information.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code()
	}

	return ErrInternal.Error()
}

// FieldsOf returns the offending fields attached to err, if any.
func FieldsOf(err error) []string {
	var se *Error
	if errors.As(err, &se) {
		return se.fields
	}

	return nil
}
