package report

import "fmt"

// ErrorKind enumerates the kinds of user-facing errors the lowering pass can
// produce.  The set is closed: every error returned to a host is one of these
// kinds or an *InternalError.
type ErrorKind int

const (
	// ErrUnknownType indicates a surface type token that does not name a
	// built-in type.
	ErrUnknownType ErrorKind = iota

	// ErrUnresolvedIdentifier indicates a name not bound in any enclosing
	// scope.
	ErrUnresolvedIdentifier

	// ErrUnsupportedOperator indicates a binary operator symbol outside the
	// supported set.
	ErrUnsupportedOperator

	// ErrWrongArgCount indicates a call whose argument count does not match
	// the callee's declared parameter count.
	ErrWrongArgCount

	// ErrNotCallable indicates a call whose callee did not lower to a
	// function value.
	ErrNotCallable
)

// LowerError is a user-facing lowering error: erroneous input code.  It
// carries the kind of failure, the offending token (type name, identifier, or
// operator symbol), and the span of the offending source text if the front
// end provided one.
type LowerError struct {
	Kind    ErrorKind
	Token   string
	Span    *TextSpan
	Message string
}

func (le *LowerError) Error() string {
	return le.Message
}

// Raise creates a new lowering error of the given kind over the given span.
func Raise(kind ErrorKind, span *TextSpan, token, msg string, args ...interface{}) *LowerError {
	return &LowerError{
		Kind:    kind,
		Token:   token,
		Span:    span,
		Message: fmt.Sprintf(msg, args...),
	}
}

// UnknownType creates an UnknownType error naming the offending type token.
func UnknownType(span *TextSpan, token string) *LowerError {
	return Raise(ErrUnknownType, span, token, "unknown type `%s`", token)
}

// UnresolvedIdentifier creates an UnresolvedIdentifier error naming the
// identifier.
func UnresolvedIdentifier(span *TextSpan, name string) *LowerError {
	return Raise(ErrUnresolvedIdentifier, span, name, "undefined identifier `%s`", name)
}

// UnsupportedOperator creates an UnsupportedOperator error naming the
// operator symbol.
func UnsupportedOperator(span *TextSpan, op string) *LowerError {
	return Raise(ErrUnsupportedOperator, span, op, "unsupported binary operator `%s`", op)
}

// -----------------------------------------------------------------------------

// InternalError is an internal compiler error (ICE): the lowering logic
// itself produced an ill-formed artifact.  These errors are never caused by
// user input.  They are fatal to the lowering pass, but they are still
// propagated as values so that a hosting tool (REPL, language server, batch
// compiler) can recover and report rather than abort.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal compiler error: " + ie.Message
}

// ICE creates a new internal compiler error.
func ICE(msg string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(msg, args...)}
}
