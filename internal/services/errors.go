package services

// ErrorKind classifies service failures so handlers can pick a status code
// without parsing message strings.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindScopeMismatch
	KindUnauthorized
	KindInternal
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func scopeMismatchError(msg string) *Error {
	return &Error{Kind: KindScopeMismatch, Message: msg}
}

func unauthorizedError(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func internalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
