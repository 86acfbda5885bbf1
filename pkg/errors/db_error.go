package custom_error

import "fmt"

// Postgres constraint violations surface as *pq.Error values with a
// five-character SQLSTATE code. WrapDBError maps the codes the handlers
// care about onto typed errors so they can respond with 409 instead of a
// generic 500.

type UniqueViolationError struct {
	message string
	code    string // SQLSTATE 23505
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

type ForeignKeyViolationError struct {
	message string
	code    string // SQLSTATE 23503
}

func (e *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s is referenced by other rows (code: %s)", e.message, e.code)
}

func WrapDBError(message, code string) error {
	switch code {
	case "23505":
		return &UniqueViolationError{message: message, code: code}
	case "23503":
		return &ForeignKeyViolationError{message: message, code: code}
	default:
		return fmt.Errorf("uncategorized database error with code %s: %s", code, message)
	}
}
