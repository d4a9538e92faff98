package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Error taxonomy shared by every resource handler. Handlers map these
// to 401, 403 and 409; anything else becomes a logged 500.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)

// NewConflict wraps ErrConflict with a message naming the blocking
// resources, e.g. "size is still used by 3 products".
func NewConflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// ConflictMessage strips the sentinel prefix for client payloads.
func ConflictMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrConflict.Error()+": ")
}

// IsForeignKeyViolation reports whether err is a referential
// integrity error from the database. MySQL signals these with error
// numbers 1451/1452; the substring check covers other drivers.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1451 || mysqlErr.Number == 1452
	}

	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}
