package mysql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/jbeshir/newsdesk/internal/domain"
)

// MySQL server error numbers used for classification.
const (
	errNumDuplicateEntry    = 1062
	errNumDeadlock          = 1213
	errNumTooManyConns      = 1040
	errNumServerShutdown    = 1053
	errNumConnCountError    = 1158
	errNumConnCountErrorR   = 1159
	errNumServerLost        = 2013
	errNumServerGone        = 2006
	errNumCantConnect       = 2003
	errNumCantConnectSocket = 2002
)

// IsConnectivityError reports whether err means the database could not be reached or
// the connection broke, as opposed to a query or business-rule failure.
// Failures with an unknown commit outcome are never classed as connectivity errors.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrCommitOutcomeUnknown) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errNumTooManyConns, errNumServerShutdown, errNumConnCountError, errNumConnCountErrorR,
			errNumServerLost, errNumServerGone, errNumCantConnect, errNumCantConnectSocket:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errNumDuplicateEntry
}

func isDeadlock(err error) bool {
	if errors.Is(err, domain.ErrCommitOutcomeUnknown) {
		return false
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errNumDeadlock
}
