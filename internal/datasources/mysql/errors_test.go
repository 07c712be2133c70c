package mysql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/jbeshir/newsdesk/internal/domain"
)

func TestIsConnectivityError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad_conn", err: driver.ErrBadConn, want: true},
		{name: "invalid_conn_wrapped", err: fmt.Errorf("fetching article: %w", mysql.ErrInvalidConn), want: true},
		{name: "conn_done", err: sql.ErrConnDone, want: true},
		{name: "unexpected_eof", err: io.ErrUnexpectedEOF, want: true},
		{name: "server_gone", err: &mysql.MySQLError{Number: 2006}, want: true},
		{name: "too_many_connections", err: &mysql.MySQLError{Number: 1040}, want: true},
		{name: "dial_error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: true},
		{name: "duplicate_entry", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "syntax_error", err: &mysql.MySQLError{Number: 1064}, want: false},
		{name: "no_rows", err: sql.ErrNoRows, want: false},
		{name: "invalid_target", err: domain.ErrInvalidTarget, want: false},
		{name: "context_cancelled", err: fmt.Errorf("query: %w", context.Canceled), want: false},
		{
			name: "commit_outcome_unknown",
			err:  fmt.Errorf("committing: %w: %w", domain.ErrCommitOutcomeUnknown, driver.ErrBadConn),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsConnectivityError(tc.err))
		})
	}
}
