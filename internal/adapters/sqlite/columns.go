// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/workdesk/internal/db"
)

// setClause accumulates "col = ?" pairs for a partial UPDATE.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, value any) {
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, value)
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

// statement builds "UPDATE table SET ... WHERE id = ?" with its arguments.
func (s *setClause) statement(table string, id int64) (string, []any) {
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(s.cols, ", "))
	return query, append(s.args, id)
}

// timestampColumn wraps a DATETIME column so it is read back as plain text
// rather than converted by the driver.
func timestampColumn(col string) string {
	return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H:%%M:%%S', %s)", col)
}

func formatTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Local().Format(db.TimestampLayout)
}

func parseTimestamp(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(db.TimestampLayout, s.String, time.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp %q: %w", s.String, err)
	}
	return &t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
