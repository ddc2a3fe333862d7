package reference

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriver is the database/sql driver name for sqlite catalogues. It is
// mattn/go-sqlite3 with UPPER replaced by a Unicode-aware version, so the
// SQL ranking folds "Zürich" the same way the in-memory search does.
const SQLiteDriver = "sqlite3_catalogue"

func init() {
	sql.Register(SQLiteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("upper", unicodeUpper, true)
		},
	})
}

func unicodeUpper(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToUpper(s)
	case []byte:
		return strings.ToUpper(string(s))
	default:
		return v
	}
}
