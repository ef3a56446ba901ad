package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/velichkin/innerpath/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the squirrel statement
// builder configured for the connected engine's placeholder format. The same
// repository implementations serve both postgres ($1) and sqlite (?) through
// this builder.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	driver  string
	logger  *logger.Logger
}

// Driver reports the engine this handle is connected to ("postgres" or
// "sqlite").
func (db *DB) Driver() string {
	return db.driver
}
