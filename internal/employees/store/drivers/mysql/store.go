package mysql

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/gen"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/sqlrepo"
	"github.com/go-sql-driver/mysql"
)

// erDupEntry is the MySQL server error number for a duplicate key.
const erDupEntry = 1062

// Options describes how to reach the MySQL server. It is turned into a DSN
// by FormatDSN.
type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type Store struct {
	db *sql.DB
	q  *gen.Queries
}

// NewStore opens a connection pool for dsn. The DSN is normalised so that
// UPDATE reports matched rows rather than changed rows.
func NewStore(dsn string) (*Store, error) {
	dsn, err := normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(3 * time.Minute)

	return WithDB(db), nil
}

// WithDB wraps an already opened database handle.
func WithDB(db *sql.DB) *Store {
	return &Store{
		db: db,
		q:  gen.New(db),
	}
}

// FormatDSN builds a go-sql-driver DSN from discrete connection settings.
func FormatDSN(o Options) string {
	cfg := mysql.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
	cfg.DBName = o.Database
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Employees() store.Employees { return sqlrepo.NewEmployees(s.q, mapDuplicate) }

func mapDuplicate(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == erDupEntry {
		return store.ErrAlreadyExists
	}
	return err
}
