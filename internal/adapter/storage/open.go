package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/inventory-tracker/internal/port"
)

const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Drivers lists the accepted values of Options.Driver.
var Drivers = []string{DriverSQLite, DriverRedis, DriverMySQL, DriverPostgres, DriverMemory}

type Options struct {
	Driver      string
	StoreName   string
	SQLitePath  string
	RedisURL    string
	MySQLDSN    string
	PostgresDSN string
}

// Open connects to the configured backend. The returned close function
// releases the connection.
func Open(ctx context.Context, opts Options) (port.SnapshotRepository, func() error, error) {
	noop := func() error { return nil }

	switch opts.Driver {
	case DriverSQLite, "":
		a, err := OpenSQLite(ctx, opts.SQLitePath, opts.StoreName)
		if err != nil {
			return nil, noop, err
		}
		return a, a.db.Close, nil

	case DriverMemory:
		return NewMemoryAdapter(), noop, nil

	case DriverRedis:
		ropts, err := redis.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(ropts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		return NewRedisAdapter(rdb, opts.StoreName), rdb.Close, nil

	case DriverMySQL:
		db, err := openSQL(ctx, "mysql", opts.MySQLDSN)
		if err != nil {
			return nil, noop, err
		}
		a := NewMySQLAdapter(db, opts.StoreName)
		if err := a.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return a, db.Close, nil

	case DriverPostgres:
		db, err := openSQL(ctx, "pgx", opts.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		a := NewPostgresAdapter(db, opts.StoreName)
		if err := a.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return a, db.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", opts.Driver)
}

func openSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}
