package datasource

import (
	"context"
	"database/sql"
	"time"

	"Library_Demo_Service/internal/library-service/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Source hands out database connections. Callers must Close the returned
// *sql.Conn, which gives it back to the pool.
type Source interface {
	Conn(ctx context.Context) (*sql.Conn, error)
	DB() *sql.DB
	DriverName() string
	URL() string
	Close() error
}

// PooledSource is a Source backed by a pool that can describe itself.
type PooledSource interface {
	Source
	PoolInfo() model.PoolInfo
}

type sqlSource struct {
	db             *sql.DB
	driverName     string
	url            string
	acquireTimeout time.Duration
}

// Conn is bounded by the acquire timeout when one is set.
func (s *sqlSource) Conn(ctx context.Context) (*sql.Conn, error) {
	if s.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.acquireTimeout)
		defer cancel()
	}
	return s.db.Conn(ctx)
}

func (s *sqlSource) DB() *sql.DB {
	return s.db
}

func (s *sqlSource) DriverName() string {
	return s.driverName
}

func (s *sqlSource) URL() string {
	return s.url
}

func (s *sqlSource) Close() error {
	return s.db.Close()
}

// NewSQLSource wraps a plain *sql.DB. It does not expose pool information.
// A zero acquireTimeout leaves Conn bounded only by the caller's context.
func NewSQLSource(db *sql.DB, driverName string, url string, acquireTimeout time.Duration) Source {
	return &sqlSource{
		db:             db,
		driverName:     driverName,
		url:            url,
		acquireTimeout: acquireTimeout,
	}
}

type pgxPoolSource struct {
	sqlSource
	pool *pgxpool.Pool
	name string
}

func (p *pgxPoolSource) PoolInfo() model.PoolInfo {
	cfg := p.pool.Config()
	stat := p.pool.Stat()
	return model.PoolInfo{
		PoolName:          p.name,
		MaximumPoolSize:   cfg.MaxConns,
		MinimumIdle:       cfg.MinConns,
		ConnectionTimeout: p.acquireTimeout.Milliseconds(),
		IdleTimeout:       cfg.MaxConnIdleTime.Milliseconds(),
		MaxLifetime:       cfg.MaxConnLifetime.Milliseconds(),
		ActiveConnections: stat.AcquiredConns(),
		IdleConnections:   stat.IdleConns(),
		TotalConnections:  stat.TotalConns(),
	}
}

// NewPgxPoolSource exposes pool through database/sql. Acquisition is bounded by
// the pool's connect timeout. Close releases the database/sql view only; the
// pgx pool still belongs to the caller.
func NewPgxPoolSource(pool *pgxpool.Pool, name string, url string) PooledSource {
	return &pgxPoolSource{
		sqlSource: sqlSource{
			db:             stdlib.OpenDBFromPool(pool),
			driverName:     "pgx",
			url:            url,
			acquireTimeout: pool.Config().ConnConfig.ConnectTimeout,
		},
		pool: pool,
		name: name,
	}
}
