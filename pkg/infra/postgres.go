package infra

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DriverName is the database/sql driver gorm's postgres dialector registers through pgx.
const DriverName = "pgx"

const defaultConnectTimeout = 5 * time.Second

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	// ConnectTimeout becomes connect_timeout in the DSN, rounded up to whole seconds.
	ConnectTimeout time.Duration
}

type PoolConfig struct {
	MaxSize           int32
	MinIdle           int32
	ConnectionTimeout time.Duration
	IdleTimeout       time.Duration
	MaxLifetime       time.Duration
}

func (cfg PostgresConfig) url(user *url.Userinfo) *url.URL {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	query := url.Values{"sslmode": {sslMode}}
	if cfg.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(math.Ceil(cfg.ConnectTimeout.Seconds()))))
	}
	return &url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.DBName,
		RawQuery: query.Encode(),
	}
}

func (cfg PostgresConfig) DSN() string {
	return cfg.url(url.UserPassword(cfg.User, cfg.Password)).String()
}

// RedactedURL is the connection URL without the password, safe to log or return to clients.
func (cfg PostgresConfig) RedactedURL() string {
	return cfg.url(url.User(cfg.User)).String()
}

// NewPostgresPool builds a pgx pool sized by poolCfg. The pool is lazy: an
// unreachable database is not an error here, it surfaces on the first acquire.
func NewPostgresPool(cfg PostgresConfig, poolCfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := NewPoolConfig(cfg, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("infra.NewPostgresPool: %w", err)
	}
	p, err := pgxpool.NewWithConfig(context.Background(), pc)
	if err != nil {
		return nil, fmt.Errorf("infra.NewPostgresPool: create pool: %w", err)
	}
	return p, nil
}

func NewPoolConfig(cfg PostgresConfig, poolCfg PoolConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// zero values keep pgxpool's defaults
	if poolCfg.MaxSize > 0 {
		pc.MaxConns = poolCfg.MaxSize
	}
	if poolCfg.MinIdle > 0 {
		pc.MinConns = poolCfg.MinIdle
	}
	if poolCfg.IdleTimeout > 0 {
		pc.MaxConnIdleTime = poolCfg.IdleTimeout
	}
	if poolCfg.MaxLifetime > 0 {
		pc.MaxConnLifetime = poolCfg.MaxLifetime
	}
	pc.ConnConfig.ConnectTimeout = connectTimeout(poolCfg)
	return pc, nil
}

func connectTimeout(poolCfg PoolConfig) time.Duration {
	if poolCfg.ConnectionTimeout > 0 {
		return poolCfg.ConnectionTimeout
	}
	return defaultConnectTimeout
}

// NewGormFromDB runs gorm on top of an existing *sql.DB so gorm shares its pool.
// gorm's startup ping is disabled so a database that is down does not stop the caller.
func NewGormFromDB(db *sql.DB, gormCfg *gorm.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), withoutPing(gormCfg))
	if err != nil {
		return nil, fmt.Errorf("infra.NewGormFromDB: %w", err)
	}
	return gormDB, nil
}

// NewPostgresConnection opens gorm with its own database/sql pool instead of pgxpool.
// Like NewGormFromDB it does not connect until the first query.
func NewPostgresConnection(cfg PostgresConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), withoutPing(gormCfg))
	if err != nil {
		return nil, fmt.Errorf("infra.NewPostgresConnection: %w", err)
	}
	return db, nil
}

func withoutPing(gormCfg *gorm.Config) *gorm.Config {
	cfg := gorm.Config{}
	if gormCfg != nil {
		cfg = *gormCfg
	}
	cfg.DisableAutomaticPing = true
	return &cfg
}

// TuneSQLPool applies the pool limits to a plain database/sql pool. database/sql
// keeps no idle floor, so MinIdle becomes the idle cap (SetMaxIdleConns): up to
// MinIdle connections stay open between requests, none are opened ahead of time.
func TuneSQLPool(db *sql.DB, poolCfg PoolConfig) {
	if poolCfg.MaxSize > 0 {
		db.SetMaxOpenConns(int(poolCfg.MaxSize))
	}
	if poolCfg.MinIdle > 0 {
		db.SetMaxIdleConns(int(poolCfg.MinIdle))
	}
	db.SetConnMaxIdleTime(poolCfg.IdleTimeout)
	db.SetConnMaxLifetime(poolCfg.MaxLifetime)
}
