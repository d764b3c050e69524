package main

import (
	"fmt"

	"Library_Demo_Service/internal/library-service/config"
	"Library_Demo_Service/internal/library-service/datasource"
	"Library_Demo_Service/pkg/infra"

	"gorm.io/gorm"
)

type database struct {
	source datasource.Source
	gorm   *gorm.DB
	// close releases the source and, in pool mode, the pgx pool behind it.
	close func()
}

// openDatabase builds the connection source and gorm over it without dialing.
// An unreachable database is reported by the diagnostic endpoints, not here.
func openDatabase(appConfig config.AppConfig, gormConfig *gorm.Config) (database, error) {
	pgConfig := infra.PostgresConfig{
		Host:           appConfig.Postgres.Host,
		Port:           appConfig.Postgres.Port,
		User:           appConfig.Postgres.User,
		Password:       appConfig.Postgres.Password,
		DBName:         appConfig.Postgres.DBName,
		SSLMode:        appConfig.Postgres.SSLMode,
		ConnectTimeout: appConfig.Pool.ConnectionTimeout,
	}
	poolConfig := infra.PoolConfig{
		MaxSize:           appConfig.Pool.MaxSize,
		MinIdle:           appConfig.Pool.MinIdle,
		ConnectionTimeout: appConfig.Pool.ConnectionTimeout,
		IdleTimeout:       appConfig.Pool.IdleTimeout,
		MaxLifetime:       appConfig.Pool.MaxLifetime,
	}

	if appConfig.Pool.Enabled {
		pool, err := infra.NewPostgresPool(pgConfig, poolConfig)
		if err != nil {
			return database{}, fmt.Errorf("openDatabase: %w", err)
		}
		source := datasource.NewPgxPoolSource(pool, appConfig.Pool.Name, pgConfig.RedactedURL())
		db, err := infra.NewGormFromDB(source.DB(), gormConfig)
		if err != nil {
			source.Close()
			pool.Close()
			return database{}, fmt.Errorf("openDatabase: %w", err)
		}
		return database{
			source: source,
			gorm:   db,
			close: func() {
				source.Close()
				pool.Close()
			},
		}, nil
	}

	db, err := infra.NewPostgresConnection(pgConfig, gormConfig)
	if err != nil {
		return database{}, fmt.Errorf("openDatabase: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return database{}, fmt.Errorf("openDatabase: %w", err)
	}
	infra.TuneSQLPool(sqlDB, poolConfig)
	source := datasource.NewSQLSource(sqlDB, infra.DriverName, pgConfig.RedactedURL(), appConfig.Pool.ConnectionTimeout)
	return database{
		source: source,
		gorm:   db,
		close:  func() { source.Close() },
	}, nil
}
