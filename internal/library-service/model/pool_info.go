package model

// PoolInfo is a point-in-time snapshot of the connection pool. Durations are milliseconds.
type PoolInfo struct {
	PoolName          string
	MaximumPoolSize   int32
	MinimumIdle       int32
	ConnectionTimeout int64
	IdleTimeout       int64
	MaxLifetime       int64
	ActiveConnections int32
	IdleConnections   int32
	TotalConnections  int32
}

func (p PoolInfo) Map() map[string]any {
	return map[string]any{
		"poolName":          p.PoolName,
		"maximumPoolSize":   p.MaximumPoolSize,
		"minimumIdle":       p.MinimumIdle,
		"connectionTimeout": p.ConnectionTimeout,
		"idleTimeout":       p.IdleTimeout,
		"maxLifetime":       p.MaxLifetime,
		"activeConnections": p.ActiveConnections,
		"idleConnections":   p.IdleConnections,
		"totalConnections":  p.TotalConnections,
	}
}
