package health

import (
	"context"
	"time"

	"Library_Demo_Service/internal/library-service/datasource"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	DetailConnected         = "Connected"
	DetailConnectionInvalid = "Connection Invalid"
	DetailConnectionFailed  = "Connection Failed"
)

const defaultValidationTimeout = time.Second

type Health struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details"`
}

func (h Health) IsUp() bool {
	return h.Status == StatusUp
}

type Indicator interface {
	Health(ctx context.Context) Health
}

type dataSourceIndicator struct {
	source            datasource.Source
	label             string
	validationTimeout time.Duration
}

// Health takes one connection from the source, validates it and gives it back.
func (d *dataSourceIndicator) Health(ctx context.Context) Health {
	conn, err := d.source.Conn(ctx)
	if err != nil {
		return Health{
			Status: StatusDown,
			Details: map[string]string{
				"database": d.label,
				"status":   DetailConnectionFailed,
				"error":    err.Error(),
			},
		}
	}
	defer conn.Close()

	pingCtx, cancel := context.WithTimeout(ctx, d.validationTimeout)
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		return Health{
			Status: StatusDown,
			Details: map[string]string{
				"database": d.label,
				"status":   DetailConnectionInvalid,
			},
		}
	}
	return Health{
		Status: StatusUp,
		Details: map[string]string{
			"database": d.label,
			"status":   DetailConnected,
		},
	}
}

func NewDataSourceIndicator(source datasource.Source, label string, validationTimeout time.Duration) Indicator {
	if validationTimeout <= 0 {
		validationTimeout = defaultValidationTimeout
	}
	return &dataSourceIndicator{
		source:            source,
		label:             label,
		validationTimeout: validationTimeout,
	}
}
